package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

type meetingDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	Company        string             `bson:"company"`
	Contact        string             `bson:"contact"`
	Subject        string             `bson:"subject"`
	Description    string             `bson:"description,omitempty"`
	Date           string             `bson:"date"`
	Time           string             `bson:"time"`
	Duration       int                `bson:"duration"`
	Location       string             `bson:"location"`
	Status         string             `bson:"status"`
	Priority       string             `bson:"priority"`
	Notes          string             `bson:"notes,omitempty"`
	Attendees      []string           `bson:"attendees"`
	Tags           []string           `bson:"tags"`
	Phone          string             `bson:"phone,omitempty"`
	Email          string             `bson:"email,omitempty"`
	CompanyAddress string             `bson:"company_address,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (d *meetingDoc) toEntity() *entity.Meeting {
	return &entity.Meeting{
		ID:             d.ID.Hex(),
		UserID:         d.UserID,
		Company:        d.Company,
		Contact:        d.Contact,
		Subject:        d.Subject,
		Description:    d.Description,
		Date:           d.Date,
		Time:           d.Time,
		Duration:       d.Duration,
		Location:       d.Location,
		Status:         d.Status,
		Priority:       d.Priority,
		Notes:          d.Notes,
		Attendees:      d.Attendees,
		Tags:           d.Tags,
		Phone:          d.Phone,
		Email:          d.Email,
		CompanyAddress: d.CompanyAddress,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// MeetingRepository is the Mongo-backed meeting store.
type MeetingRepository struct {
	col *mongo.Collection
}

var _ repository.MeetingRepository = (*MeetingRepository)(nil)

func NewMeetingRepository(db *mongo.Database) *MeetingRepository {
	return &MeetingRepository{col: db.Collection("meetings")}
}

var meetingSort = options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})

func (r *MeetingRepository) Create(ctx context.Context, m *entity.Meeting) (string, error) {
	now := time.Now().UTC()
	if m.Attendees == nil {
		m.Attendees = []string{}
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	doc := meetingDoc{
		UserID:         m.UserID,
		Company:        m.Company,
		Contact:        m.Contact,
		Subject:        m.Subject,
		Description:    m.Description,
		Date:           m.Date,
		Time:           m.Time,
		Duration:       m.Duration,
		Location:       m.Location,
		Status:         m.Status,
		Priority:       m.Priority,
		Notes:          m.Notes,
		Attendees:      m.Attendees,
		Tags:           m.Tags,
		Phone:          m.Phone,
		Email:          m.Email,
		CompanyAddress: m.CompanyAddress,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	m.ID = res.InsertedID.(primitive.ObjectID).Hex()
	m.CreatedAt = now
	m.UpdatedAt = now
	return m.ID, nil
}

func (r *MeetingRepository) FindByID(ctx context.Context, id, ownerID string) (*entity.Meeting, error) {
	objID, ok := oid(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	var doc meetingDoc
	err := r.col.FindOne(ctx, bson.M{"_id": objID, "user_id": ownerID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *MeetingRepository) FindByOwner(ctx context.Context, ownerID string, f repository.MeetingFilter) ([]*entity.Meeting, error) {
	filter := bson.M{"user_id": ownerID}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.DateFrom != "" || f.DateTo != "" {
		rng := bson.M{}
		if f.DateFrom != "" {
			rng["$gte"] = f.DateFrom
		}
		if f.DateTo != "" {
			rng["$lte"] = f.DateTo
		}
		filter["date"] = rng
	}
	return r.find(ctx, filter)
}

func (r *MeetingRepository) FindUpcoming(ctx context.Context, ownerID string, days int) ([]*entity.Meeting, error) {
	today := time.Now().Format("2006-01-02")
	until := time.Now().AddDate(0, 0, days).Format("2006-01-02")
	return r.find(ctx, bson.M{
		"user_id": ownerID,
		"status":  entity.MeetingScheduled,
		"date":    bson.M{"$gte": today, "$lte": until},
	})
}

func (r *MeetingRepository) FindByDate(ctx context.Context, ownerID, date string) ([]*entity.Meeting, error) {
	return r.find(ctx, bson.M{"user_id": ownerID, "date": date})
}

func (r *MeetingRepository) Update(ctx context.Context, id, ownerID string, patch repository.MeetingPatch) (bool, error) {
	objID, ok := oid(id)
	if !ok {
		return false, nil
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Contact != nil {
		set["contact"] = *patch.Contact
	}
	if patch.Subject != nil {
		set["subject"] = *patch.Subject
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Time != nil {
		set["time"] = *patch.Time
	}
	if patch.Duration != nil {
		set["duration"] = *patch.Duration
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.Attendees != nil {
		set["attendees"] = patch.Attendees
	}
	if patch.Tags != nil {
		set["tags"] = patch.Tags
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.CompanyAddress != nil {
		set["company_address"] = *patch.CompanyAddress
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": objID, "user_id": ownerID}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MeetingRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	objID, ok := oid(id)
	if !ok {
		return false, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": objID, "user_id": ownerID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MeetingRepository) find(ctx context.Context, filter bson.M) ([]*entity.Meeting, error) {
	cur, err := r.col.Find(ctx, filter, meetingSort)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	meetings := make([]*entity.Meeting, 0)
	for cur.Next(ctx) {
		var doc meetingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		meetings = append(meetings, doc.toEntity())
	}
	return meetings, cur.Err()
}
