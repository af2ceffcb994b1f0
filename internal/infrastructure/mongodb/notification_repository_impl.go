package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

type notificationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Type        string             `bson:"type"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Read        bool               `bson:"read"`
	MeetingID   string             `bson:"meeting_id,omitempty"`
	TaskID      string             `bson:"task_id,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *notificationDoc) toEntity() *entity.Notification {
	return &entity.Notification{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Type:        d.Type,
		Title:       d.Title,
		Description: d.Description,
		Read:        d.Read,
		MeetingID:   d.MeetingID,
		TaskID:      d.TaskID,
		CreatedAt:   d.CreatedAt,
	}
}

// NotificationRepository is the Mongo-backed notification store.
type NotificationRepository struct {
	col *mongo.Collection
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{col: db.Collection("notifications")}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) (string, error) {
	now := time.Now().UTC()
	doc := notificationDoc{
		UserID:      n.UserID,
		Type:        n.Type,
		Title:       n.Title,
		Description: n.Description,
		Read:        n.Read,
		MeetingID:   n.MeetingID,
		TaskID:      n.TaskID,
		CreatedAt:   now,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	n.ID = res.InsertedID.(primitive.ObjectID).Hex()
	n.CreatedAt = now
	return n.ID, nil
}

func (r *NotificationRepository) FindByOwner(ctx context.Context, ownerID string, f repository.NotificationFilter) ([]*entity.Notification, error) {
	filter := bson.M{"user_id": ownerID}
	if f.Read != nil {
		filter["read"] = *f.Read
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notifs := make([]*entity.Notification, 0)
	for cur.Next(ctx) {
		var doc notificationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		notifs = append(notifs, doc.toEntity())
	}
	return notifs, cur.Err()
}

func (r *NotificationRepository) CountUnread(ctx context.Context, ownerID string) (int, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"user_id": ownerID, "read": false})
	return int(n), err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, ownerID string) (bool, error) {
	objID, ok := oid(id)
	if !ok {
		return false, nil
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": objID, "user_id": ownerID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, ownerID string) (int, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"user_id": ownerID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}
	return int(res.ModifiedCount), nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
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
