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

type taskDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	Title          string             `bson:"title"`
	Description    string             `bson:"description,omitempty"`
	MeetingID      string             `bson:"meeting_id,omitempty"`
	Assignee       string             `bson:"assignee"`
	AssigneeUserID string             `bson:"assignee_user_id,omitempty"`
	DueDate        string             `bson:"due_date"`
	Priority       string             `bson:"priority"`
	Status         string             `bson:"status"`
	Tags           []string           `bson:"tags"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
	CompletedAt    *time.Time         `bson:"completed_at"`
}

func (d *taskDoc) toEntity() *entity.Task {
	return &entity.Task{
		ID:             d.ID.Hex(),
		UserID:         d.UserID,
		Title:          d.Title,
		Description:    d.Description,
		MeetingID:      d.MeetingID,
		Assignee:       d.Assignee,
		AssigneeUserID: d.AssigneeUserID,
		DueDate:        d.DueDate,
		Priority:       d.Priority,
		Status:         d.Status,
		Tags:           d.Tags,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		CompletedAt:    d.CompletedAt,
	}
}

// TaskRepository is the Mongo-backed task store.
type TaskRepository struct {
	col *mongo.Collection
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection("tasks")}
}

var taskSort = options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) (string, error) {
	now := time.Now().UTC()
	if t.Tags == nil {
		t.Tags = []string{}
	}
	doc := taskDoc{
		UserID:         t.UserID,
		Title:          t.Title,
		Description:    t.Description,
		MeetingID:      t.MeetingID,
		Assignee:       t.Assignee,
		AssigneeUserID: t.AssigneeUserID,
		DueDate:        t.DueDate,
		Priority:       t.Priority,
		Status:         t.Status,
		Tags:           t.Tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	t.ID = res.InsertedID.(primitive.ObjectID).Hex()
	t.CreatedAt = now
	t.UpdatedAt = now
	return t.ID, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	objID, ok := oid(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	var doc taskDoc
	err := r.col.FindOne(ctx, bson.M{"_id": objID, "user_id": ownerID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *TaskRepository) FindByOwner(ctx context.Context, ownerID string, f repository.TaskFilter) ([]*entity.Task, error) {
	filter := bson.M{"user_id": ownerID}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Priority != "" {
		filter["priority"] = f.Priority
	}
	if f.Assignee != "" {
		filter["assignee"] = f.Assignee
	}
	return r.find(ctx, filter)
}

func (r *TaskRepository) FindOverdue(ctx context.Context, ownerID string) ([]*entity.Task, error) {
	today := time.Now().Format("2006-01-02")
	return r.find(ctx, bson.M{
		"user_id":  ownerID,
		"status":   bson.M{"$ne": entity.TaskDone},
		"due_date": bson.M{"$lt": today},
	})
}

func (r *TaskRepository) FindByMeeting(ctx context.Context, meetingID, ownerID string) ([]*entity.Task, error) {
	return r.find(ctx, bson.M{"user_id": ownerID, "meeting_id": meetingID})
}

func (r *TaskRepository) Update(ctx context.Context, id, ownerID string, patch repository.TaskPatch) (bool, error) {
	cur, err := r.FindByID(ctx, id, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	objID, _ := oid(id)

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.MeetingID != nil {
		set["meeting_id"] = *patch.MeetingID
	}
	if patch.Assignee != nil {
		set["assignee"] = *patch.Assignee
	}
	if patch.AssigneeUserID != nil {
		set["assignee_user_id"] = *patch.AssigneeUserID
	}
	if patch.DueDate != nil {
		set["due_date"] = *patch.DueDate
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.Tags != nil {
		set["tags"] = patch.Tags
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
		switch {
		case *patch.Status == entity.TaskDone && cur.CompletedAt == nil:
			set["completed_at"] = time.Now().UTC()
		case *patch.Status != entity.TaskDone:
			set["completed_at"] = nil
		}
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": objID, "user_id": ownerID}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
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

func (r *TaskRepository) find(ctx context.Context, filter bson.M) ([]*entity.Task, error) {
	cur, err := r.col.Find(ctx, filter, taskSort)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tasks := make([]*entity.Task, 0)
	for cur.Next(ctx) {
		var doc taskDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		tasks = append(tasks, doc.toEntity())
	}
	return tasks, cur.Err()
}
