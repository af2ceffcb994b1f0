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

type chatMessageDoc struct {
	Sender    string    `bson:"sender"`
	Text      string    `bson:"text"`
	Timestamp time.Time `bson:"timestamp"`
}

type chatSessionDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	SessionID string             `bson:"session_id"`
	Messages  []chatMessageDoc   `bson:"messages"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *chatSessionDoc) toEntity() *entity.ChatSession {
	msgs := make([]entity.ChatMessage, len(d.Messages))
	for i, m := range d.Messages {
		msgs[i] = entity.ChatMessage{Sender: m.Sender, Text: m.Text, Timestamp: m.Timestamp}
	}
	return &entity.ChatSession{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		SessionID: d.SessionID,
		Messages:  msgs,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ChatRepository is the Mongo-backed conversation store.
type ChatRepository struct {
	col *mongo.Collection
}

var _ repository.ChatRepository = (*ChatRepository)(nil)

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{col: db.Collection("ai_chat")}
}

func (r *ChatRepository) FindBySessionID(ctx context.Context, sessionID, ownerID string) (*entity.ChatSession, error) {
	var doc chatSessionDoc
	err := r.col.FindOne(ctx, bson.M{"session_id": sessionID, "user_id": ownerID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *ChatRepository) FindByOwner(ctx context.Context, ownerID string, limit int) ([]*entity.ChatSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sessions := make([]*entity.ChatSession, 0)
	for cur.Next(ctx) {
		var doc chatSessionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		sessions = append(sessions, doc.toEntity())
	}
	return sessions, cur.Err()
}

func (r *ChatRepository) Save(ctx context.Context, s *entity.ChatSession) error {
	now := time.Now().UTC()
	msgs := make([]chatMessageDoc, len(s.Messages))
	for i, m := range s.Messages {
		msgs[i] = chatMessageDoc{Sender: m.Sender, Text: m.Text, Timestamp: m.Timestamp}
	}
	_, err := r.col.UpdateOne(ctx,
		bson.M{"session_id": s.SessionID, "user_id": s.UserID},
		bson.M{
			"$set":         bson.M{"messages": msgs, "updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *ChatRepository) Delete(ctx context.Context, sessionID, ownerID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"session_id": sessionID, "user_id": ownerID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
