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

type userDoc struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty"`
	Email          string                 `bson:"email"`
	Password       string                 `bson:"password"`
	FullName       string                 `bson:"full_name"`
	Role           string                 `bson:"role"`
	AvatarInitials string                 `bson:"avatar_initials"`
	Preferences    map[string]interface{} `bson:"preferences"`
	CreatedAt      time.Time              `bson:"created_at"`
	UpdatedAt      time.Time              `bson:"updated_at"`
	LastLogin      *time.Time             `bson:"last_login,omitempty"`
}

func (d *userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:             d.ID.Hex(),
		Email:          d.Email,
		Password:       d.Password,
		FullName:       d.FullName,
		Role:           d.Role,
		AvatarInitials: d.AvatarInitials,
		Preferences:    d.Preferences,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		LastLogin:      d.LastLogin,
	}
}

// UserRepository is the Mongo-backed identity store.
type UserRepository struct {
	col *mongo.Collection
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (string, error) {
	now := time.Now().UTC()
	doc := userDoc{
		Email:          u.Email,
		Password:       u.Password,
		FullName:       u.FullName,
		Role:           u.Role,
		AvatarInitials: u.AvatarInitials,
		Preferences:    u.Preferences,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID)
	u.ID = id.Hex()
	u.CreatedAt = now
	u.UpdatedAt = now
	return u.ID, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	objID, ok := oid(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch repository.UserPatch) (bool, error) {
	objID, ok := oid(id)
	if !ok {
		return false, nil
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.FullName != nil {
		set["full_name"] = *patch.FullName
	}
	if patch.Password != nil {
		set["password"] = *patch.Password
	}
	if patch.AvatarInitials != nil {
		set["avatar_initials"] = *patch.AvatarInitials
	}
	if patch.Preferences != nil {
		for k, v := range patch.Preferences {
			set["preferences."+k] = v
		}
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	objID, ok := oid(id)
	if !ok {
		return repository.ErrNotFound
	}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"last_login": at}})
	return err
}

func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	return r.list(ctx, bson.M{"role": role})
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	return r.list(ctx, bson.M{})
}

func (r *UserRepository) list(ctx context.Context, filter bson.M) ([]*entity.User, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := make([]*entity.User, 0)
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		users = append(users, doc.toEntity())
	}
	return users, cur.Err()
}
