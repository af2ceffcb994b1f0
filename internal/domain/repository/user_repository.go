package repository

import (
	"context"
	"time"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
)

// UserPatch carries the fields a profile update may change. Nil fields are
// left untouched.
type UserPatch struct {
	Email          *string
	FullName       *string
	Password       *string
	AvatarInitials *string
	Preferences    map[string]interface{}
}

// UserRepository resolves and persists identities. Ids are canonical strings;
// email is globally unique.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) (string, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (bool, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
