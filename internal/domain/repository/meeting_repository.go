package repository

import (
	"context"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
)

// MeetingFilter narrows an owner-scoped listing. Zero values mean "no
// constraint". Dates are YYYY-MM-DD strings compared lexically.
type MeetingFilter struct {
	Status   string
	DateFrom string
	DateTo   string
}

// MeetingPatch carries partial updates; nil fields are left untouched.
type MeetingPatch struct {
	Company        *string
	Contact        *string
	Subject        *string
	Description    *string
	Date           *string
	Time           *string
	Duration       *int
	Location       *string
	Status         *string
	Priority       *string
	Notes          *string
	Attendees      []string
	Tags           []string
	Phone          *string
	Email          *string
	CompanyAddress *string
}

// MeetingRepository is the owner-scoped meeting store. Every read and write
// includes the owner id in its match predicate; listings are ordered by date
// ascending.
type MeetingRepository interface {
	Create(ctx context.Context, m *entity.Meeting) (string, error)
	FindByID(ctx context.Context, id, ownerID string) (*entity.Meeting, error)
	FindByOwner(ctx context.Context, ownerID string, f MeetingFilter) ([]*entity.Meeting, error)
	// FindUpcoming returns scheduled meetings dated on or before today+days.
	FindUpcoming(ctx context.Context, ownerID string, days int) ([]*entity.Meeting, error)
	FindByDate(ctx context.Context, ownerID, date string) ([]*entity.Meeting, error)
	Update(ctx context.Context, id, ownerID string, patch MeetingPatch) (bool, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
