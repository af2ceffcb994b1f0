package repository

import (
	"context"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
)

// TaskFilter narrows an owner-scoped listing. Zero values mean "no
// constraint".
type TaskFilter struct {
	Status   string
	Priority string
	Assignee string
}

// TaskPatch carries partial updates; nil fields are left untouched. A status
// change to done stamps CompletedAt when unset, a change away from done
// clears it. That rule lives in the store implementations so both enforce it
// identically.
type TaskPatch struct {
	Title          *string
	Description    *string
	MeetingID      *string
	Assignee       *string
	AssigneeUserID *string
	DueDate        *string
	Priority       *string
	Status         *string
	Tags           []string
}

// TaskRepository is the owner-scoped task store. Listings are ordered by due
// date ascending.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) (string, error)
	FindByID(ctx context.Context, id, ownerID string) (*entity.Task, error)
	FindByOwner(ctx context.Context, ownerID string, f TaskFilter) ([]*entity.Task, error)
	// FindOverdue returns not-done tasks due strictly before today.
	FindOverdue(ctx context.Context, ownerID string) ([]*entity.Task, error)
	FindByMeeting(ctx context.Context, meetingID, ownerID string) ([]*entity.Task, error)
	Update(ctx context.Context, id, ownerID string, patch TaskPatch) (bool, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
