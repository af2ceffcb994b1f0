package repository

import (
	"context"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
)

// NotificationFilter narrows an owner-scoped listing. Read=nil means both
// read and unread.
type NotificationFilter struct {
	Read  *bool
	Limit int
}

// NotificationRepository is the owner-scoped notification store. Listings are
// ordered by creation time descending.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) (string, error)
	FindByOwner(ctx context.Context, ownerID string, f NotificationFilter) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, ownerID string) (int, error)
	MarkRead(ctx context.Context, id, ownerID string) (bool, error)
	MarkAllRead(ctx context.Context, ownerID string) (int, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
