package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

// NotificationRepository is the in-memory notification store.
type NotificationRepository struct {
	mu     sync.Mutex
	notifs map[string]*entity.Notification
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{notifs: make(map[string]*entity.Notification)}
}

func (r *NotificationRepository) Create(_ context.Context, n *entity.Notification) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = newID()
	n.CreatedAt = time.Now().UTC()
	cp := *n
	r.notifs[n.ID] = &cp
	return n.ID, nil
}

func (r *NotificationRepository) FindByOwner(_ context.Context, ownerID string, f repository.NotificationFilter) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notifs := make([]*entity.Notification, 0)
	for _, n := range r.notifs {
		if n.UserID != ownerID {
			continue
		}
		if f.Read != nil && n.Read != *f.Read {
			continue
		}
		cp := *n
		notifs = append(notifs, &cp)
	}
	sort.Slice(notifs, func(i, j int) bool {
		return notifs[i].CreatedAt.After(notifs[j].CreatedAt)
	})
	if f.Limit > 0 && len(notifs) > f.Limit {
		notifs = notifs[:f.Limit]
	}
	return notifs, nil
}

func (r *NotificationRepository) CountUnread(_ context.Context, ownerID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, n := range r.notifs {
		if n.UserID == ownerID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifs[id]
	if !ok || n.UserID != ownerID {
		return false, nil
	}
	n.Read = true
	return true, nil
}

func (r *NotificationRepository) MarkAllRead(_ context.Context, ownerID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, n := range r.notifs {
		if n.UserID == ownerID && !n.Read {
			n.Read = true
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) Delete(_ context.Context, id, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifs[id]
	if !ok || n.UserID != ownerID {
		return false, nil
	}
	delete(r.notifs, id)
	return true, nil
}
