package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

// UserRepository is the in-memory identity store.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User)}
}

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	if u.Preferences != nil {
		cp.Preferences = make(map[string]interface{}, len(u.Preferences))
		for k, v := range u.Preferences {
			cp.Preferences[k] = v
		}
	}
	if u.LastLogin != nil {
		t := *u.LastLogin
		cp.LastLogin = &t
	}
	return &cp
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// mirror the unique email index of the document store
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return "", errors.New("email already exists")
		}
	}

	now := time.Now().UTC()
	u.ID = newID()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = cloneUser(u)
	return u.ID, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Update(_ context.Context, id string, patch repository.UserPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.AvatarInitials != nil {
		u.AvatarInitials = *patch.AvatarInitials
	}
	if patch.Preferences != nil {
		if u.Preferences == nil {
			u.Preferences = make(map[string]interface{})
		}
		for k, v := range patch.Preferences {
			u.Preferences[k] = v
		}
	}
	u.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *UserRepository) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	t := at
	u.LastLogin = &t
	return nil
}

func (r *UserRepository) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*entity.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			users = append(users, cloneUser(u))
		}
	}
	sortUsers(users)
	return users, nil
}

func (r *UserRepository) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, cloneUser(u))
	}
	sortUsers(users)
	return users, nil
}

func sortUsers(users []*entity.User) {
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
}
