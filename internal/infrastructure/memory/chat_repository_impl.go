package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

// ChatRepository is the in-memory conversation store, keyed by
// owner + session id.
type ChatRepository struct {
	mu       sync.Mutex
	sessions map[string]*entity.ChatSession
}

var _ repository.ChatRepository = (*ChatRepository)(nil)

func NewChatRepository() *ChatRepository {
	return &ChatRepository{sessions: make(map[string]*entity.ChatSession)}
}

func chatKey(ownerID, sessionID string) string {
	return ownerID + "/" + sessionID
}

func cloneSession(s *entity.ChatSession) *entity.ChatSession {
	cp := *s
	cp.Messages = append([]entity.ChatMessage(nil), s.Messages...)
	return &cp
}

func (r *ChatRepository) FindBySessionID(_ context.Context, sessionID, ownerID string) (*entity.ChatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[chatKey(ownerID, sessionID)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneSession(s), nil
}

func (r *ChatRepository) FindByOwner(_ context.Context, ownerID string, limit int) ([]*entity.ChatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := make([]*entity.ChatSession, 0)
	for _, s := range r.sessions {
		if s.UserID == ownerID {
			sessions = append(sessions, cloneSession(s))
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

func (r *ChatRepository) Save(_ context.Context, s *entity.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	key := chatKey(s.UserID, s.SessionID)
	if existing, ok := r.sessions[key]; ok {
		s.ID = existing.ID
		s.CreatedAt = existing.CreatedAt
	} else {
		s.ID = newID()
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	r.sessions[key] = cloneSession(s)
	return nil
}

func (r *ChatRepository) Delete(_ context.Context, sessionID, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := chatKey(ownerID, sessionID)
	if _, ok := r.sessions[key]; !ok {
		return false, nil
	}
	delete(r.sessions, key)
	return true, nil
}
