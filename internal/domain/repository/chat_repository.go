package repository

import (
	"context"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
)

// ChatRepository persists assistant conversations keyed by (session id,
// owner). Save upserts the whole message history.
type ChatRepository interface {
	FindBySessionID(ctx context.Context, sessionID, ownerID string) (*entity.ChatSession, error)
	FindByOwner(ctx context.Context, ownerID string, limit int) ([]*entity.ChatSession, error)
	Save(ctx context.Context, s *entity.ChatSession) error
	Delete(ctx context.Context, sessionID, ownerID string) (bool, error)
}
