// Package memory provides in-memory implementations of every repository
// interface. The server falls back to this store when MongoDB is unreachable
// so the API stays usable in local development; the same implementations back
// the test suites.
package memory

import (
	"github.com/google/uuid"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
)

// NewRepositories wires one in-memory implementation of every repository
// interface. Each repository guards its own map; nothing is shared between
// them.
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		Users:         NewUserRepository(),
		Meetings:      NewMeetingRepository(),
		Tasks:         NewTaskRepository(),
		Notifications: NewNotificationRepository(),
		Chats:         NewChatRepository(),
		KPIs:          NewKPIRepository(),
	}
}

func newID() string {
	return uuid.NewString()
}
