package repository

import "errors"

// ErrNotFound is returned when a lookup matches no record for the acting
// owner. Store-specific "no rows" conditions never cross this boundary.
var ErrNotFound = errors.New("not found")

// Repositories bundles one implementation of every repository interface.
// The application is wired against this struct so the Mongo-backed and the
// in-memory stores are interchangeable.
type Repositories struct {
	Users         UserRepository
	Meetings      MeetingRepository
	Tasks         TaskRepository
	Notifications NotificationRepository
	Chats         ChatRepository
	KPIs          KPIRepository
}
