package entity

import (
	"strings"
	"time"
)

// Roles. Administrator accounts may read other users' profiles; everything
// else is owner-scoped regardless of role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the authenticated principal. Passwords are stored as bcrypt hashes
// in Password and never serialized.
type User struct {
	ID             string                 `json:"user_id"`
	Email          string                 `json:"email"`
	Password       string                 `json:"-"`
	FullName       string                 `json:"full_name"`
	Role           string                 `json:"role"`
	AvatarInitials string                 `json:"avatar_initials"`
	Preferences    map[string]interface{} `json:"preferences"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	LastLogin      *time.Time             `json:"last_login"`
}

// DefaultPreferences returns the preference map new accounts start with.
func DefaultPreferences() map[string]interface{} {
	return map[string]interface{}{
		"language":        "en",
		"theme":           "system",
		"notifications":   true,
		"email_reminders": true,
	}
}

// AvatarInitialsFor derives up to two uppercase initials from a full name.
func AvatarInitialsFor(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
	}
	return b.String()
}
