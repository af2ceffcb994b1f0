package entity

import "time"

// Chat message senders.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

type ChatMessage struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession groups the messages of one assistant conversation. SessionID is
// a client-chosen key ("default" unless the client manages several threads);
// the session is owned by exactly one user.
type ChatSession struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	SessionID string        `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
