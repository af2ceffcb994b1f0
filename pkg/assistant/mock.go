package assistant

import (
	"context"
	"strings"
)

// Mock is the keyword responder used when no Gemini API key is configured.
type Mock struct{}

var _ Completer = (*Mock)(nil)

func NewMock() *Mock { return &Mock{} }

func (m *Mock) Complete(_ context.Context, message string) (string, error) {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "schedule") || strings.Contains(lower, "meeting"):
		return "I can help you schedule meetings. Would you like to create a new meeting or view your upcoming schedule?", nil
	case strings.Contains(lower, "task"):
		return "I can assist with task management. You can create tasks, set priorities, and track their progress.", nil
	case strings.Contains(lower, "reminder") || strings.Contains(lower, "follow"):
		return "I'll help you set up reminders and follow-ups. When would you like to be reminded?", nil
	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi") || strings.Contains(lower, "hey"):
		return "Hello! I'm your AI assistant for meeting management. How can I help you today?", nil
	default:
		return "I'm here to help with your meetings, tasks, and scheduling. What would you like to know?", nil
	}
}

func (m *Mock) Name() string { return "mock" }
