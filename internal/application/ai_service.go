package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	repo "github.com/Rihab-nikh/followUp-Backend/internal/domain/repository"
	"github.com/Rihab-nikh/followUp-Backend/pkg/assistant"
)

const assistantUnavailable = "I'm experiencing technical difficulties. Please try again later."

// AIService forwards chat messages to the configured completer and persists
// both sides of the conversation.
type AIService struct {
	Chats     repo.ChatRepository
	Completer assistant.Completer
	Logger    *logrus.Logger
}

func NewAIService(chats repo.ChatRepository, completer assistant.Completer, logger *logrus.Logger) *AIService {
	return &AIService{Chats: chats, Completer: completer, Logger: logger}
}

// Chat produces a reply for the message and appends both messages to the
// session history. Completer failures degrade to a canned reply instead of
// failing the request.
func (s *AIService) Chat(ctx context.Context, userID, sessionID, message string) (string, error) {
	reply, err := s.Completer.Complete(ctx, message)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("backend", s.Completer.Name()).Error("assistant completion failed")
		}
		reply = assistantUnavailable
	}

	session, err := s.Chats.FindBySessionID(ctx, sessionID, userID)
	if errors.Is(err, repo.ErrNotFound) {
		session = &entity.ChatSession{UserID: userID, SessionID: sessionID}
	} else if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	session.Messages = append(session.Messages,
		entity.ChatMessage{Sender: entity.SenderUser, Text: message, Timestamp: now},
		entity.ChatMessage{Sender: entity.SenderAI, Text: reply, Timestamp: now},
	)
	if err := s.Chats.Save(ctx, session); err != nil {
		return "", err
	}
	return reply, nil
}

// History returns the session's messages, oldest first. An unknown session
// yields an empty history rather than an error.
func (s *AIService) History(ctx context.Context, userID, sessionID string) ([]entity.ChatMessage, error) {
	session, err := s.Chats.FindBySessionID(ctx, sessionID, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return []entity.ChatMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	if session.Messages == nil {
		return []entity.ChatMessage{}, nil
	}
	return session.Messages, nil
}
