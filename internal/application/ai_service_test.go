package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rihab-nikh/followUp-Backend/internal/domain/entity"
	"github.com/Rihab-nikh/followUp-Backend/internal/infrastructure/memory"
	"github.com/Rihab-nikh/followUp-Backend/pkg/assistant"
)

type failingCompleter struct{}

func (failingCompleter) Complete(context.Context, string) (string, error) {
	return "", errors.New("backend down")
}
func (failingCompleter) Name() string { return "failing" }

func TestChatPersistsBothSides(t *testing.T) {
	ctx := context.Background()
	s := NewAIService(memory.NewChatRepository(), assistant.NewMock(), nil)

	reply, err := s.Chat(ctx, "u", "default", "Can you help me schedule a meeting?")
	require.NoError(t, err)
	require.NotEmpty(t, reply)
	require.Contains(t, strings.ToLower(reply), "meeting")

	history, err := s.History(ctx, "u", "default")
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, entity.SenderUser, history[0].Sender)
	require.Equal(t, entity.SenderAI, history[1].Sender)
	require.Equal(t, reply, history[1].Text)
}

func TestChatAppendsToSession(t *testing.T) {
	ctx := context.Background()
	s := NewAIService(memory.NewChatRepository(), assistant.NewMock(), nil)

	_, err := s.Chat(ctx, "u", "default", "hello")
	require.NoError(t, err)
	_, err = s.Chat(ctx, "u", "default", "what about my tasks?")
	require.NoError(t, err)

	history, err := s.History(ctx, "u", "default")
	require.NoError(t, err)
	require.Len(t, history, 4)
}

func TestChatSessionsAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	s := NewAIService(memory.NewChatRepository(), assistant.NewMock(), nil)

	_, err := s.Chat(ctx, "alice", "default", "hello")
	require.NoError(t, err)

	history, err := s.History(ctx, "bob", "default")
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestChatDegradesWhenCompleterFails(t *testing.T) {
	ctx := context.Background()
	s := NewAIService(memory.NewChatRepository(), failingCompleter{}, nil)

	reply, err := s.Chat(ctx, "u", "default", "hello")
	require.NoError(t, err, "a completer failure must not fail the request")
	require.Equal(t, assistantUnavailable, reply)

	history, err := s.History(ctx, "u", "default")
	require.NoError(t, err)
	require.Len(t, history, 2, "the degraded exchange is still recorded")
}

func TestHistoryUnknownSession(t *testing.T) {
	s := NewAIService(memory.NewChatRepository(), assistant.NewMock(), nil)

	history, err := s.History(context.Background(), "u", "nope")
	require.NoError(t, err)
	require.NotNil(t, history)
	require.Empty(t, history)
}
