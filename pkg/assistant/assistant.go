// Package assistant abstracts the AI chat backend. The server uses the
// Gemini-backed completer when an API key is configured and falls back to a
// canned keyword responder otherwise, so the chat endpoints work without
// external credentials.
package assistant

import "context"

// Completer produces one assistant reply for a user message.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
	// Name reports which backend produced the replies ("gemini" or "mock").
	Name() string
}
