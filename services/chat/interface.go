// File: services/chat/interface.go
package chat

import (
	"context"

	"servicebuddy/models"
	ai "servicebuddy/services/intelligence"
	"servicebuddy/services/profile"
	"servicebuddy/services/usage"
)

// ChatService handles one inbound chat message end to end.
type ChatService interface {
	HandleMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// DefaultChatService implements ChatService: classify → catalogue →
// compose, with profile accumulation, on-demand eligibility evaluation and
// the quota-gated AI fallback.
type DefaultChatService struct {
	Sessions profile.SessionStore
	Limiter  usage.Limiter

	// Generator is the collaborator built from the configured key; nil
	// when no key is configured. GeneratorFactory builds one for a
	// request-supplied key.
	Generator        ai.Generator
	GeneratorFactory ai.GeneratorFactory
}
