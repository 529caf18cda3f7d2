// File: services/intelligence/interface.go
package ai

import (
	"context"
	"fmt"
	"strings"
)

// Generator is the external AI collaborator boundary: one prompt in, one
// free-text reply out. Every failure behind it is recovered locally with a
// canned fallback and never surfaced to the user as an error.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GeneratorFactory builds a Generator for an API key, letting a request
// carry its own key instead of the configured one.
type GeneratorFactory func(apiKey string) (Generator, error)

// NewGeminiGenerator is the default factory.
func NewGeminiGenerator(apiKey string) (Generator, error) {
	return NewGeminiClient(apiKey)
}

// BuildPrompt frames the user's message for the collaborator. The persona
// and reading-level instructions are fixed; only the message varies.
func BuildPrompt(message string) string {
	var sb strings.Builder
	sb.WriteString("You are Service-Buddy, an empathetic AI assistant helping Australians navigate government services during life events. ")
	sb.WriteString("Provide clear, compassionate responses in Grade 6 reading level. ")
	sb.WriteString("You know about services for job loss, birth of a child, disability, age pension, natural disasters, carers and healthcare. ")
	sb.WriteString("If the message relates to one of those life events, name it plainly so the right services can be attached.\n\n")
	fmt.Fprintf(&sb, "The user said: %s", message)
	return sb.String()
}
