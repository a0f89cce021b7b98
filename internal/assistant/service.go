package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sprawl-lens/internal/types"
	"strings"

	"google.golang.org/genai"
)

const (
	// AssistantName is how the assistant introduces itself
	AssistantName = "Urbo"

	// FallbackReply is returned when the model answers with no text
	FallbackReply = "No response generated from Gemini API."

	// NoResponseMessage is shown to the user in place of any chat failure
	NoResponseMessage = "Sorry, I couldn't get a response from the AI. Please try again."
)

var (
	// ErrNoResponse is the single failure chat queries report; see NoResponseMessage
	ErrNoResponse = errors.New("assistant could not produce a response")

	// ErrEmptyQuestion is returned before any remote call for blank input
	ErrEmptyQuestion = errors.New("question is empty")
)

// ConversationProvider sends a turn history under a system instruction
type ConversationProvider interface {
	Converse(ctx context.Context, systemInstruction string, turns []*genai.Content) (string, error)
}

// Service answers free-text questions about the region
type Service interface {
	Ask(ctx context.Context, question string, history []types.ChatTurn) (string, error)
}

type assistantService struct {
	provider ConversationProvider
	persona  string
	logger   *slog.Logger
}

// NewAssistantService creates an assistant scoped to region
func NewAssistantService(provider ConversationProvider, region string, logger *slog.Logger) Service {
	return &assistantService{
		provider: provider,
		persona:  Persona(region),
		logger:   logger.With("component", "assistant-service"),
	}
}

// Persona is the fixed system instruction for the assistant
func Persona(region string) string {
	return fmt.Sprintf(
		"You are %s, a helpful AI assistant powered by Google Gemini. "+
			"You specialize in the %s's population growth, infrastructure, and urban planning. "+
			"Your responses must be short, point-form, and factual. Stay on topic. "+
			"If a question is unrelated, politely decline.",
		AssistantName, region,
	)
}

// Ask appends question to history and returns the model's reply.
// history is not modified.
func (s *assistantService) Ask(ctx context.Context, question string, history []types.ChatTurn) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	turns := toContents(history)
	turns = append(turns, genai.NewContentFromText(question, genai.RoleUser))

	reply, err := s.provider.Converse(ctx, s.persona, turns)
	if err != nil {
		s.logger.Error("chat query failed", "turns", len(turns), "error", err)
		return "", ErrNoResponse
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return FallbackReply, nil
	}
	return reply, nil
}

// toContents converts prior turns. Failed or empty turns are skipped, and so is
// the question a failed turn was answering, so user and model keep alternating.
func toContents(history []types.ChatTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for i, turn := range history {
		if turn.Failed || strings.TrimSpace(turn.Text) == "" {
			continue
		}
		if turn.Role == types.ChatRoleUser && i+1 < len(history) && history[i+1].Failed {
			continue
		}
		role := genai.Role(genai.RoleUser)
		if turn.Role == types.ChatRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	return contents
}
