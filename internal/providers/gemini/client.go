package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// API Docs: https://ai.google.dev/gemini-api/docs/structured-output
const (
	defaultModel = "gemini-2.5-pro"
	jsonMIMEType = "application/json"
)

// Client wraps the Gemini API for the two request shapes the dashboard uses:
// a schema-constrained JSON generation and a free-text conversation.
type Client struct {
	models *genai.Models
	model  string
	logger *slog.Logger
}

// NewClient creates a Gemini client for the given API key and model
func NewClient(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		models: client.Models,
		model:  model,
		logger: logger.With("component", "gemini-client", "model", model),
	}, nil
}

// Model returns the model name requests are sent to
func (c *Client) Model() string {
	return c.model
}

// GenerateJSON sends a single prompt constrained to the given response schema
// and returns the raw text payload. An empty string means the model produced
// no content; callers decide whether that is an error.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIMEType,
		ResponseSchema:   schema,
	}

	c.logger.Debug("sending structured request", "prompt_bytes", len(prompt))

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return responseText(resp), nil
}

// Converse sends an ordered turn history under a system instruction and
// returns the model's plain-text reply.
func (c *Client) Converse(ctx context.Context, systemInstruction string, turns []*genai.Content) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if systemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	c.logger.Debug("sending conversation", "turns", len(turns))

	resp, err := c.models.GenerateContent(ctx, c.model, turns, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return responseText(resp), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return strings.TrimSpace(resp.Text())
}
