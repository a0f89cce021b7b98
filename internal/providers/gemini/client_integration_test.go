//go:build integration

package gemini

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"google.golang.org/genai"
)

func newIntegrationClient(t *testing.T) *Client {
	t.Helper()
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		t.Skip("GOOGLE_API_KEY not set")
	}

	client, err := NewClient(context.Background(), apiKey, "", slog.Default())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func TestClient_GenerateJSON_Integration(t *testing.T) {
	client := newIntegrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"city":       {Type: genai.TypeString},
			"population": {Type: genai.TypeNumber},
		},
		Required: []string{"city", "population"},
	}

	t.Logf("Making structured request to %s...", client.Model())

	text, err := client.GenerateJSON(ctx, "Give the approximate 2021 census population of Toronto as JSON.", schema)
	if err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	t.Logf("Raw API Response:\n%s", text)

	var out struct {
		City       string  `json:"city"`
		Population float64 `json:"population"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if out.Population <= 0 {
		t.Errorf("Population = %v, want > 0", out.Population)
	}

	t.Log("✓ structured response matched schema")
}

func TestClient_Converse_Integration(t *testing.T) {
	client := newIntegrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	turns := []*genai.Content{
		genai.NewContentFromText("Name one transit line in Toronto.", genai.RoleUser),
	}

	reply, err := client.Converse(ctx, "Answer in one short sentence.", turns)
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if reply == "" {
		t.Error("reply is empty")
	}

	t.Logf("Reply: %s", reply)
}
