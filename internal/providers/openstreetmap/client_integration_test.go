//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestClient_Search_Integration(t *testing.T) {
	query := "Vaughan Metropolitan Centre, Ontario"

	client := NewClient("", "", slog.Default())

	t.Logf("Making API call to OpenStreetMap Nominatim API...")
	t.Logf("Query: %s", query)

	resp, err := client.Search(context.Background(), query)
	if err != nil {
		t.Fatalf("Failed to search place: %v", err)
	}

	// Pretty print the raw response
	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.PlaceId == 0 {
		t.Error("PlaceId is 0")
	}

	if resp.DisplayName == "" {
		t.Error("DisplayName is empty")
	}

	if resp.Lat == "" || resp.Lon == "" {
		t.Error("Lat/Lon fields are empty")
	}

	if len(resp.Boundingbox) != 4 {
		t.Errorf("Expected boundingbox to have 4 values, got %d", len(resp.Boundingbox))
	} else {
		t.Logf("  Bounding Box: %v", resp.Boundingbox)
	}

	t.Log("✓ API call successful, response structure valid")
}
