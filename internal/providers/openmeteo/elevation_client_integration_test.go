//go:build integration

package openmeteo

import (
	"context"
	"log/slog"
	"testing"
)

func TestElevationClient_GetElevation_Integration(t *testing.T) {
	// Test coordinates: Brampton, ON
	lat := 43.6834
	lon := -79.7663

	client := NewElevationClient("", slog.Default())

	t.Logf("Making API call to OpenMeteo Elevation API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	elevation, err := client.GetElevation(context.Background(), lat, lon)
	if err != nil {
		t.Fatalf("Failed to get elevation: %v", err)
	}

	t.Logf("Elevation: %v meters", elevation)

	// Sanity check - the Peel plain sits well under 500 metres
	if elevation < 50 || elevation > 500 {
		t.Errorf("Elevation seems unreasonable: %v meters", elevation)
	}
}
