package location

import (
	"context"
	"errors"
	"log/slog"
	"sprawl-lens/internal/providers/openstreetmap"
	"sprawl-lens/internal/timezone"
	"sprawl-lens/internal/types"
	"strings"
	"testing"
)

// Mock providers for testing

type mockSearchProvider struct {
	response *openstreetmap.SearchResult
	err      error
	calls    int
}

func (m *mockSearchProvider) Search(ctx context.Context, query string) (*openstreetmap.SearchResult, error) {
	m.calls++
	return m.response, m.err
}

type mockElevationProvider struct {
	meters float64
	err    error
}

func (m *mockElevationProvider) GetElevation(ctx context.Context, latitude, longitude float64) (float64, error) {
	return m.meters, m.err
}

type mockTimezoneService struct {
	name string
	err  error
}

func (m *mockTimezoneService) GetTimezone(coords types.Coords) (string, error) {
	return m.name, m.err
}

func bramptonResult() *openstreetmap.SearchResult {
	return &openstreetmap.SearchResult{
		PlaceId:     1234,
		Lat:         "43.6834",
		Lon:         "-79.7663",
		Name:        "Brampton",
		DisplayName: "Brampton, Peel Region, Ontario, Canada",
		Boundingbox: []string{"43.5711", "43.8466", "-79.8888", "-79.6299"},
	}
}

func TestLocationService_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		response    *openstreetmap.SearchResult
		searchErr   error
		tz          *mockTimezoneService
		elevation   *mockElevationProvider
		wantErr     bool
		errContains string
		wantCalls   int
		validate    func(*testing.T, *types.Place)
	}{
		{
			name:      "successful resolve",
			query:     "  Brampton, Ontario ",
			response:  bramptonResult(),
			tz:        &mockTimezoneService{name: "America/Toronto"},
			elevation: &mockElevationProvider{meters: 218},
			wantCalls: 1,
			validate: func(t *testing.T, p *types.Place) {
				if p.ElevationMeters == nil || *p.ElevationMeters != 218 {
					t.Errorf("ElevationMeters = %v, want 218", p.ElevationMeters)
				}
				if p.Query != "Brampton, Ontario" {
					t.Errorf("Query = %q, want trimmed query", p.Query)
				}
				if p.Name != "Brampton" {
					t.Errorf("Name = %q, want %q", p.Name, "Brampton")
				}
				if p.Coordinates.Latitude != 43.6834 || p.Coordinates.Longitude != -79.7663 {
					t.Errorf("Coordinates = %+v", p.Coordinates)
				}
				if p.BoundingBox.South != 43.5711 || p.BoundingBox.East != -79.6299 {
					t.Errorf("BoundingBox = %+v", p.BoundingBox)
				}
				if p.Timezone != "America/Toronto" {
					t.Errorf("Timezone = %q, want %q", p.Timezone, "America/Toronto")
				}
			},
		},
		{
			name: "display name used when name is empty",
			query: "Peel",
			response: func() *openstreetmap.SearchResult {
				r := bramptonResult()
				r.Name = ""
				return r
			}(),
			wantCalls: 1,
			validate: func(t *testing.T, p *types.Place) {
				if p.Name != "Brampton, Peel Region, Ontario, Canada" {
					t.Errorf("Name = %q", p.Name)
				}
				if p.Timezone != "" {
					t.Errorf("Timezone = %q, want empty without a timezone service", p.Timezone)
				}
			},
		},
		{
			name:      "timezone and elevation failures are tolerated",
			query:     "Brampton",
			response:  bramptonResult(),
			tz:        &mockTimezoneService{err: errors.New("outside polygons")},
			elevation: &mockElevationProvider{err: errors.New("open-meteo down")},
			wantCalls: 1,
			validate: func(t *testing.T, p *types.Place) {
				if p.ElevationMeters != nil {
					t.Errorf("ElevationMeters = %v, want nil", *p.ElevationMeters)
				}
				if p.Timezone != "" {
					t.Errorf("Timezone = %q, want empty", p.Timezone)
				}
			},
		},
		{
			name:        "empty query",
			query:       "   ",
			wantErr:     true,
			errContains: "location query is empty",
		},
		{
			name:        "search provider error",
			query:       "Brampton",
			searchErr:   errors.New("nominatim down"),
			wantErr:     true,
			errContains: "failed to search place",
			wantCalls:   1,
		},
		{
			name:  "malformed bounding box",
			query: "Brampton",
			response: func() *openstreetmap.SearchResult {
				r := bramptonResult()
				r.Boundingbox = []string{"1", "2"}
				return r
			}(),
			wantErr:     true,
			errContains: "bounding box has 2 values",
			wantCalls:   1,
		},
		{
			name:  "malformed latitude",
			query: "Brampton",
			response: func() *openstreetmap.SearchResult {
				r := bramptonResult()
				r.Lat = "north"
				return r
			}(),
			wantErr:     true,
			errContains: "invalid latitude",
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockSearchProvider{response: tt.response, err: tt.searchErr}

			var tz timezone.Service
			if tt.tz != nil {
				tz = tt.tz
			}
			var elevation ElevationProvider
			if tt.elevation != nil {
				elevation = tt.elevation
			}
			svc := NewLocationServiceWithProviders(provider, elevation, tz, slog.Default())

			got, err := svc.Resolve(context.Background(), tt.query)

			if provider.calls != tt.wantCalls {
				t.Errorf("provider calls = %d, want %d", provider.calls, tt.wantCalls)
			}

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve() expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Resolve() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve() unexpected error = %v", err)
			}

			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}
