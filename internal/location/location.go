package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sprawl-lens/internal/providers/openmeteo"
	"sprawl-lens/internal/providers/openstreetmap"
	"sprawl-lens/internal/timezone"
	"sprawl-lens/internal/types"
	"strconv"
	"strings"
)

// ErrEmptyQuery is returned when there is nothing to search for
var ErrEmptyQuery = errors.New("location query is empty")

// Service resolves free-text location queries into map places
type Service interface {
	// Resolve geocodes a location query such as a hotspot's map-searchable string
	Resolve(ctx context.Context, query string) (*types.Place, error)
}

// PlaceSearchProvider defines the interface for forward geocoding providers
type PlaceSearchProvider interface {
	Search(ctx context.Context, query string) (*openstreetmap.SearchResult, error)
}

// ElevationProvider defines the interface for terrain height lookups
type ElevationProvider interface {
	GetElevation(ctx context.Context, latitude, longitude float64) (float64, error)
}

// locationService implements the Service interface
type locationService struct {
	searchProvider    PlaceSearchProvider
	elevationProvider ElevationProvider
	timezoneService   timezone.Service
	logger            *slog.Logger
}

// NewLocationService creates a new location service with real provider clients.
// A nil timezone service leaves Place.Timezone empty.
func NewLocationService(baseURL, userAgent string, tz timezone.Service, logger *slog.Logger) Service {
	return NewLocationServiceWithProviders(
		openstreetmap.NewClient(baseURL, userAgent, logger),
		openmeteo.NewElevationClient("", logger),
		tz,
		logger,
	)
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers. elevationProvider and tz may be nil.
func NewLocationServiceWithProviders(
	searchProvider PlaceSearchProvider,
	elevationProvider ElevationProvider,
	tz timezone.Service,
	logger *slog.Logger,
) Service {
	return &locationService{
		searchProvider:    searchProvider,
		elevationProvider: elevationProvider,
		timezoneService:   tz,
		logger:            logger.With("component", "location-service"),
	}
}

// Resolve searches for the query and translates the best match into a Place
func (s *locationService) Resolve(ctx context.Context, query string) (*types.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	result, err := s.searchProvider.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search place: %w", err)
	}

	place, err := translateSearchResult(query, result)
	if err != nil {
		return nil, err
	}

	if s.elevationProvider != nil {
		elevation, err := s.elevationProvider.GetElevation(ctx, place.Coordinates.Latitude, place.Coordinates.Longitude)
		if err != nil {
			s.logger.Warn("failed to fetch elevation", "query", query, "error", err)
		} else {
			place.ElevationMeters = &elevation
		}
	}

	if s.timezoneService != nil {
		tz, err := s.timezoneService.GetTimezone(place.Coordinates)
		if err != nil {
			s.logger.Warn("failed to determine timezone", "query", query, "error", err)
		} else {
			place.Timezone = tz
		}
	}

	return place, nil
}

// translateSearchResult converts a Nominatim search hit to the domain Place type
func translateSearchResult(query string, resp *openstreetmap.SearchResult) (*types.Place, error) {
	if resp == nil {
		return nil, fmt.Errorf("search response is nil")
	}

	lat, err := strconv.ParseFloat(resp.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", resp.Lat, err)
	}
	lon, err := strconv.ParseFloat(resp.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", resp.Lon, err)
	}

	box, err := parseBoundingBox(resp.Boundingbox)
	if err != nil {
		return nil, err
	}

	name := resp.DisplayName
	if resp.Name != "" {
		name = resp.Name
	}

	return &types.Place{
		Query:       query,
		Name:        name,
		DisplayName: resp.DisplayName,
		Coordinates: types.NewCoords(lat, lon),
		BoundingBox: box,
	}, nil
}

// parseBoundingBox reads Nominatim's [south, north, west, east] string array
func parseBoundingBox(raw []string) (types.BoundingBox, error) {
	if len(raw) != 4 {
		return types.BoundingBox{}, fmt.Errorf("bounding box has %d values, want 4", len(raw))
	}

	var vals [4]float64
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return types.BoundingBox{}, fmt.Errorf("invalid bounding box value %q: %w", s, err)
		}
		vals[i] = v
	}

	return types.BoundingBox{
		South: vals[0],
		North: vals[1],
		West:  vals[2],
		East:  vals[3],
	}, nil
}
