package population

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sprawl-lens/internal/types"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genai"
)

// StructuredProvider generates a JSON document constrained by a schema
type StructuredProvider interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// Service queries the model for a location's population analysis
type Service interface {
	// FetchPopulationInfo returns the analysis for location, or a *QueryError
	FetchPopulationInfo(ctx context.Context, location string) (*types.PopulationData, error)
}

type populationService struct {
	provider        StructuredProvider
	region          string
	defaultLocation string
	schema          *genai.Schema
	validate        *validator.Validate
	logger          *slog.Logger
}

// NewPopulationService creates a population service.
// region scopes the analyst persona; defaultLocation is used for blank queries.
func NewPopulationService(provider StructuredProvider, region, defaultLocation string, logger *slog.Logger) Service {
	return &populationService{
		provider:        provider,
		region:          region,
		defaultLocation: defaultLocation,
		schema:          ResponseSchema(),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		logger:          logger.With("component", "population-service"),
	}
}

func (s *populationService) FetchPopulationInfo(ctx context.Context, location string) (*types.PopulationData, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		location = s.defaultLocation
	}

	s.logger.Debug("fetching population info", "location", location)

	text, err := s.provider.GenerateJSON(ctx, BuildPrompt(s.region, location), s.schema)
	if err != nil {
		qe := classifyTransportError(err)
		s.logger.Error("population query failed",
			"location", location,
			"kind", qe.Kind.String(),
			"error", err,
		)
		return nil, qe
	}

	data, qe := s.decode(text)
	if qe != nil {
		s.logger.Error("population response rejected",
			"location", location,
			"kind", qe.Kind.String(),
			"error", qe.Err,
		)
		return nil, qe
	}

	s.logger.Debug("population info ready",
		"location", location,
		"trend_points", len(data.PopulationTrend),
		"hotspots", len(data.PredictedHotspots),
	)

	return data, nil
}

// decode parses, validates and normalises a text payload
func (s *populationService) decode(text string) (*types.PopulationData, *QueryError) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &QueryError{Kind: KindEmptyResponse}
	}

	var data types.PopulationData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, &QueryError{Kind: KindMalformed, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if err := s.validate.Struct(&data); err != nil {
		return nil, &QueryError{Kind: KindMalformed, Err: fmt.Errorf("response failed validation: %w", err)}
	}

	SortTrend(data.PopulationTrend)

	return &data, nil
}

// SortTrend orders points by ascending year; equal years keep their order
func SortTrend(points []types.PopulationDataPoint) {
	slices.SortStableFunc(points, func(a, b types.PopulationDataPoint) int {
		return a.Year - b.Year
	})
}
