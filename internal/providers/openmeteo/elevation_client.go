package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://open-meteo.com/en/docs/elevation-api
// Sample request: https://api.open-meteo.com/v1/elevation?latitude=43.6834&longitude=-79.7663
const (
	baseElevationURL = "https://api.open-meteo.com/v1/elevation"
)

// ErrNoElevation is returned when the response carries no value for the coordinate
var ErrNoElevation = errors.New("elevation response is empty")

type ElevationClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewElevationClient creates an elevation client; an empty base uses the public endpoint
func NewElevationClient(base string, logger *slog.Logger) *ElevationClient {
	if base == "" {
		base = baseElevationURL
	}
	return &ElevationClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    base,
		logger:     logger.With("component", "openmeteo-elevation-client"),
	}
}

// GetElevation returns the terrain height in metres at a coordinate
func (c *ElevationClient) GetElevation(ctx context.Context, latitude, longitude float64) (float64, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	c.logger.Debug("fetching elevation", "latitude", latitude, "longitude", longitude)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp ElevationAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(apiResp.Elevation) == 0 {
		return 0, ErrNoElevation
	}

	return apiResp.Elevation[0], nil
}
