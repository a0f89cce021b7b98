package ui

import (
	"fmt"
	"net/url"
	"sprawl-lens/internal/assistant"
	"sprawl-lens/internal/chart"
	"sprawl-lens/internal/population"
	"sprawl-lens/internal/types"
	"sprawl-lens/internal/view"
)

// Page names used by the bottom navigation
const (
	PageIntro    = "intro"
	PageAnalysis = "analysis"
)

// RefreshSeconds is how often a loading dashboard reloads itself
const RefreshSeconds = 2

const (
	osmEmbedURL  = "https://www.openstreetmap.org/export/embed.html"
	osmSearchURL = "https://www.openstreetmap.org/search"
)

// DashboardPage is everything the dashboard template reads
type DashboardPage struct {
	ActivePage    string
	Title         string
	Region        string
	AssistantName string

	Location string
	Loading  bool
	Error    string

	Place     *types.Place
	MapURL    string
	SearchURL string
	Elevation string

	Data           *types.PopulationData
	SprawlRevealed bool
	Factors        []string
	Chart          chart.Chart

	Chat []types.ChatTurn

	RefreshSeconds int
}

// ShowSprawlToggle reports whether the reveal button should be offered
func (p DashboardPage) ShowSprawlToggle() bool {
	return p.Data.HasSprawlPredictions() && !p.SprawlRevealed
}

// ShowSprawl reports whether the predictions, hotspots and factors are visible
func (p DashboardPage) ShowSprawl() bool {
	return p.Data.HasSprawlPredictions() && p.SprawlRevealed
}

// IntroPage backs the landing page
type IntroPage struct {
	ActivePage      string
	Title           string
	Region          string
	AssistantName   string
	DefaultLocation string
	RefreshSeconds  int
}

// DefaultTitle is the header shown before any analysis has a title of its own
func DefaultTitle(region string) string {
	return fmt.Sprintf("%s Population Growth", region)
}

// NewDashboardPage builds the view model for a session snapshot
func NewDashboardPage(snap view.Snapshot, region string) DashboardPage {
	page := DashboardPage{
		ActivePage:    PageAnalysis,
		Title:         DefaultTitle(region),
		Region:        region,
		AssistantName: assistant.AssistantName,
		Location:      snap.Location,
		Loading:       snap.Loading(),
		Factors:       population.Factors,
		Chat:          snap.Chat,
		SearchURL:     SearchURL(snap.Location),
	}

	if page.Loading {
		page.RefreshSeconds = RefreshSeconds
	}

	if snap.Failed() {
		page.Error = snap.Error
	}

	// Last known title stays in the header while a new query loads
	if snap.Data != nil && snap.Data.Title != "" {
		page.Title = snap.Data.Title
	}

	if snap.Ready() {
		page.Data = snap.Data
		page.SprawlRevealed = snap.SprawlRevealed
		page.Chart = chart.Layout(snap.Data.PopulationTrend)

		if snap.Place != nil {
			page.Place = snap.Place
			page.MapURL = EmbedURL(*snap.Place)
			if m := snap.Place.ElevationMeters; m != nil {
				page.Elevation = fmt.Sprintf("%.0f m above sea level", *m)
			}
		}
	}

	return page
}

// NewIntroPage builds the landing page view model
func NewIntroPage(region, defaultLocation string) IntroPage {
	return IntroPage{
		ActivePage:      PageIntro,
		Title:           DefaultTitle(region),
		Region:          region,
		AssistantName:   assistant.AssistantName,
		DefaultLocation: defaultLocation,
	}
}

// EmbedURL points an OpenStreetMap embed at a resolved place
func EmbedURL(place types.Place) string {
	q := url.Values{}
	q.Set("bbox", place.BoundingBox.String())
	q.Set("layer", "mapnik")
	q.Set("marker", fmt.Sprintf("%f,%f", place.Coordinates.Latitude, place.Coordinates.Longitude))
	return osmEmbedURL + "?" + q.Encode()
}

// SearchURL links to an OpenStreetMap search for a location the geocoder could not resolve
func SearchURL(location string) string {
	return osmSearchURL + "?" + url.Values{"query": {location}}.Encode()
}
