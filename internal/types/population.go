package types

// TrendType marks a population figure as observed or forecast
type TrendType string

const (
	TrendHistorical TrendType = "historical"
	TrendProjected  TrendType = "projected"
)

// PopulationDataPoint is one year's population figure. Population is capped
// at 1e11, far above any real region, to reject runaway model output.
type PopulationDataPoint struct {
	Year       int       `json:"year" validate:"gt=0"`
	Population float64   `json:"population" validate:"gte=0,lte=100000000000"`
	Type       TrendType `json:"type" validate:"oneof=historical projected"`
}

// KeyPoint is a free-form narrative bullet
type KeyPoint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UrbanSprawlPrediction is a titled statement about future urban expansion
type UrbanSprawlPrediction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PredictedHotspot is a named sub-area predicted to grow.
// LocationQuery is a map-searchable string that can be fed back as a new location.
type PredictedHotspot struct {
	Name          string `json:"name"`
	LocationQuery string `json:"locationQuery" validate:"required"`
	Reason        string `json:"reason"`
}

// PopulationData is the full analysis for one location query.
// Every list may be nil or empty.
type PopulationData struct {
	Title                  string                  `json:"title"`
	Summary                string                  `json:"summary"`
	KeyPoints              []KeyPoint              `json:"keyPoints,omitempty" validate:"dive"`
	PopulationTrend        []PopulationDataPoint   `json:"populationTrend,omitempty" validate:"dive"`
	UrbanSprawlPredictions []UrbanSprawlPrediction `json:"urbanSprawlPredictions,omitempty" validate:"dive"`
	PredictedHotspots      []PredictedHotspot      `json:"predictedHotspots,omitempty" validate:"dive"`
}

// HasSprawlPredictions reports whether there is anything to reveal
func (d *PopulationData) HasSprawlPredictions() bool {
	return d != nil && len(d.UrbanSprawlPredictions) > 0
}
