package types

// Place is a geocoded location query shown on the map panel.
// ElevationMeters is nil when the terrain lookup failed.
type Place struct {
	Query           string      `json:"query"`
	Name            string      `json:"name"`
	DisplayName     string      `json:"displayName"`
	Coordinates     Coords      `json:"coordinates"`
	BoundingBox     BoundingBox `json:"boundingBox"`
	Timezone        string      `json:"timezone,omitempty"`
	ElevationMeters *float64    `json:"elevationMeters,omitempty"`
}
