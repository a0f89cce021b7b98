package openmeteo

// ElevationAPIResponse is the body of the elevation endpoint; one value per requested coordinate
type ElevationAPIResponse struct {
	Elevation []float64 `json:"elevation"`
}
