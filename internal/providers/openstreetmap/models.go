package openstreetmap

// SearchResult is one entry of a Nominatim search response
type SearchResult struct {
	PlaceId     int     `json:"place_id"`
	Licence     string  `json:"licence"`
	OsmType     string  `json:"osm_type"`
	OsmId       int     `json:"osm_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
	PlaceRank   int     `json:"place_rank"`
	Importance  float64 `json:"importance"`
	Addresstype string  `json:"addresstype"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	// south, north, west, east
	Boundingbox []string `json:"boundingbox"`
}

// SearchAPIResponse is the array Nominatim returns for format=jsonv2
type SearchAPIResponse []SearchResult
