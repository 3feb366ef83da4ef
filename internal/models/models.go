package models

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Business represents a single lead: a local service business with no website,
// assembled from a filtered and deduplicated places result.
type Business struct {
	Name      string   `json:"name"`
	Phone     string   `json:"phone,omitempty"`
	Address   string   `json:"address"`
	Rating    *float64 `json:"rating,omitempty"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Category  string   `json:"category"`
}

// SearchRequest carries the parsed inputs of one lead search.
type SearchRequest struct {
	City        string
	State       string
	RadiusMiles float64
	Categories  []string
}

// SearchSummary echoes the effective search inputs alongside result counts.
type SearchSummary struct {
	TotalSearched   int      `json:"totalSearched"`
	WithoutWebsites int      `json:"withoutWebsites"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	RadiusMiles     float64  `json:"radiusMiles"`
	Categories      []string `json:"categories"`
}

// SearchDebug exposes resolution and call details for the client's debug panel.
type SearchDebug struct {
	Center       Coordinates `json:"center"`
	RadiusMeters int         `json:"radiusMeters"`
	APICalls     int         `json:"apiCalls"`
}

// SearchResponse is the payload of a successful search.
type SearchResponse struct {
	Businesses []Business    `json:"businesses"`
	Summary    SearchSummary `json:"summary"`
	Debug      SearchDebug   `json:"debug"`
}
