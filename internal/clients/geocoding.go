package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/borourke9/leadscraper/internal/models"
)

// GeocodingClient calls the Google Geocoding API to resolve free-text
// addresses into coordinates.
type GeocodingClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGeocodingClient creates a new geocoding client. baseURL is overridable
// for tests and defaults to the public endpoint when empty.
func NewGeocodingClient(apiKey, baseURL string) *GeocodingClient {
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com"
	}
	return &GeocodingClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address string to zero or more candidate coordinates,
// in provider ranking order. Zero candidates is not an error.
func (c *GeocodingClient) Geocode(ctx context.Context, address string) ([]models.Coordinates, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	reqURL := c.baseURL + "/maps/api/geocode/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("clients: failed to build geocoding request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clients: geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("clients: geocoding API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("clients: failed to parse geocoding response: %w", err)
	}

	switch result.Status {
	case "OK", "ZERO_RESULTS":
	default:
		return nil, fmt.Errorf("clients: geocoding API returned status %q", result.Status)
	}

	coords := make([]models.Coordinates, 0, len(result.Results))
	for _, r := range result.Results {
		coords = append(coords, models.Coordinates{
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
		})
	}

	return coords, nil
}
