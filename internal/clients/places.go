package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/borourke9/leadscraper/internal/models"
)

// maxResultsPerCall is the fixed result cap sent with every nearby search.
const maxResultsPerCall = 20

// nearbySearchFieldMask limits each response to the fields the lead
// pipeline actually consumes.
const nearbySearchFieldMask = "places.displayName,places.formattedAddress,places.websiteUri," +
	"places.nationalPhoneNumber,places.rating,places.location,places.types"

// PlacesClient calls the Google Places API (New) nearby search endpoint.
type PlacesClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPlacesClient creates a new places client. baseURL is overridable for
// tests and defaults to the public endpoint when empty.
func NewPlacesClient(apiKey, baseURL string) *PlacesClient {
	if baseURL == "" {
		baseURL = "https://places.googleapis.com"
	}
	return &PlacesClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Place is one raw result from a nearby search, prior to any filtering.
type Place struct {
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	FormattedAddress    string             `json:"formattedAddress"`
	WebsiteURI          string             `json:"websiteUri,omitempty"`
	NationalPhoneNumber string             `json:"nationalPhoneNumber,omitempty"`
	Rating              *float64           `json:"rating,omitempty"`
	Location            models.Coordinates `json:"location"`
	Types               []string           `json:"types"`
}

type nearbySearchRequest struct {
	IncludedTypes       []string `json:"includedTypes"`
	MaxResultCount      int      `json:"maxResultCount"`
	LocationRestriction struct {
		Circle struct {
			Center models.Coordinates `json:"center"`
			Radius float64            `json:"radius"`
		} `json:"circle"`
	} `json:"locationRestriction"`
}

type nearbySearchResponse struct {
	Places []Place `json:"places"`
}

// SearchNearby runs one nearby search restricted to a single place type
// within a circle around center. The provider accepts only one type
// restriction per call, so callers issue one call per type.
func (c *PlacesClient) SearchNearby(ctx context.Context, placeType string, center models.Coordinates, radiusMeters int) ([]Place, error) {
	var body nearbySearchRequest
	body.IncludedTypes = []string{placeType}
	body.MaxResultCount = maxResultsPerCall
	body.LocationRestriction.Circle.Center = center
	body.LocationRestriction.Circle.Radius = float64(radiusMeters)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("clients: failed to encode nearby search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/places:searchNearby", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("clients: failed to build nearby search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", nearbySearchFieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clients: nearby search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("clients: places API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("clients: failed to parse nearby search response: %w", err)
	}

	return result.Places, nil
}
