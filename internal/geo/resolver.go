package geo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/borourke9/leadscraper/internal/models"
	"github.com/rs/zerolog/log"
)

// ErrLocationNotFound means neither the static table nor the geocoding
// provider could resolve the requested city/state.
var ErrLocationNotFound = errors.New("location not found")

// knownCities avoids a paid geocoding call for the cities the tool is most
// often pointed at. Keys are lower-cased "city, st".
var knownCities = map[string]models.Coordinates{
	"detroit, mi":       {Latitude: 42.3314, Longitude: -83.0458},
	"chicago, il":       {Latitude: 41.8781, Longitude: -87.6298},
	"new york, ny":      {Latitude: 40.7128, Longitude: -74.0060},
	"los angeles, ca":   {Latitude: 34.0522, Longitude: -118.2437},
	"miami, fl":         {Latitude: 25.7617, Longitude: -80.1918},
	"traverse city, mi": {Latitude: 44.7631, Longitude: -85.6206},
	"cadillac, mi":      {Latitude: 44.2520, Longitude: -85.4012},
	"grand rapids, mi":  {Latitude: 42.9634, Longitude: -85.6681},
	"kalamazoo, mi":     {Latitude: 42.2917, Longitude: -85.5872},
	"lansing, mi":       {Latitude: 42.7325, Longitude: -84.5555},
}

// ExampleLocations are shown to the user when a location cannot be resolved.
var ExampleLocations = []string{"Detroit, MI", "Chicago, IL", "Traverse City, MI"}

// Geocoder interface for dependency injection
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]models.Coordinates, error)
}

// Resolver maps a free-text city/state to coordinates, preferring the
// static table and falling back to one live geocoding call.
type Resolver struct {
	geocoder Geocoder
}

// NewResolver creates a new location resolver.
func NewResolver(geocoder Geocoder) *Resolver {
	return &Resolver{geocoder: geocoder}
}

// Resolve returns coordinates for the given city and state, or
// ErrLocationNotFound when no candidate exists.
func (r *Resolver) Resolve(ctx context.Context, city, state string) (models.Coordinates, error) {
	key := strings.ToLower(strings.TrimSpace(city) + ", " + strings.TrimSpace(state))
	if coords, ok := knownCities[key]; ok {
		return coords, nil
	}

	address := fmt.Sprintf("%s, %s", city, state)
	candidates, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("geo: failed to geocode %q: %w", address, err)
	}
	if len(candidates) == 0 {
		return models.Coordinates{}, fmt.Errorf("geo: %q: %w", address, ErrLocationNotFound)
	}

	log.Debug().Str("address", address).
		Float64("lat", candidates[0].Latitude).
		Float64("lng", candidates[0].Longitude).
		Msg("resolved location via geocoding")

	return candidates[0], nil
}
