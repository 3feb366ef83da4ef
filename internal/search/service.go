package search

import (
	"context"
	"fmt"
	"math"

	"github.com/borourke9/leadscraper/internal/clients"
	"github.com/borourke9/leadscraper/internal/models"
	"github.com/rs/zerolog/log"
)

// metersPerMile is the conversion factor applied to the request radius
// before it is sent to the places provider.
const metersPerMile = 1609

// LocationResolver interface for dependency injection
type LocationResolver interface {
	Resolve(ctx context.Context, city, state string) (models.Coordinates, error)
}

// PlacesSearcher interface for dependency injection
type PlacesSearcher interface {
	SearchNearby(ctx context.Context, placeType string, center models.Coordinates, radiusMeters int) ([]clients.Place, error)
}

// Service contains the core lead-search pipeline: resolve the location,
// expand categories to provider types, run one nearby search per type,
// filter out places with websites, and deduplicate what remains.
type Service struct {
	resolver LocationResolver
	places   PlacesSearcher
}

// NewService creates a new search service.
func NewService(resolver LocationResolver, places PlacesSearcher) *Service {
	return &Service{resolver: resolver, places: places}
}

// Search runs one full lead search. Individual provider-call failures are
// logged and contribute zero results; they do not abort the search.
func (s *Service) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	center, err := s.resolver.Resolve(ctx, req.City, req.State)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	radiusMeters := int(math.Round(metersPerMile * req.RadiusMiles))
	categories := collapseCategories(req.Categories)

	var kept []models.Business
	totalSearched := 0
	apiCalls := 0

	for _, category := range categories {
		for _, placeType := range ExpandCategory(category) {
			apiCalls++
			places, err := s.places.SearchNearby(ctx, placeType, center, radiusMeters)
			if err != nil {
				log.Warn().Err(err).
					Str("category", category).
					Str("type", placeType).
					Msg("nearby search failed, skipping call")
				continue
			}
			totalSearched += len(places)

			for _, place := range places {
				if !KeepResult(place) {
					continue
				}
				kept = append(kept, toBusiness(place, category))
			}
		}
	}

	businesses := Deduplicate(kept)

	log.Info().
		Str("city", req.City).
		Str("state", req.State).
		Int("api_calls", apiCalls).
		Int("total_searched", totalSearched).
		Int("leads", len(businesses)).
		Msg("search complete")

	return &models.SearchResponse{
		Businesses: businesses,
		Summary: models.SearchSummary{
			TotalSearched:   totalSearched,
			WithoutWebsites: len(businesses),
			City:            req.City,
			State:           req.State,
			RadiusMiles:     req.RadiusMiles,
			Categories:      categories,
		},
		Debug: models.SearchDebug{
			Center:       center,
			RadiusMeters: radiusMeters,
			APICalls:     apiCalls,
		},
	}, nil
}

// collapseCategories drops repeated categories while keeping request order.
func collapseCategories(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func toBusiness(place clients.Place, category string) models.Business {
	return models.Business{
		Name:      place.DisplayName.Text,
		Phone:     place.NationalPhoneNumber,
		Address:   place.FormattedAddress,
		Rating:    place.Rating,
		Latitude:  place.Location.Latitude,
		Longitude: place.Location.Longitude,
		Category:  category,
	}
}
