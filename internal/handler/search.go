package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/borourke9/leadscraper/internal/geo"
	"github.com/borourke9/leadscraper/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SearchHandler handles lead search requests
type SearchHandler struct {
	service          SearchService
	apiKeyConfigured bool
}

// Service interface for dependency injection
type SearchService interface {
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error)
}

// NewSearchHandler creates a new search handler. apiKeyConfigured reflects
// whether the server-side Google Maps credential is present; without it
// every search fails with a configuration error.
func NewSearchHandler(svc SearchService, apiKeyConfigured bool) *SearchHandler {
	return &SearchHandler{service: svc, apiKeyConfigured: apiKeyConfigured}
}

// parseSearchRequest reads the query parameters shared by the search and
// export endpoints, applying the documented defaults.
func parseSearchRequest(c *gin.Context) (models.SearchRequest, error) {
	radiusStr := c.DefaultQuery("radiusMiles", "10")
	radius, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil {
		return models.SearchRequest{}, fmt.Errorf("invalid radiusMiles value %q", radiusStr)
	}

	var categories []string
	for _, category := range strings.Split(c.DefaultQuery("categories", "electrician"), ",") {
		if category = strings.TrimSpace(category); category != "" {
			categories = append(categories, category)
		}
	}

	return models.SearchRequest{
		City:        c.DefaultQuery("city", "Detroit"),
		State:       c.DefaultQuery("state", "MI"),
		RadiusMiles: radius,
		Categories:  categories,
	}, nil
}

// Search handles GET /api/search requests
func (h *SearchHandler) Search(c *gin.Context) {
	if !h.apiKeyConfigured {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error: missing Google Maps API key"})
		return
	}

	req, err := parseSearchRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, geo.ErrLocationNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Could not find location %q, %q. Try one of: %s",
					req.City, req.State, strings.Join(geo.ExampleLocations, "; ")),
			})
			return
		}
		log.Error().Err(err).Str("city", req.City).Str("state", req.State).Msg("search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
