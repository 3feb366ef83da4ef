package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/borourke9/leadscraper/internal/geo"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ExportHandler streams the result of a lead search as a CSV attachment.
// It runs the same pipeline as the search endpoint.
type ExportHandler struct {
	service          SearchService
	apiKeyConfigured bool
}

// NewExportHandler creates a new export handler.
func NewExportHandler(svc SearchService, apiKeyConfigured bool) *ExportHandler {
	return &ExportHandler{service: svc, apiKeyConfigured: apiKeyConfigured}
}

// Export handles GET /api/search/export requests
func (h *ExportHandler) Export(c *gin.Context) {
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
		log.Error().Err(err).Str("city", req.City).Str("state", req.State).Msg("export search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	filename := fmt.Sprintf("leads-%s-%s.csv",
		strings.ToLower(strings.ReplaceAll(req.City, " ", "-")), strings.ToLower(req.State))

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Name", "Phone", "Address", "Rating", "Category", "Latitude", "Longitude"})
	for _, b := range result.Businesses {
		rating := ""
		if b.Rating != nil {
			rating = strconv.FormatFloat(*b.Rating, 'f', 1, 64)
		}
		_ = w.Write([]string{
			b.Name,
			b.Phone,
			b.Address,
			rating,
			b.Category,
			strconv.FormatFloat(b.Latitude, 'f', 6, 64),
			strconv.FormatFloat(b.Longitude, 'f', 6, 64),
		})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		log.Error().Err(err).Msg("failed to write CSV export")
	}
}
