package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MapsConfigHandler exposes the browser-safe map widget credential.
type MapsConfigHandler struct {
	publicAPIKey string
}

// NewMapsConfigHandler creates a new maps config handler.
func NewMapsConfigHandler(publicAPIKey string) *MapsConfigHandler {
	return &MapsConfigHandler{publicAPIKey: publicAPIKey}
}

// MapsConfig handles GET /api/config/maps requests. An empty key is not an
// error here; the client falls back to the list-only view.
func (h *MapsConfigHandler) MapsConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mapsApiKey": h.publicAPIKey})
}
