package main

import (
	"net/http"

	"github.com/borourke9/leadscraper/internal/clients"
	"github.com/borourke9/leadscraper/internal/config"
	"github.com/borourke9/leadscraper/internal/geo"
	"github.com/borourke9/leadscraper/internal/handler"
	"github.com/borourke9/leadscraper/internal/search"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if cfg.GoogleMapsAPIKey == "" {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY not set, search requests will fail")
	}

	// Initialize layers
	geocodingClient := clients.NewGeocodingClient(cfg.GoogleMapsAPIKey, cfg.GeocodingBaseURL)
	placesClient := clients.NewPlacesClient(cfg.GoogleMapsAPIKey, cfg.PlacesBaseURL)

	resolver := geo.NewResolver(geocodingClient)
	searchService := search.NewService(resolver, placesClient)

	apiKeyConfigured := cfg.GoogleMapsAPIKey != ""
	searchHandler := handler.NewSearchHandler(searchService, apiKeyConfigured)
	exportHandler := handler.NewExportHandler(searchService, apiKeyConfigured)
	mapsConfigHandler := handler.NewMapsConfigHandler(cfg.PublicMapsAPIKey)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.RequestLogger())
	r.HandleMethodNotAllowed = true

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/search", searchHandler.Search)
		api.GET("/search/export", exportHandler.Export)
		api.GET("/config/maps", mapsConfigHandler.MapsConfig)
	}

	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
