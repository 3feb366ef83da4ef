package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, loaded from an
// optional app.env file with environment variables taking precedence.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	// GoogleMapsAPIKey authenticates the server-side Geocoding and Places
	// calls. Absence makes every search request fail with a config error.
	GoogleMapsAPIKey string `mapstructure:"GOOGLE_MAPS_API_KEY"`

	// PublicMapsAPIKey is the browser-safe key handed to the map widget.
	PublicMapsAPIKey string `mapstructure:"PUBLIC_MAPS_API_KEY"`

	// Base URL overrides for the outbound providers, used by tests.
	GeocodingBaseURL string `mapstructure:"GEOCODING_BASE_URL"`
	PlacesBaseURL    string `mapstructure:"PLACES_BASE_URL"`
}

// LoadConfig reads configuration from the given path and the environment.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("GEOCODING_BASE_URL", "https://maps.googleapis.com")
	viper.SetDefault("PLACES_BASE_URL", "https://places.googleapis.com")

	viper.AutomaticEnv()
	for _, key := range []string{"GOOGLE_MAPS_API_KEY", "PUBLIC_MAPS_API_KEY"} {
		if err := viper.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, the environment is enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}
