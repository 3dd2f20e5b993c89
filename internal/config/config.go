package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultWeatherAPIURL is the OpenWeatherMap current-weather endpoint.
const DefaultWeatherAPIURL = "https://api.openweathermap.org/data/2.5/weather"

var validate = validator.New()

type AppConfig struct {
	// DeliveryStreamName is the Firehose delivery stream records are published to.
	DeliveryStreamName string `validate:"required"`

	// SecretName identifies the Secrets Manager secret holding the API key.
	// Empty means the secret lookup is skipped entirely.
	SecretName string

	// APIKey is the plain environment fallback consulted when secret
	// resolution yields nothing.
	APIKey string

	// DefaultCity is used when the trigger input carries no city.
	DefaultCity string

	// WeatherAPIURL is the provider endpoint; overridable for local runs.
	WeatherAPIURL string `validate:"required,url"`

	// HTTPTimeout applies to the shared outbound HTTP client.
	HTTPTimeout time.Duration

	// Local (non-Lambda) mode settings.
	Port           string
	IngestInterval time.Duration // 0 = periodic ingestion disabled
	LocalSink      string        // "memory" replaces Firehose for local runs
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		DeliveryStreamName: getenvDefault("DELIVERY_STREAM_NAME", "weather-data-stream"),
		SecretName:         os.Getenv("WEATHER_API_SECRET_NAME"),
		APIKey:             os.Getenv("OPENWEATHER_API_KEY"),
		DefaultCity:        getenvDefault("DEFAULT_CITY", "London"),
		WeatherAPIURL:      getenvDefault("WEATHER_API_URL", DefaultWeatherAPIURL),
		Port:               getenvDefault("PORT", "8080"),
		LocalSink:          os.Getenv("LOCAL_SINK"),
	}

	timeout, err := getenvDuration("HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	interval, err := getenvDuration("INGEST_INTERVAL", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid INGEST_INTERVAL: %w", err)
	}
	cfg.IngestInterval = interval

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}
