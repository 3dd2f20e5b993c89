package ingestor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/i474232898/weather-data-ingestor/internal/sink"
	"github.com/i474232898/weather-data-ingestor/internal/weather"
)

// TriggerEvent is the invocation input. City is optional; resolution falls
// back to the configured default and then the random city pool.
type TriggerEvent struct {
	City string `json:"city,omitempty"`
}

// Result is the invocation output envelope returned to the trigger runtime.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// ConfigError means the handler cannot run at all (no API key resolvable);
// no fetch is attempted.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// KeyResolver yields the provider API key. An empty key with a nil error
// means no source had one.
type KeyResolver interface {
	APIKey(ctx context.Context) (string, error)
}

// Fetcher retrieves the current observation for a city.
type Fetcher interface {
	Fetch(ctx context.Context, city, apiKey string) (weather.RawObservation, error)
}

// Handler drives one ingestion: resolve credential, fetch, transform,
// publish. All collaborators are injected; the handler holds no state
// across invocations.
type Handler struct {
	keys        KeyResolver
	provider    Fetcher
	sink        sink.Sink
	defaultCity string
	now         func() time.Time
	randIndex   func(n int) int
	log         *slog.Logger
}

func NewHandler(keys KeyResolver, provider Fetcher, s sink.Sink, defaultCity string, log *slog.Logger) *Handler {
	return &Handler{
		keys:        keys,
		provider:    provider,
		sink:        s,
		defaultCity: defaultCity,
		now:         time.Now,
		randIndex:   rand.Intn,
		log:         log,
	}
}

// Handle runs the five-step pipeline and collapses every failure into the
// Result envelope at this single boundary. The returned error is always nil
// so the trigger runtime never retries on its own.
func (h *Handler) Handle(ctx context.Context, event TriggerEvent) (Result, error) {
	result, err := h.ingest(ctx, event)
	if err == nil {
		return result, nil
	}

	h.log.Error("ingestion failed", "err", err)

	var upstream *weather.UpstreamError
	if errors.As(err, &upstream) {
		return errorResult(upstream.StatusCode, upstream.Error()), nil
	}

	return errorResult(http.StatusInternalServerError, fmt.Sprintf("error processing weather data: %s", err.Error())), nil
}

func (h *Handler) ingest(ctx context.Context, event TriggerEvent) (Result, error) {
	apiKey, err := h.keys.APIKey(ctx)
	if err != nil {
		return Result{}, err
	}
	if apiKey == "" {
		return Result{}, &ConfigError{
			Reason: "no API key available; set OPENWEATHER_API_KEY or configure a secret",
		}
	}

	city := ResolveCity(event.City, h.defaultCity, h.randIndex)
	h.log.Info("fetching weather data", "city", city)

	raw, err := h.provider.Fetch(ctx, city, apiKey)
	if err != nil {
		return Result{}, err
	}

	record, err := weather.Transform(raw, h.now())
	if err != nil {
		return Result{}, err
	}

	line, err := json.Marshal(record)
	if err != nil {
		return Result{}, err
	}
	line = append(line, '\n')

	recordID, err := h.sink.Publish(ctx, line)
	if err != nil {
		return Result{}, fmt.Errorf("failed to publish record: %w", err)
	}

	h.log.Info("weather data published", "city", city, "recordId", recordID)

	body, err := json.Marshal(map[string]string{
		"message":  "weather data successfully sent to delivery stream",
		"city":     city,
		"recordId": recordID,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{StatusCode: http.StatusOK, Body: string(body)}, nil
}

func errorResult(status int, msg string) Result {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return Result{StatusCode: status, Body: string(body)}
}
