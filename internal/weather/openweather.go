package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// UpstreamError is a non-success response from the weather provider. The
// status code and raw body are preserved so the caller can mirror them.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("weather API error: status %d, response: %s", e.StatusCode, e.Body)
}

// Client fetches current observations from the OpenWeatherMap API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Client. The http.Client is shared and owns all timeout
// behaviour; no retries are attempted here.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// Fetch issues a single GET for the city's current weather. A non-200
// response is returned as *UpstreamError with the raw body attached.
func (c *Client) Fetch(ctx context.Context, city, apiKey string) (RawObservation, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", apiKey)

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return RawObservation{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RawObservation{}, fmt.Errorf("failed to fetch weather data: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RawObservation{}, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return RawObservation{}, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var raw RawObservation
	if err := json.Unmarshal(body, &raw); err != nil {
		return RawObservation{}, fmt.Errorf("failed to decode provider response: %w", err)
	}

	return raw, nil
}
