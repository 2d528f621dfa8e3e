package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"qrpatrol/internal/config"
)

// Client is a reverse-geocoding client for the TomTom Search API. Every call
// is bounded by the configured timeout; callers treat any failure as an empty
// address, so errors here are informational only.
type Client struct {
	logger *slog.Logger
	cfg    config.GeocodeConfig
	http   *http.Client
}

func NewClient(logger *slog.Logger, cfg config.GeocodeConfig) *Client {
	return &Client{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

type reverseGeocodeResponse struct {
	Addresses []struct {
		Address struct {
			FreeformAddress string `json:"freeformAddress"`
		} `json:"address"`
	} `json:"addresses"`
}

// ReverseGeocode resolves coordinates to a human-readable address. Timeout,
// transport errors, non-2xx responses and malformed bodies all return an
// error; none of them should ever fail a scan.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("geocode: api key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/search/2/reverseGeocode/%f,%f.json", c.cfg.BaseURL, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("geocode: build request: %w", err)
	}
	q := url.Values{}
	q.Set("key", c.cfg.APIKey)
	q.Set("returnSpeedLimit", "false")
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("geocode: unexpected status %s", resp.Status)
	}

	var body reverseGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("geocode: decode response: %w", err)
	}
	if len(body.Addresses) == 0 {
		return "", nil
	}

	return body.Addresses[0].Address.FreeformAddress, nil
}
