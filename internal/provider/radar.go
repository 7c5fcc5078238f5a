package provider

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"geocache/internal/apperr"
	"geocache/internal/geo"
	"geocache/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the Radar API root
	DefaultBaseURL = "https://api.radar.io/v1"
	// DefaultTimeout is applied to the whole upstream call
	DefaultTimeout = 10 * time.Second

	reverseGeocodePath = "/geocode/reverse"
	maxErrorBody       = 512
)

// Version is reported in the User-Agent header (set at build time)
var Version = "dev"

// RadarClient fetches reverse geocoding candidates from the Radar API
type RadarClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// RadarReverseResponse is the body returned by GET /geocode/reverse
type RadarReverseResponse struct {
	Meta      json.RawMessage  `json:"meta"`
	Addresses []models.Address `json:"addresses"`
}

// NewRadarClient creates a client for baseURL authenticated with apiKey. A zero
// timeout uses DefaultTimeout.
func NewRadarClient(baseURL, apiKey string, timeout time.Duration) *RadarClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RadarClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12}},
		},
	}
}

func userAgent() string {
	return fmt.Sprintf("geocache/%s (%s; %s)", Version, runtime.GOOS, runtime.GOARCH)
}

// FetchAddresses performs a single reverse geocoding call for the normalized
// coordinate. It does not retry.
func (c *RadarClient) FetchAddresses(ctx context.Context, q geo.Normalized) ([]models.Address, error) {
	reqURL, err := url.Parse(c.baseURL + reverseGeocodePath)
	if err != nil {
		return nil, fmt.Errorf("provider: failed to parse URL: %w: %w", apperr.ErrProviderError, err)
	}
	query := url.Values{}
	query.Set("coordinates", q.Query.Lat+","+q.Query.Lon)
	reqURL.RawQuery = query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("provider: failed to create request: %w: %w", apperr.ErrProviderError, err)
	}
	request.Header.Set("Authorization", c.apiKey)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", userAgent())

	response, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("provider: request failed: %w: %w", apperr.ErrProviderError, err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close provider response body")
		}
	}(response.Body)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
		return nil, fmt.Errorf("provider: unexpected status %d: %s: %w",
			response.StatusCode, strings.TrimSpace(string(body)), apperr.ErrProviderError)
	}

	var decoded RadarReverseResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("provider: failed to decode response: %w: %w", apperr.ErrProviderError, err)
	}

	return decoded.Addresses, nil
}
