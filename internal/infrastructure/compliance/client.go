package compliance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mdm/backend/internal/application/geo"
	"github.com/mdm/backend/internal/infrastructure/config"
)

// maxResponseSize is the maximum allowed response size from the screening
// service (1MB)
const maxResponseSize = 1 * 1024 * 1024

const defaultTimeout = 5 * time.Second

// ErrNotConfigured indicates the screening service base URL is missing
var ErrNotConfigured = errors.New("compliance: service not configured")

// ErrUnavailable indicates the screening service could not be reached
var ErrUnavailable = errors.New("compliance: service unavailable")

// HTTPClient talks to the external trade-compliance screening service
// over HTTP/JSON.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPClient creates a screening client from configuration.
// Returns ErrNotConfigured when no base URL is set so callers can
// choose to run without compliance annotation.
func NewHTTPClient(cfg config.ComplianceConfig, logger *zap.Logger) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, ErrNotConfigured
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// ScreenCountry fetches the screening verdict for a single country
func (c *HTTPClient) ScreenCountry(ctx context.Context, code string) (*geo.CountryScreening, error) {
	var screening geo.CountryScreening
	path := "/screen/country/" + url.PathEscape(strings.ToUpper(code))
	if err := c.getJSON(ctx, path, &screening); err != nil {
		return nil, err
	}
	return &screening, nil
}

// AssessRegion fetches the aggregate risk assessment for a region
func (c *HTTPClient) AssessRegion(ctx context.Context, code string) (*geo.RegionAssessment, error) {
	var assessment geo.RegionAssessment
	path := "/assess/region/" + url.PathEscape(strings.ToUpper(code))
	if err := c.getJSON(ctx, path, &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

// getJSON performs a GET request and decodes the JSON response into out
func (c *HTTPClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("compliance: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("compliance: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("compliance service returned error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("compliance: failed to decode response: %w", err)
	}

	return nil
}

// Ensure HTTPClient implements ComplianceClient
var _ geo.ComplianceClient = (*HTTPClient)(nil)
