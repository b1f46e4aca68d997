package sosovalue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	currentMetricsPath   = "/etf/currentEtfDataMetrics"
	historicalInflowPath = "/etf/historicalInflowChart"

	apiKeyHeader = "x-soso-api-key"
)

// Config is the SosoValue client configuration.
type Config struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://api.sosovalue.xyz/openapi/v2"`
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// HTTPClient is the HTTP implementation of the SosoValue client.
type HTTPClient struct {
	config Config
	client *http.Client
}

// Ensure HTTPClient implements Client interface
var _ Client = (*HTTPClient)(nil)

// NewClient creates a new SosoValue API client.
func NewClient(config Config) *HTTPClient {
	return &HTTPClient{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// CurrentMetrics returns the per-ticker metrics list for an asset class.
func (c *HTTPClient) CurrentMetrics(ctx context.Context, typeKey string) ([]SnapshotItem, error) {
	data, err := c.post(ctx, currentMetricsPath, map[string]string{
		"type": typeKey,
	})
	if err != nil {
		return nil, err
	}

	var payload currentMetricsData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode current metrics payload: %w", err)
	}

	return payload.List, nil
}

// HistoricalInflow returns the daily inflow series for an asset class.
func (c *HTTPClient) HistoricalInflow(ctx context.Context, typeKey, cycle string) ([]HistoryItem, error) {
	data, err := c.post(ctx, historicalInflowPath, map[string]string{
		"type":  typeKey,
		"cycle": cycle,
	})
	if err != nil {
		return nil, err
	}

	var items []HistoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode historical inflow payload: %w", err)
	}

	return items, nil
}

// post issues a JSON POST and unwraps the provider envelope, surfacing a
// non-zero envelope code as an APIError.
func (c *HTTPClient) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set(apiKeyHeader, c.config.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request to %s returned status %d", path, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	if env.Code != 0 {
		return nil, &APIError{Code: env.Code, Message: env.Message}
	}

	return env.Data, nil
}
