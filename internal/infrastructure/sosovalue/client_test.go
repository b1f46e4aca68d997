package sosovalue

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
	return client, server
}

func TestCurrentMetrics(t *testing.T) {
	t.Run("success with heterogeneous numeric encodings", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, currentMetricsPath, r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get(apiKeyHeader))

			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "us-btc-spot", body["type"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"code": 0,
				"message": "success",
				"data": {
					"list": [
						{
							"ticker": "IBIT",
							"institute": "BlackRock",
							"totalNetInflow": 1200000000,
							"dailyNetInflow": "50M",
							"netAssets": {"value": "2.5B", "lastUpdateDate": "2024-01-15"},
							"volume": "300M",
							"marketPrice": 42.5
						}
					]
				}
			}`))
		})

		items, err := client.CurrentMetrics(context.Background(), "us-btc-spot")

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "IBIT", items[0].Ticker)
		assert.Equal(t, "BlackRock", items[0].Institute)
		assert.Equal(t, float64(1200000000), items[0].TotalNetInflow)
		assert.Equal(t, "50M", items[0].DailyNetInflow)
		assert.NotEmpty(t, items[0].Raw)

		// raw bytes round-trip back to the original item
		var raw map[string]any
		assert.NoError(t, json.Unmarshal(items[0].Raw, &raw))
		assert.Equal(t, "IBIT", raw["ticker"])
	})

	t.Run("business error surfaces as APIError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code": 4001, "message": "invalid api key", "data": null}`))
		})

		items, err := client.CurrentMetrics(context.Background(), "us-btc-spot")

		assert.Nil(t, items)
		var apiErr *APIError
		assert.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 4001, apiErr.Code)
		assert.Equal(t, "invalid api key", apiErr.Message)
	})

	t.Run("http error status fails", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.CurrentMetrics(context.Background(), "us-btc-spot")

		assert.Error(t, err)
	})

	t.Run("malformed body fails", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})

		_, err := client.CurrentMetrics(context.Background(), "us-btc-spot")

		assert.Error(t, err)
	})
}

func TestHistoricalInflow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, historicalInflowPath, r.URL.Path)

			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "us-eth-spot", body["type"])
			assert.Equal(t, "day", body["cycle"])

			w.Write([]byte(`{
				"code": 0,
				"message": "success",
				"data": [
					{"date": "2024-01-14", "totalNetInflow": "120M", "cumulativeNetInflow": "4.5B"},
					{"date": "2024-01-15", "totalNetInflow": -35000000}
				]
			}`))
		})

		items, err := client.HistoricalInflow(context.Background(), "us-eth-spot", "day")

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "2024-01-14", items[0].Date)
		assert.Equal(t, "120M", items[0].TotalNetInflow)
		assert.Equal(t, "4.5B", items[0].CumulativeNetInflow)
		assert.Equal(t, float64(-35000000), items[1].TotalNetInflow)
		assert.Nil(t, items[1].CumulativeNetInflow)
	})

	t.Run("business error surfaces as APIError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code": 5000, "message": "rate limited", "data": null}`))
		})

		_, err := client.HistoricalInflow(context.Background(), "us-eth-spot", "day")

		var apiErr *APIError
		assert.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 5000, apiErr.Code)
	})
}
