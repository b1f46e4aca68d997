package sosovalue

import (
	"encoding/json"
	"fmt"
)

// envelope is the provider's response wrapper. Success is signalled by
// code == 0; any other code is a business-level failure carrying message.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// currentMetricsData is the data payload of the current-metrics endpoint.
type currentMetricsData struct {
	List []SnapshotItem `json:"list"`
}

// SnapshotItem is one per-ticker record from the current-metrics endpoint.
// Numeric fields are deliberately untyped: upstream encodes them as plain
// numbers, abbreviated strings or {value: ...} wrappers interchangeably.
type SnapshotItem struct {
	Ticker         string
	Institute      string
	TotalNetInflow any
	DailyNetInflow any
	NetAssets      any
	Volume         any
	MarketPrice    any
	// Raw holds the original item bytes, kept verbatim for forward
	// compatibility with fields not yet modeled.
	Raw []byte
}

// UnmarshalJSON decodes the item fields and retains the original bytes.
func (s *SnapshotItem) UnmarshalJSON(data []byte) error {
	type alias struct {
		Ticker         string `json:"ticker"`
		Institute      string `json:"institute"`
		TotalNetInflow any    `json:"totalNetInflow"`
		DailyNetInflow any    `json:"dailyNetInflow"`
		NetAssets      any    `json:"netAssets"`
		Volume         any    `json:"volume"`
		MarketPrice    any    `json:"marketPrice"`
	}

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	*s = SnapshotItem{
		Ticker:         a.Ticker,
		Institute:      a.Institute,
		TotalNetInflow: a.TotalNetInflow,
		DailyNetInflow: a.DailyNetInflow,
		NetAssets:      a.NetAssets,
		Volume:         a.Volume,
		MarketPrice:    a.MarketPrice,
		Raw:            append([]byte(nil), data...),
	}
	return nil
}

// HistoryItem is one daily record from the historical-inflow endpoint.
// The date comes verbatim from the payload as YYYY-MM-DD.
type HistoryItem struct {
	Date                string `json:"date"`
	TotalNetInflow      any    `json:"totalNetInflow"`
	CumulativeNetInflow any    `json:"cumulativeNetInflow"`
}

// APIError is a business-level failure reported by the provider.
type APIError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("sosovalue api error (code %d): %s", e.Code, e.Message)
}
