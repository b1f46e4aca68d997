package etf

import (
	"fmt"
	"time"

	"github.com/mauirilio/etf-tracker/pkg/errors"
)

// AssetType identifies a supported spot-ETF asset class.
type AssetType string

// Supported asset classes.
const (
	AssetBTC AssetType = "btc"
	AssetETH AssetType = "eth"
	AssetSOL AssetType = "sol"
)

// AllAssetTypes lists every supported asset class in sync order.
var AllAssetTypes = []AssetType{AssetBTC, AssetETH, AssetSOL}

// ParseAssetType returns the asset type matching the given name.
func ParseAssetType(name string) (AssetType, error) {
	switch AssetType(name) {
	case AssetBTC, AssetETH, AssetSOL:
		return AssetType(name), nil
	}
	return "", errors.NewCodedError(
		errors.InvalidAssetTypeError,
		fmt.Sprintf("unsupported asset type: %s", name),
		errors.CategoryValidation,
	)
}

// ProviderKey returns the upstream provider's identifier for this asset class.
func (a AssetType) ProviderKey() string {
	return fmt.Sprintf("us-%s-spot", string(a))
}

// Snapshot is one per-ticker, per-day point-in-time metric record.
// At most one row exists per (ticker, date); re-syncing the same day
// overwrites in place.
type Snapshot struct {
	Ticker         string
	Date           time.Time
	AssetType      AssetType
	Institute      string
	TotalNetInflow float64
	DailyNetInflow float64
	NetAssets      float64
	Volume         float64
	MarketPrice    float64
	// RawJSON keeps the original upstream record for fields not yet modeled.
	RawJSON []byte
}

// HistoryPoint is one per-asset-class, per-day aggregate flow record,
// keyed by (date, assetType).
type HistoryPoint struct {
	Date                time.Time
	AssetType           AssetType
	TotalNetInflow      float64
	DailyNetInflow      float64
	CumulativeNetInflow float64
	TotalNetAssets      float64
}

// HistoryEntry is the read-path shape of one day of history. TotalNetInflow
// is sourced from the stored dailyNetInflow column; the two columns carry the
// same upstream figure and the read contract predates the split.
type HistoryEntry struct {
	Date                string  `json:"date"`
	TotalNetInflow      float64 `json:"totalNetInflow"`
	CumulativeNetInflow float64 `json:"cumulativeNetInflow"`
	TotalNetAssets      float64 `json:"totalNetAssets"`
}

// DateFormat is the wire format for calendar days.
const DateFormat = "2006-01-02"

// Day truncates a timestamp to its UTC calendar day.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SnapshotFilter selects snapshot rows.
type SnapshotFilter struct {
	AssetType AssetType
	Date      *time.Time
}

// HistoryFilter selects history rows.
type HistoryFilter struct {
	AssetType AssetType
	From      *time.Time
	To        *time.Time
}
