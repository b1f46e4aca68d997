package sosovalue

import "context"

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Client fetches spot-ETF metrics from the SosoValue open API.
type Client interface {
	// CurrentMetrics returns the per-ticker metrics list for an asset class
	// provider key (e.g. "us-btc-spot").
	CurrentMetrics(ctx context.Context, typeKey string) ([]SnapshotItem, error)

	// HistoricalInflow returns the daily inflow series for an asset class
	// provider key, sampled at the given cycle ("day").
	HistoricalInflow(ctx context.Context, typeKey, cycle string) ([]HistoryItem, error)
}
