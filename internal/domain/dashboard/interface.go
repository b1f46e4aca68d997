package dashboard

import (
	"context"

	"github.com/mauirilio/etf-tracker/internal/domain/etf"
	"github.com/mauirilio/etf-tracker/pkg/chart"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Usecase is the interface for the read path backing the dashboard.
type Usecase interface {
	// CurrentSnapshots returns the per-ticker rows of the most recent
	// snapshot date stored for an asset class.
	CurrentSnapshots(ctx context.Context, assetType etf.AssetType) ([]*etf.Snapshot, error)

	// HistorySeries returns the full daily series for an asset class,
	// ascending by date, in the read-path shape.
	HistorySeries(ctx context.Context, assetType etf.AssetType) ([]etf.HistoryEntry, error)

	// ChartSeries buckets the asset's history according to the query.
	ChartSeries(ctx context.Context, assetType etf.AssetType, q chart.Query) ([]chart.Bucket, error)
}
