package sync

import (
	"context"

	"github.com/mauirilio/etf-tracker/internal/domain/etf"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Usecase is the interface for the sync pipeline.
type Usecase interface {
	// SyncSnapshots fetches current per-ticker metrics for an asset class and
	// upserts them, returning the count of rows written.
	SyncSnapshots(ctx context.Context, assetType etf.AssetType) (int, error)

	// SyncHistory fetches the daily inflow series for an asset class and
	// upserts it, returning the count of rows written.
	SyncHistory(ctx context.Context, assetType etf.AssetType) (int, error)

	// RunFullSync runs snapshot then history synchronization across every
	// supported asset class, isolating per-asset failures.
	RunFullSync(ctx context.Context)
}
