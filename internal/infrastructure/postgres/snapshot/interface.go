package snapshot

import (
	"context"
	"time"

	"github.com/mauirilio/etf-tracker/internal/domain/etf"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// SnapshotRepository persists per-ticker, per-day ETF snapshot rows.
type SnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *etf.Snapshot) error
	GetByFilter(ctx context.Context, filter etf.SnapshotFilter) ([]*etf.Snapshot, error)
	GetLatestDate(ctx context.Context, assetType etf.AssetType) (time.Time, error)
}
