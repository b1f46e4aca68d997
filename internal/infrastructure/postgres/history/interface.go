package history

import (
	"context"

	"github.com/mauirilio/etf-tracker/internal/domain/etf"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// HistoryRepository persists per-asset-class, per-day aggregate flow rows.
type HistoryRepository interface {
	Upsert(ctx context.Context, point *etf.HistoryPoint) error
	GetByFilter(ctx context.Context, filter etf.HistoryFilter) ([]*etf.HistoryPoint, error)
}
