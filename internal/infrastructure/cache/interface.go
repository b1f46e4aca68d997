package cache

import (
	"context"

	"github.com/mauirilio/etf-tracker/pkg/chart"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// ChartCache caches rendered chart series so repeated reads between sync
// passes skip the database. A miss returns (nil, nil).
type ChartCache interface {
	GetChart(ctx context.Context, key string) ([]chart.Bucket, error)
	SetChart(ctx context.Context, key string, buckets []chart.Bucket) error
	Ping(ctx context.Context) error
	Close() error
}
