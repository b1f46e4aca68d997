package dashboard

import (
	"context"

	"github.com/mauirilio/etf-tracker/internal/domain/etf"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/cache"
	historyInfra "github.com/mauirilio/etf-tracker/internal/infrastructure/postgres/history"
	snapshotInfra "github.com/mauirilio/etf-tracker/internal/infrastructure/postgres/snapshot"
	"github.com/mauirilio/etf-tracker/pkg/chart"
	"github.com/mauirilio/etf-tracker/pkg/errors"
	"github.com/mauirilio/etf-tracker/pkg/logger"
)

// Usecase is the usecase for the read path backing the dashboard.
type Usecase struct {
	snapshotRepository snapshotInfra.SnapshotRepository
	historyRepository  historyInfra.HistoryRepository
	chartCache         cache.ChartCache
	logger             logger.Interface
}

// NewUsecase creates a new dashboard usecase.
func NewUsecase(
	snapshotRepository snapshotInfra.SnapshotRepository,
	historyRepository historyInfra.HistoryRepository,
	chartCache cache.ChartCache,
	logger logger.Interface,
) *Usecase {
	return &Usecase{
		snapshotRepository: snapshotRepository,
		historyRepository:  historyRepository,
		chartCache:         chartCache,
		logger:             logger,
	}
}

// CurrentSnapshots returns the per-ticker rows of the most recent snapshot
// date stored for an asset class. An empty store yields an empty list.
func (u *Usecase) CurrentSnapshots(ctx context.Context, assetType etf.AssetType) ([]*etf.Snapshot, error) {
	latest, err := u.snapshotRepository.GetLatestDate(ctx, assetType)
	if err != nil {
		return nil, errors.TracerWithCode(errors.GeneralRepositoryError, err)
	}
	if latest.IsZero() {
		return []*etf.Snapshot{}, nil
	}

	snapshots, err := u.snapshotRepository.GetByFilter(ctx, etf.SnapshotFilter{
		AssetType: assetType,
		Date:      &latest,
	})
	if err != nil {
		return nil, errors.TracerWithCode(errors.GeneralRepositoryError, err)
	}

	return snapshots, nil
}

// HistorySeries returns the full daily series for an asset class, ascending
// by date. The response's totalNetInflow is sourced from the stored
// dailyNetInflow column, matching the contract the dashboard consumes.
func (u *Usecase) HistorySeries(ctx context.Context, assetType etf.AssetType) ([]etf.HistoryEntry, error) {
	points, err := u.historyRepository.GetByFilter(ctx, etf.HistoryFilter{AssetType: assetType})
	if err != nil {
		return nil, errors.TracerWithCode(errors.GeneralRepositoryError, err)
	}

	entries := make([]etf.HistoryEntry, 0, len(points))
	for _, point := range points {
		entries = append(entries, etf.HistoryEntry{
			Date:                point.Date.Format(etf.DateFormat),
			TotalNetInflow:      point.DailyNetInflow,
			CumulativeNetInflow: point.CumulativeNetInflow,
			TotalNetAssets:      point.TotalNetAssets,
		})
	}

	return entries, nil
}

// ChartSeries buckets the asset's daily flows according to the query,
// reading through the chart cache. Cache failures degrade to the database.
func (u *Usecase) ChartSeries(ctx context.Context, assetType etf.AssetType, q chart.Query) ([]chart.Bucket, error) {
	key := cache.ChartKey(assetType, q)

	buckets, err := u.chartCache.GetChart(ctx, key)
	if err != nil {
		u.logger.WarnContext(ctx, "chart cache read failed",
			logger.NewField("code", errors.CacheGetError),
			logger.NewField("key", key),
			logger.NewField("error", err.Error()),
		)
	}
	if buckets != nil {
		return buckets, nil
	}

	points, err := u.historyRepository.GetByFilter(ctx, etf.HistoryFilter{AssetType: assetType})
	if err != nil {
		return nil, errors.TracerWithCode(errors.GeneralRepositoryError, err)
	}

	flows := make([]chart.Point, 0, len(points))
	for _, point := range points {
		flows = append(flows, chart.Point{
			Date: point.Date,
			Flow: point.DailyNetInflow,
		})
	}

	buckets, err = chart.BucketSeries(flows, q)
	if err != nil {
		return nil, err
	}

	if err := u.chartCache.SetChart(ctx, key, buckets); err != nil {
		u.logger.WarnContext(ctx, "chart cache write failed",
			logger.NewField("code", errors.CacheSetError),
			logger.NewField("key", key),
			logger.NewField("error", err.Error()),
		)
	}

	return buckets, nil
}
