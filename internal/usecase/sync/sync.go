package sync

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/mauirilio/etf-tracker/internal/domain/etf"
	historyInfra "github.com/mauirilio/etf-tracker/internal/infrastructure/postgres/history"
	snapshotInfra "github.com/mauirilio/etf-tracker/internal/infrastructure/postgres/snapshot"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/sosovalue"
	"github.com/mauirilio/etf-tracker/pkg/errors"
	"github.com/mauirilio/etf-tracker/pkg/logger"
	"github.com/mauirilio/etf-tracker/pkg/numeric"
)

// historyCycle is the sampling cycle requested from the provider.
const historyCycle = "day"

// providerErrorCode classifies a provider failure: the provider answering
// with a non-zero envelope code is a business error, everything else is
// transport.
func providerErrorCode(err error) errors.ErrorCode {
	var apiErr *sosovalue.APIError
	if stderrors.As(err, &apiErr) {
		return errors.ProviderBusinessError
	}
	return errors.ProviderTransportError
}

// Usecase is the usecase for the sync pipeline. It is the sole writer of
// snapshot and history rows; overlapping full syncs are not locked against
// each other and rely on the store's last-write-wins upserts.
type Usecase struct {
	provider           sosovalue.Client
	snapshotRepository snapshotInfra.SnapshotRepository
	historyRepository  historyInfra.HistoryRepository
	logger             logger.Interface

	nowFn func() time.Time
}

// NewUsecase creates a new sync usecase.
func NewUsecase(
	provider sosovalue.Client,
	snapshotRepository snapshotInfra.SnapshotRepository,
	historyRepository historyInfra.HistoryRepository,
	logger logger.Interface,
) *Usecase {
	return &Usecase{
		provider:           provider,
		snapshotRepository: snapshotRepository,
		historyRepository:  historyRepository,
		logger:             logger,
		nowFn:              time.Now,
	}
}

// SyncSnapshots fetches current per-ticker metrics for an asset class and
// upserts one snapshot row per ticker, all stamped with the run's UTC day.
// A single row's upsert failure is logged and skipped; the rest of the batch
// proceeds. Returns the count of rows written.
func (u *Usecase) SyncSnapshots(ctx context.Context, assetType etf.AssetType) (int, error) {
	items, err := u.provider.CurrentMetrics(ctx, assetType.ProviderKey())
	if err != nil {
		return 0, errors.TracerWithCode(providerErrorCode(err), err)
	}

	// every ticker synced in this run shares the same snapshot date
	today := etf.Day(u.nowFn())

	count := 0
	for _, item := range items {
		record := &etf.Snapshot{
			Ticker:         item.Ticker,
			Date:           today,
			AssetType:      assetType,
			Institute:      item.Institute,
			TotalNetInflow: numeric.Normalize(item.TotalNetInflow),
			DailyNetInflow: numeric.Normalize(item.DailyNetInflow),
			NetAssets:      numeric.Normalize(item.NetAssets),
			Volume:         numeric.Normalize(item.Volume),
			MarketPrice:    numeric.Normalize(item.MarketPrice),
			RawJSON:        item.Raw,
		}

		if err := u.snapshotRepository.Upsert(ctx, record); err != nil {
			u.logger.ErrorContext(ctx, errors.TracerWithCode(errors.SnapshotUpsertError, err),
				logger.NewField("asset_type", assetType),
				logger.NewField("ticker", record.Ticker),
			)
			continue
		}
		count++
	}

	u.logger.InfoContext(ctx, "snapshot sync finished",
		logger.NewField("asset_type", assetType),
		logger.NewField("rows_written", count),
	)

	return count, nil
}

// SyncHistory fetches the daily inflow series for an asset class and upserts
// one history row per day. Dates come verbatim from the payload; days that
// fail to parse are logged and skipped. Returns the count of rows written.
func (u *Usecase) SyncHistory(ctx context.Context, assetType etf.AssetType) (int, error) {
	items, err := u.provider.HistoricalInflow(ctx, assetType.ProviderKey(), historyCycle)
	if err != nil {
		return 0, errors.TracerWithCode(providerErrorCode(err), err)
	}

	count := 0
	for _, item := range items {
		date, err := time.ParseInLocation(etf.DateFormat, item.Date, time.UTC)
		if err != nil {
			u.logger.WarnContext(ctx, "skipping history item with unparseable date",
				logger.NewField("asset_type", assetType),
				logger.NewField("date", item.Date),
			)
			continue
		}

		flow := numeric.Normalize(item.TotalNetInflow)
		record := &etf.HistoryPoint{
			Date:           date,
			AssetType:      assetType,
			TotalNetInflow: flow,
			// the provider's history rows carry the day's flow in
			// totalNetInflow; both columns mirror that figure
			DailyNetInflow:      flow,
			CumulativeNetInflow: numeric.Normalize(item.CumulativeNetInflow),
			// history responses do not reliably carry a total-assets figure
			TotalNetAssets: 0,
		}

		if err := u.historyRepository.Upsert(ctx, record); err != nil {
			u.logger.ErrorContext(ctx, errors.TracerWithCode(errors.HistoryUpsertError, err),
				logger.NewField("asset_type", assetType),
				logger.NewField("date", item.Date),
			)
			continue
		}
		count++
	}

	u.logger.InfoContext(ctx, "history sync finished",
		logger.NewField("asset_type", assetType),
		logger.NewField("rows_written", count),
	)

	return count, nil
}

// RunFullSync runs snapshot then history synchronization for every supported
// asset class in a fixed order, sequentially. A failing asset class is logged
// and does not block the remaining ones. Overlapping invocations race; the
// store's upsert semantics keep that safe but nondeterministic.
func (u *Usecase) RunFullSync(ctx context.Context) {
	ctx = logger.ContextWithRunID(ctx, uuid.NewString())

	u.logger.InfoContext(ctx, "starting full sync")

	for _, assetType := range etf.AllAssetTypes {
		if _, err := u.SyncSnapshots(ctx, assetType); err != nil {
			u.logger.ErrorContext(ctx, err, logger.NewField("asset_type", assetType))
		}
	}

	for _, assetType := range etf.AllAssetTypes {
		if _, err := u.SyncHistory(ctx, assetType); err != nil {
			u.logger.ErrorContext(ctx, err, logger.NewField("asset_type", assetType))
		}
	}

	u.logger.InfoContext(ctx, "full sync finished")
}
