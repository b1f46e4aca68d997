package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mauirilio/etf-tracker/internal/bootstrap"
	"github.com/mauirilio/etf-tracker/internal/domain/etf"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/cache"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/postgres"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/sosovalue"
	"github.com/mauirilio/etf-tracker/pkg/config"
	apperrors "github.com/mauirilio/etf-tracker/pkg/errors"
	"github.com/mauirilio/etf-tracker/pkg/logger"
	"github.com/mauirilio/etf-tracker/pkg/numeric"
)

// One-shot sync: runs a single full pass and prints a per-ticker report of
// the freshly synced day, then exits.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	pgClient, err := postgres.NewClient(ctx, cfg.Postgres)
	if err != nil {
		appLogger.Error(apperrors.TracerFromError(err))
		os.Exit(1)
	}
	defer pgClient.Close()

	chartCache := cache.NewRedisCache(cfg.Redis)
	defer chartCache.Close()

	b := bootstrap.Bootstrap{}
	app := b.Init(bootstrap.BootstrapConfig{
		Postgres:   pgClient,
		ChartCache: chartCache,
		Provider:   sosovalue.NewClient(cfg.SosoValue),
		Logger:     appLogger,
	})

	app.Usecase.SyncUsecase.RunFullSync(ctx)

	for _, assetType := range etf.AllAssetTypes {
		snapshots, err := app.Usecase.DashboardUsecase.CurrentSnapshots(ctx, assetType)
		if err != nil {
			appLogger.Error(apperrors.TracerFromError(err), logger.NewField("asset_type", assetType))
			continue
		}
		if len(snapshots) == 0 {
			continue
		}

		fmt.Printf("\n%s spot ETFs (%s)\n", assetType, snapshots[0].Date.Format(etf.DateFormat))
		for _, snapshot := range snapshots {
			fmt.Printf("  %-6s %-22s inflow %-12s assets %s\n",
				snapshot.Ticker,
				snapshot.Institute,
				numeric.FormatUSD(snapshot.DailyNetInflow),
				numeric.FormatUSD(snapshot.NetAssets),
			)
		}
	}
}
