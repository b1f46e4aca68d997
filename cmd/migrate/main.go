package main

import (
	"context"
	"log"

	"github.com/mauirilio/etf-tracker/internal/infrastructure/postgres"
	"github.com/mauirilio/etf-tracker/pkg/config"
	apperrors "github.com/mauirilio/etf-tracker/pkg/errors"
	"github.com/mauirilio/etf-tracker/pkg/logger"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS etf_snapshots (
		id BIGSERIAL PRIMARY KEY,
		ticker TEXT NOT NULL,
		date DATE NOT NULL,
		asset_type TEXT NOT NULL,
		institute TEXT,
		total_net_inflow DOUBLE PRECISION NOT NULL DEFAULT 0,
		daily_net_inflow DOUBLE PRECISION NOT NULL DEFAULT 0,
		net_assets DOUBLE PRECISION NOT NULL DEFAULT 0,
		volume DOUBLE PRECISION NOT NULL DEFAULT 0,
		market_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		raw_json JSONB,
		CONSTRAINT etf_snapshots_ticker_date_key UNIQUE (ticker, date)
	)`,
	`CREATE INDEX IF NOT EXISTS etf_snapshots_asset_date_idx
		ON etf_snapshots (asset_type, date)`,
	`CREATE TABLE IF NOT EXISTS etf_histories (
		id BIGSERIAL PRIMARY KEY,
		date DATE NOT NULL,
		asset_type TEXT NOT NULL,
		total_net_inflow DOUBLE PRECISION NOT NULL DEFAULT 0,
		daily_net_inflow DOUBLE PRECISION NOT NULL DEFAULT 0,
		cumulative_net_inflow DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_net_assets DOUBLE PRECISION NOT NULL DEFAULT 0,
		CONSTRAINT etf_histories_date_asset_key UNIQUE (date, asset_type)
	)`,
	`CREATE INDEX IF NOT EXISTS etf_histories_asset_date_idx
		ON etf_histories (asset_type, date)`,
}

// Applies the tracker's schema. Statements are idempotent so reruns are safe.
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
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer pgClient.Close()

	for _, stmt := range statements {
		if err := pgClient.Exec(ctx, stmt); err != nil {
			appLogger.Error(apperrors.TracerFromError(err))
			log.Fatalf("Migration failed: %v", err)
		}
	}

	appLogger.Info("schema migrated",
		logger.NewField("database", cfg.Postgres.Database),
		logger.NewField("statements", len(statements)),
	)
}
