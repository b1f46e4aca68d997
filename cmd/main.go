package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mauirilio/etf-tracker/internal/bootstrap"
	httpHandler "github.com/mauirilio/etf-tracker/internal/handlers/http"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/cache"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/postgres"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/sosovalue"
	"github.com/mauirilio/etf-tracker/internal/scheduler"
	"github.com/mauirilio/etf-tracker/pkg/config"
	apperrors "github.com/mauirilio/etf-tracker/pkg/errors"
	"github.com/mauirilio/etf-tracker/pkg/logger"
)

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

	appLogger.Info("postgres connected",
		logger.NewField("host", cfg.Postgres.Host),
		logger.NewField("database", cfg.Postgres.Database),
	)

	chartCache := cache.NewRedisCache(cfg.Redis)
	defer chartCache.Close()

	if err := chartCache.Ping(ctx); err != nil {
		appLogger.Error(apperrors.TracerFromError(err))
		os.Exit(1)
	}

	provider := sosovalue.NewClient(cfg.SosoValue)

	b := bootstrap.Bootstrap{}
	app := b.Init(bootstrap.BootstrapConfig{
		Postgres:   pgClient,
		ChartCache: chartCache,
		Provider:   provider,
		Logger:     appLogger,
	})

	if cfg.Sync.RunOnStart {
		go app.Usecase.SyncUsecase.RunFullSync(ctx)
	}

	sched, err := scheduler.New(cfg.Sync.CronSpec, app.Usecase.SyncUsecase, appLogger)
	if err != nil {
		appLogger.Error(apperrors.TracerFromError(err))
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := httpHandler.NewServer(addr, app.Usecase.DashboardUsecase, app.Usecase.SyncUsecase, appLogger)

	go func() {
		appLogger.Info("ETF tracker started",
			logger.NewField("app", cfg.App.Name),
			logger.NewField("environment", cfg.App.Environment),
			logger.NewField("addr", addr),
		)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error(apperrors.TracerFromError(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down ETF tracker...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(apperrors.TracerFromError(err))
	}

	appLogger.Info("ETF tracker stopped")
}
