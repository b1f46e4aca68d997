package bootstrap

import (
	"github.com/mauirilio/etf-tracker/internal/infrastructure/cache"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/postgres"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/sosovalue"
	"github.com/mauirilio/etf-tracker/pkg/logger"
)

// Bootstrap wires the tracker's repositories and usecases together.
type Bootstrap struct {
	Usecase    Usecase
	Repository Repository
	Logger     logger.Interface

	Postgres   postgres.Client
	ChartCache cache.ChartCache
	Provider   sosovalue.Client
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Postgres   postgres.Client
	ChartCache cache.ChartCache
	Provider   sosovalue.Client
	Logger     logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Postgres = config.Postgres
	b.ChartCache = config.ChartCache
	b.Provider = config.Provider
	b.Logger = config.Logger

	b.registerRepository()
	b.registerUsecase()

	return *b
}
