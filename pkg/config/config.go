package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mauirilio/etf-tracker/internal/infrastructure/cache"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/postgres"
	"github.com/mauirilio/etf-tracker/internal/infrastructure/sosovalue"
)

// Config represents the application configuration.
type Config struct {
	App       AppConfig        `envPrefix:"APP_"`
	Postgres  postgres.Config  `envPrefix:"POSTGRES_"`
	Redis     cache.Config     `envPrefix:"REDIS_"`
	SosoValue sosovalue.Config `envPrefix:"SOSOVALUE_"`
	Sync      SyncConfig       `envPrefix:"SYNC_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"etf-tracker"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// SyncConfig controls the periodic full-sync schedule.
type SyncConfig struct {
	// CronSpec is a standard five-field cron expression. Empty falls back
	// to the scheduler's default of twice a day.
	CronSpec string `env:"CRON_SPEC"`
	// RunOnStart triggers a full sync as soon as the service boots.
	RunOnStart bool `env:"RUN_ON_START" envDefault:"true"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
