package bootstrap

import (
	historyInfra "github.com/mauirilio/etf-tracker/internal/infrastructure/postgres/history"
	snapshotInfra "github.com/mauirilio/etf-tracker/internal/infrastructure/postgres/snapshot"
)

// Repository is the repository layer of the tracker.
type Repository struct {
	SnapshotRepository snapshotInfra.SnapshotRepository
	HistoryRepository  historyInfra.HistoryRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.SnapshotRepository = snapshotInfra.NewRepository(b.Postgres)
	b.Repository.HistoryRepository = historyInfra.NewRepository(b.Postgres)
}
