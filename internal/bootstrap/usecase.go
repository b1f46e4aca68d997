package bootstrap

import (
	dashboardUc "github.com/mauirilio/etf-tracker/internal/usecase/dashboard"
	syncUc "github.com/mauirilio/etf-tracker/internal/usecase/sync"

	dashboardDomain "github.com/mauirilio/etf-tracker/internal/domain/dashboard"
	syncDomain "github.com/mauirilio/etf-tracker/internal/domain/sync"
)

// Usecase is the usecase layer of the tracker.
type Usecase struct {
	SyncUsecase      syncDomain.Usecase
	DashboardUsecase dashboardDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.SyncUsecase = syncUc.NewUsecase(b.Provider, b.Repository.SnapshotRepository, b.Repository.HistoryRepository, b.Logger)
	b.Usecase.DashboardUsecase = dashboardUc.NewUsecase(b.Repository.SnapshotRepository, b.Repository.HistoryRepository, b.ChartCache, b.Logger)
}
