package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	syncDomain "github.com/mauirilio/etf-tracker/internal/domain/sync"
	"github.com/mauirilio/etf-tracker/pkg/logger"
)

// DefaultSpec runs a full sync twice a day, morning and evening UTC.
const DefaultSpec = "0 8,20 * * *"

// Scheduler periodically triggers full sync passes.
type Scheduler struct {
	cron   *cron.Cron
	syncUc syncDomain.Usecase
	logger logger.Interface
}

// New creates a scheduler that runs the sync usecase on the given cron spec.
func New(spec string, syncUc syncDomain.Usecase, log logger.Interface) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSpec
	}

	s := &Scheduler{
		cron:   cron.New(),
		syncUc: syncUc,
		logger: log,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}

	log.Info("sync schedule registered", logger.NewField("spec", spec))
	return s, nil
}

func (s *Scheduler) run() {
	s.syncUc.RunFullSync(context.Background())
}

// Start begins the schedule in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running pass to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
