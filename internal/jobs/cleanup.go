package jobs

import (
	"context"
	"time"

	"vehicle-leasing/internal/data/repository"
	"vehicle-leasing/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the background maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

// NewScheduler registers the session cleanup job on the configured schedule.
func NewScheduler(repo *repository.Repository, config *utils.Config, log *zap.Logger) (*Scheduler, error) {
	c := cron.New()
	jobLog := log.With(zap.String("job", "session_cleanup"))

	_, err := c.AddFunc(config.Jobs.SessionCleanupCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		removed, err := repo.Session.CleanExpiredSessions(ctx)
		if err != nil {
			jobLog.Error("Session cleanup failed", zap.Error(err))
			return
		}
		jobLog.Info("Session cleanup completed", zap.Int64("removed", removed))
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c, log: log}, nil
}

// Start begins running jobs in their own goroutines.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Job scheduler started")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Job scheduler stopped")
}
