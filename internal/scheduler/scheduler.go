// Package scheduler runs the periodic console jobs: due backup schedules,
// retention pruning and stale session cleanup.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"tenantconsole/internal/service"
)

// MaintenanceSpec is when expired backups are pruned and stale sessions ended.
const MaintenanceSpec = "@hourly"

// jobTimeout bounds a single job run.
const jobTimeout = 10 * time.Minute

// DueRunner runs the backup schedules whose next run has passed.
type DueRunner interface {
	RunDue(ctx context.Context) (service.RunSummary, error)
}

// Pruner deletes backups past their retention.
type Pruner interface {
	PruneExpired(ctx context.Context) (int, error)
}

// SessionCleaner ends sessions that have been idle too long.
type SessionCleaner interface {
	CleanupStale(ctx context.Context) (int64, error)
}

// Jobs are the services driven by the scheduler. Nil members are skipped.
type Jobs struct {
	Schedules DueRunner
	Backups   Pruner
	Sessions  SessionCleaner
}

// Scheduler wraps a cron runner.
type Scheduler struct {
	cron *cron.Cron
	jobs Jobs
	log  *zap.Logger
}

// New registers the backup tick on spec and the maintenance jobs on
// MaintenanceSpec, evaluated in loc. Overlapping runs of a job are skipped.
func New(spec string, jobs Jobs, loc *time.Location, log *zap.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	cl := cronLogger{log: log.Sugar()}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	s := &Scheduler{cron: c, jobs: jobs, log: log}

	if _, err := c.AddFunc(spec, s.RunDue); err != nil {
		return nil, fmt.Errorf("schedule spec %q: %w", spec, err)
	}
	if _, err := c.AddFunc(MaintenanceSpec, s.Maintain); err != nil {
		return nil, fmt.Errorf("maintenance spec: %w", err)
	}
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", zap.Int("entries", len(s.cron.Entries())))
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunDue takes the backups of every due schedule.
func (s *Scheduler) RunDue() {
	if s.jobs.Schedules == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	sum, err := s.jobs.Schedules.RunDue(ctx)
	if err != nil {
		s.log.Error("scheduled backups not run", zap.Error(err))
		return
	}
	if sum.Due > 0 {
		s.log.Info("scheduled backups run",
			zap.Int("due", sum.Due),
			zap.Int("succeeded", sum.Succeeded),
			zap.Int("failed", sum.Failed))
	}
}

// Maintain prunes expired backups and ends stale sessions.
func (s *Scheduler) Maintain() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if s.jobs.Backups != nil {
		n, err := s.jobs.Backups.PruneExpired(ctx)
		if err != nil {
			s.log.Error("expired backups not pruned", zap.Error(err))
		} else if n > 0 {
			s.log.Info("expired backups pruned", zap.Int("count", n))
		}
	}
	if s.jobs.Sessions != nil {
		n, err := s.jobs.Sessions.CleanupStale(ctx)
		if err != nil {
			s.log.Error("stale sessions not cleaned up", zap.Error(err))
		} else if n > 0 {
			s.log.Info("stale sessions ended", zap.Int64("count", n))
		}
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
