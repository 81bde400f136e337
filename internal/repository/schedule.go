package repository

import (
	"context"
	"time"

	"tenantconsole/internal/model"
)

// ScheduleRepository defines data access for backup schedules.
// A client owns at most one schedule.
type ScheduleRepository interface {
	// Upsert creates or replaces the schedule of s.ClientID.
	Upsert(ctx context.Context, s *model.BackupSchedule) (*model.BackupSchedule, error)

	// FindByClient returns sql.ErrNoRows when the client has no schedule.
	FindByClient(ctx context.Context, clientID string) (*model.BackupSchedule, error)

	List(ctx context.Context) ([]model.BackupSchedule, error)

	// ListDue returns active schedules whose next run is at or before now.
	ListDue(ctx context.Context, now time.Time) ([]model.BackupSchedule, error)

	MarkRun(ctx context.Context, id string, lastRun, nextRun time.Time) error

	// Delete returns sql.ErrNoRows when the client has no schedule.
	Delete(ctx context.Context, clientID string) error
}
