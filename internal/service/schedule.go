package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tenantconsole/internal/metrics"
	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
)

// ScheduleInput is the body of a schedule upsert.
type ScheduleInput struct {
	Frequency string                `json:"frequency" validate:"required,oneof=daily weekly monthly"`
	Time      string                `json:"time" validate:"required"`
	Options   model.ScheduleOptions `json:"backup_options"`
	Active    *bool                 `json:"active,omitempty"`
}

// RunSummary reports the outcome of one RunDue pass.
type RunSummary struct {
	Due       int `json:"due"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// ScheduleService manages recurring backups.
type ScheduleService interface {
	Upsert(ctx context.Context, clientID string, in ScheduleInput) (*model.BackupSchedule, error)
	Get(ctx context.Context, clientID string) (*model.BackupSchedule, error)
	List(ctx context.Context) ([]model.BackupSchedule, error)
	Delete(ctx context.Context, clientID string) error
	// RunDue takes a backup for every active schedule whose next run has
	// arrived. A failing schedule does not stop the others.
	RunDue(ctx context.Context) (RunSummary, error)
}

type scheduleService struct {
	repo    repository.ScheduleRepository
	backups BackupService
	metrics *metrics.Metrics
	loc     *time.Location
	log     *zap.Logger
	now     func() time.Time
}

// NewScheduleService constructs a ScheduleService. Times of day are
// interpreted in loc.
func NewScheduleService(repo repository.ScheduleRepository, backups BackupService, m *metrics.Metrics, loc *time.Location, log *zap.Logger) ScheduleService {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &scheduleService{repo: repo, backups: backups, metrics: m, loc: loc, log: log, now: time.Now}
}

// ParseTimeOfDay parses "HH:MM" on a 24-hour clock.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, invalid("time must be HH:MM")
	}
	return t.Hour(), t.Minute(), nil
}

// NextRun returns the first run strictly after now: today at timeOfDay in
// now's location, pushed forward by one day, one week or one month when
// that moment has already passed.
func NextRun(frequency, timeOfDay string, now time.Time) (time.Time, error) {
	h, m, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	next := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
	if next.After(now) {
		return next, nil
	}
	switch frequency {
	case model.FrequencyDaily:
		return next.AddDate(0, 0, 1), nil
	case model.FrequencyWeekly:
		return next.AddDate(0, 0, 7), nil
	case model.FrequencyMonthly:
		return next.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, invalid("unknown frequency %q", frequency)
	}
}

// advanceRun steps the schedule's due time forward by whole periods until
// it lies after now, keeping the weekday and day of month of the original
// slot. Schedules without a recorded next_run are placed with NextRun.
func advanceRun(sc model.BackupSchedule, now time.Time) (time.Time, error) {
	if sc.NextRun.IsZero() {
		return NextRun(sc.Frequency, sc.TimeOfDay, now)
	}
	due := sc.NextRun.In(now.Location())
	var step func(n int) time.Time
	switch sc.Frequency {
	case model.FrequencyDaily:
		step = func(n int) time.Time { return due.AddDate(0, 0, n) }
	case model.FrequencyWeekly:
		step = func(n int) time.Time { return due.AddDate(0, 0, 7*n) }
	case model.FrequencyMonthly:
		step = func(n int) time.Time { return due.AddDate(0, n, 0) }
	default:
		return time.Time{}, invalid("unknown frequency %q", sc.Frequency)
	}
	for n := 1; ; n++ {
		if next := step(n); next.After(now) {
			return next, nil
		}
	}
}

func (s *scheduleService) Upsert(ctx context.Context, clientID string, in ScheduleInput) (*model.BackupSchedule, error) {
	if clientID == "" {
		return nil, ErrIDRequired
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	now := s.now().In(s.loc)
	next, err := NextRun(in.Frequency, in.Time, now)
	if err != nil {
		return nil, err
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return s.repo.Upsert(ctx, &model.BackupSchedule{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		Frequency:     in.Frequency,
		TimeOfDay:     in.Time,
		BackupOptions: in.Options,
		NextRun:       next.UTC(),
		Active:        active,
		UpdatedAt:     now.UTC(),
	})
}

func (s *scheduleService) Get(ctx context.Context, clientID string) (*model.BackupSchedule, error) {
	if clientID == "" {
		return nil, ErrIDRequired
	}
	sc, err := s.repo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, notFound(err)
	}
	return sc, nil
}

func (s *scheduleService) List(ctx context.Context) ([]model.BackupSchedule, error) {
	return s.repo.List(ctx)
}

func (s *scheduleService) Delete(ctx context.Context, clientID string) error {
	if clientID == "" {
		return ErrIDRequired
	}
	return notFound(s.repo.Delete(ctx, clientID))
}

func (s *scheduleService) RunDue(ctx context.Context) (RunSummary, error) {
	now := s.now().In(s.loc)
	due, err := s.repo.ListDue(ctx, now.UTC())
	if err != nil {
		return RunSummary{}, fmt.Errorf("list due schedules: %w", err)
	}

	sum := RunSummary{Due: len(due)}
	for _, sc := range due {
		if err := s.runOne(ctx, sc, now); err != nil {
			sum.Failed++
			s.metrics.ObserveScheduledRun(model.StatusFailed)
			s.log.Error("scheduled backup failed",
				zap.String("schedule_id", sc.ID),
				zap.String("client_id", sc.ClientID),
				zap.Error(err))
			continue
		}
		sum.Succeeded++
		s.metrics.ObserveScheduledRun(model.StatusCompleted)
	}
	return sum, nil
}

// runOne backs up the schedule's client and advances next_run, also when
// the backup fails.
func (s *scheduleService) runOne(ctx context.Context, sc model.BackupSchedule, now time.Time) error {
	opts := sc.BackupOptions
	_, backupErr := s.backups.Create(ctx, model.BackupOptions{
		ClientID:        sc.ClientID,
		Tables:          opts.Tables,
		SelectAllTables: len(opts.Tables) == 0,
		Type:            opts.Type,
		StorageType:     opts.StorageType,
		Compression:     opts.Compression,
		Encryption:      opts.Encryption,
		Description:     fmt.Sprintf("scheduled %s backup", sc.Frequency),
	})

	next, err := advanceRun(sc, now)
	if err != nil {
		return err
	}
	if err := s.repo.MarkRun(ctx, sc.ID, now.UTC(), next.UTC()); err != nil {
		return fmt.Errorf("mark run: %w", err)
	}
	return backupErr
}
