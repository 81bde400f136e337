package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
)

// SchedulePostgres is a PostgreSQL implementation of repository.ScheduleRepository.
type SchedulePostgres struct {
	db *sql.DB
}

// NewSchedulePostgres creates a new SchedulePostgres repository.
func NewSchedulePostgres(db *sql.DB) *SchedulePostgres {
	return &SchedulePostgres{db: db}
}

var _ repository.ScheduleRepository = (*SchedulePostgres)(nil)

const scheduleColumns = `id, client_id, frequency, time_of_day, backup_options, next_run,
		last_run, active, created_at, updated_at`

func scanSchedule(s rowScanner) (*model.BackupSchedule, error) {
	var (
		bs   model.BackupSchedule
		opts []byte
	)
	if err := s.Scan(
		&bs.ID,
		&bs.ClientID,
		&bs.Frequency,
		&bs.TimeOfDay,
		&opts,
		&bs.NextRun,
		&bs.LastRun,
		&bs.Active,
		&bs.CreatedAt,
		&bs.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(opts) > 0 {
		if err := json.Unmarshal(opts, &bs.BackupOptions); err != nil {
			return nil, fmt.Errorf("decode backup_options: %w", err)
		}
	}
	return &bs, nil
}

func (r *SchedulePostgres) querySchedules(ctx context.Context, q string, args ...any) ([]model.BackupSchedule, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BackupSchedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert creates the client's schedule or replaces the existing one.
func (r *SchedulePostgres) Upsert(ctx context.Context, s *model.BackupSchedule) (*model.BackupSchedule, error) {
	opts, err := json.Marshal(s.BackupOptions)
	if err != nil {
		return nil, fmt.Errorf("encode backup_options: %w", err)
	}
	q := `
		INSERT INTO backup_schedules (id, client_id, frequency, time_of_day, backup_options,
			next_run, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7, $8, $8)
		ON CONFLICT (client_id) DO UPDATE SET
			frequency = EXCLUDED.frequency,
			time_of_day = EXCLUDED.time_of_day,
			backup_options = EXCLUDED.backup_options,
			next_run = EXCLUDED.next_run,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + scheduleColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.ClientID,
		s.Frequency,
		s.TimeOfDay,
		string(opts),
		s.NextRun,
		s.Active,
		s.UpdatedAt,
	)
	return scanSchedule(row)
}

// FindByClient fetches the schedule of one client.
func (r *SchedulePostgres) FindByClient(ctx context.Context, clientID string) (*model.BackupSchedule, error) {
	q := "SELECT " + scheduleColumns + " FROM backup_schedules WHERE client_id = $1"
	return scanSchedule(r.db.QueryRowContext(ctx, q, clientID))
}

// List returns every schedule ordered by next run.
func (r *SchedulePostgres) List(ctx context.Context) ([]model.BackupSchedule, error) {
	q := "SELECT " + scheduleColumns + " FROM backup_schedules ORDER BY next_run"
	return r.querySchedules(ctx, q)
}

// ListDue returns active schedules whose next run has arrived.
func (r *SchedulePostgres) ListDue(ctx context.Context, now time.Time) ([]model.BackupSchedule, error) {
	q := "SELECT " + scheduleColumns + " FROM backup_schedules WHERE active AND next_run <= $1 ORDER BY next_run"
	return r.querySchedules(ctx, q, now)
}

// MarkRun records a completed run and the next due time.
func (r *SchedulePostgres) MarkRun(ctx context.Context, id string, lastRun, nextRun time.Time) error {
	const q = `UPDATE backup_schedules SET last_run = $2, next_run = $3, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, lastRun, nextRun)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// Delete removes the schedule of a client.
func (r *SchedulePostgres) Delete(ctx context.Context, clientID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM backup_schedules WHERE client_id = $1`, clientID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}
