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

// SessionPostgres is a PostgreSQL implementation of repository.SessionRepository
// and repository.OverviewRepository.
type SessionPostgres struct {
	db *sql.DB
}

// NewSessionPostgres creates a new SessionPostgres repository.
func NewSessionPostgres(db *sql.DB) *SessionPostgres {
	return &SessionPostgres{db: db}
}

var (
	_ repository.SessionRepository  = (*SessionPostgres)(nil)
	_ repository.OverviewRepository = (*SessionPostgres)(nil)
)

// Create stores a new active session.
func (r *SessionPostgres) Create(ctx context.Context, s *model.UserSession) (string, error) {
	device, err := json.Marshal(s.DeviceInfo)
	if err != nil {
		return "", fmt.Errorf("encode device_info: %w", err)
	}
	var location any
	if s.Location != nil {
		raw, err := json.Marshal(s.Location)
		if err != nil {
			return "", fmt.Errorf("encode location: %w", err)
		}
		location = string(raw)
	}

	const q = `
		INSERT INTO user_sessions (id, user_id, profile_id, device_info, ip_address, location,
			is_active, started_at, last_active)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6::jsonb, true, $7, $7)
		RETURNING id
	`
	var id string
	err = r.db.QueryRowContext(ctx, q,
		s.ID,
		s.UserID,
		s.ProfileID,
		string(device),
		s.IPAddress,
		location,
		s.StartedAt,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// IncrementActions bumps the action counter of a session.
func (r *SessionPostgres) IncrementActions(ctx context.Context, id string, now time.Time) error {
	const q = `UPDATE user_sessions SET actions_count = actions_count + 1, last_active = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, now)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// End marks a session inactive.
func (r *SessionPostgres) End(ctx context.Context, id string, now time.Time) error {
	const q = `UPDATE user_sessions SET is_active = false, last_active = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, now)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// ListActive returns active sessions with profile details.
func (r *SessionPostgres) ListActive(ctx context.Context) ([]model.UserSession, error) {
	const q = `
		SELECT s.id, s.user_id, s.profile_id, s.device_info, s.ip_address, s.location,
			s.is_active, s.actions_count, s.started_at, s.last_active,
			COALESCE(p.full_name, ''), COALESCE(p.email, ''), COALESCE(p.role, '')
		FROM user_sessions s
		LEFT JOIN profiles p ON p.id = s.profile_id
		WHERE s.is_active
		ORDER BY s.last_active DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.UserSession, 0)
	for rows.Next() {
		var (
			s                model.UserSession
			device, location []byte
		)
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.ProfileID,
			&device,
			&s.IPAddress,
			&location,
			&s.IsActive,
			&s.ActionsCount,
			&s.StartedAt,
			&s.LastActive,
			&s.FullName,
			&s.Email,
			&s.Role,
		); err != nil {
			return nil, err
		}
		if len(device) > 0 {
			if err := json.Unmarshal(device, &s.DeviceInfo); err != nil {
				return nil, fmt.Errorf("decode device_info: %w", err)
			}
		}
		if len(location) > 0 && string(location) != "null" {
			s.Location = &model.Location{}
			if err := json.Unmarshal(location, s.Location); err != nil {
				return nil, fmt.Errorf("decode location: %w", err)
			}
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// DeactivateStale ends sessions idle since before cutoff.
func (r *SessionPostgres) DeactivateStale(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `UPDATE user_sessions SET is_active = false WHERE is_active AND last_active < $1`
	res, err := r.db.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Stats computes session statistics in a single round trip.
func (r *SessionPostgres) Stats(ctx context.Context, since time.Time, highActivity int) (*model.SessionStats, error) {
	const q = `
		SELECT
			count(*) FILTER (WHERE is_active),
			count(*) FILTER (WHERE started_at >= $1),
			count(DISTINCT location->>'city'),
			count(*) FILTER (WHERE actions_count > $2)
		FROM user_sessions
	`
	var st model.SessionStats
	if err := r.db.QueryRowContext(ctx, q, since, highActivity).Scan(
		&st.ActiveSessions,
		&st.TotalSessions,
		&st.UniqueLocations,
		&st.HighActivitySessions,
	); err != nil {
		return nil, err
	}
	return &st, nil
}

// CountActivePlatformSessions counts rows in active_sessions flagged active.
func (r *SessionPostgres) CountActivePlatformSessions(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM active_sessions WHERE is_active`).Scan(&n)
	return n, err
}

// CountOpenTickets counts support tickets with status open.
func (r *SessionPostgres) CountOpenTickets(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM support_tickets WHERE status = 'open'`).Scan(&n)
	return n, err
}
