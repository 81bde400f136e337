package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
)

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
type ProfilePostgres struct {
	db *sql.DB
}

// NewProfilePostgres creates a new ProfilePostgres repository.
func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

const profileColumns = `id, full_name, username, avatar_url, email, phone_number, whatsapp_number,
		role, is_active, last_active, salon_name, subscription_plan, monthly_revenue,
		client_id, settings, metadata, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(s rowScanner) (*model.Profile, error) {
	var (
		p                  model.Profile
		settings, metadata []byte
	)
	if err := s.Scan(
		&p.ID,
		&p.FullName,
		&p.Username,
		&p.AvatarURL,
		&p.Email,
		&p.PhoneNumber,
		&p.WhatsappNumber,
		&p.Role,
		&p.IsActive,
		&p.LastActive,
		&p.SalonName,
		&p.SubscriptionPlan,
		&p.MonthlyRevenue,
		&p.ClientID,
		&settings,
		&metadata,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Settings = settings
	p.Metadata = metadata
	return &p, nil
}

func (r *ProfilePostgres) queryProfiles(ctx context.Context, q string, args ...any) ([]model.Profile, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// List returns profiles matching f, newest first.
func (r *ProfilePostgres) List(ctx context.Context, f model.ProfileFilter) ([]model.Profile, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Role != "" && f.Role != "all" {
		where = append(where, "role = "+arg(f.Role))
	}
	if f.Status != "" && f.Status != "all" {
		where = append(where, "is_active = "+arg(f.Status == "active"))
	}
	if f.Search != "" {
		p := arg(f.Search)
		where = append(where, fmt.Sprintf(
			"(full_name ILIKE '%%' || %[1]s || '%%' OR email ILIKE '%%' || %[1]s || '%%' OR username ILIKE '%%' || %[1]s || '%%')", p))
	}
	if f.ClientID != "" {
		where = append(where, "client_id = "+arg(f.ClientID))
	}
	if f.DateRange.Complete() {
		where = append(where, "created_at >= "+arg(*f.DateRange.Start))
		where = append(where, "created_at <= "+arg(*f.DateRange.End))
	}

	q := "SELECT " + profileColumns + " FROM profiles"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"

	return r.queryProfiles(ctx, q, args...)
}

// FindByID fetches a single profile by its ID.
func (r *ProfilePostgres) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	q := "SELECT " + profileColumns + " FROM profiles WHERE id = $1"
	return scanProfile(r.db.QueryRowContext(ctx, q, id))
}

// Create inserts a new profile row and returns the stored record.
func (r *ProfilePostgres) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	q := `
		INSERT INTO profiles (id, full_name, username, avatar_url, email, phone_number,
			whatsapp_number, role, is_active, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + profileColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.FullName,
		p.Username,
		p.AvatarURL,
		p.Email,
		p.PhoneNumber,
		p.WhatsappNumber,
		p.Role,
		p.IsActive,
		p.ClientID,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanProfile(row)
}

// Update writes the non-nil fields of in. updated_at is always refreshed.
func (r *ProfilePostgres) Update(ctx context.Context, id string, in model.ProfileInput) (*model.Profile, error) {
	var (
		sets []string
		args []any
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if in.Username != nil {
		set("username", *in.Username)
	}
	if in.FullName != nil {
		set("full_name", *in.FullName)
	}
	if in.Email != nil {
		set("email", *in.Email)
	}
	if in.PhoneNumber != nil {
		set("phone_number", *in.PhoneNumber)
	}
	if in.WhatsappNumber != nil {
		set("whatsapp_number", *in.WhatsappNumber)
	}
	if in.Role != nil {
		set("role", *in.Role)
	}
	if in.IsActive != nil {
		set("is_active", *in.IsActive)
	}
	if in.AvatarURL != nil {
		set("avatar_url", *in.AvatarURL)
	}
	if in.ClientID != nil {
		set("client_id", *in.ClientID)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	q := fmt.Sprintf("UPDATE profiles SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), profileColumns)

	return scanProfile(r.db.QueryRowContext(ctx, q, args...))
}

// Delete removes a profile by ID. It returns sql.ErrNoRows when nothing was deleted.
func (r *ProfilePostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// Summaries returns the fields needed for profile statistics.
func (r *ProfilePostgres) Summaries(ctx context.Context) ([]model.ProfileSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, is_active, created_at, role FROM profiles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProfileSummary, 0)
	for rows.Next() {
		var s model.ProfileSummary
		var role sql.NullString
		if err := rows.Scan(&s.ID, &s.IsActive, &s.CreatedAt, &role); err != nil {
			return nil, err
		}
		s.Role = role.String
		items = append(items, s)
	}
	return items, rows.Err()
}

// Clients lists profiles for client pickers.
func (r *ProfilePostgres) Clients(ctx context.Context) ([]model.Client, error) {
	const q = `
		SELECT id, full_name, email, phone_number, created_at, updated_at
		FROM profiles
		ORDER BY full_name
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Client, 0)
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// SalonOwners returns every profile with role salon_owner.
func (r *ProfilePostgres) SalonOwners(ctx context.Context) ([]model.Profile, error) {
	q := "SELECT " + profileColumns + " FROM profiles WHERE role = $1"
	return r.queryProfiles(ctx, q, model.RoleSalonOwner)
}

// RecentOwners returns salon owners by last activity, most recent first.
func (r *ProfilePostgres) RecentOwners(ctx context.Context, limit int) ([]model.Profile, error) {
	q := "SELECT " + profileColumns + ` FROM profiles
		WHERE role = $1
		ORDER BY last_active DESC NULLS LAST
		LIMIT $2`
	return r.queryProfiles(ctx, q, model.RoleSalonOwner, limit)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
