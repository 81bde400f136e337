package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
)

// BackupPostgres is a PostgreSQL implementation of repository.BackupRepository.
type BackupPostgres struct {
	db *sql.DB
}

// NewBackupPostgres creates a new BackupPostgres repository.
func NewBackupPostgres(db *sql.DB) *BackupPostgres {
	return &BackupPostgres{db: db}
}

var _ repository.BackupRepository = (*BackupPostgres)(nil)

// file_paths travels as JSON so the driver never has to encode a text[].
const backupColumns = `id, created_by, table_name, backup_type, storage_type, status, backup_data,
		to_json(file_paths), backup_size, description, error_message, restore_status,
		restore_started_at, created_at, completed_at, expires_at, compression, encryption, priority`

func scanBackup(s rowScanner) (*model.BackupRecord, error) {
	var (
		b         model.BackupRecord
		data      []byte
		filePaths []byte
	)
	if err := s.Scan(
		&b.ID,
		&b.CreatedBy,
		&b.TableName,
		&b.BackupType,
		&b.StorageType,
		&b.Status,
		&data,
		&filePaths,
		&b.BackupSize,
		&b.Description,
		&b.ErrorMessage,
		&b.RestoreStatus,
		&b.RestoreStartedAt,
		&b.CreatedAt,
		&b.CompletedAt,
		&b.ExpiresAt,
		&b.Compression,
		&b.Encryption,
		&b.Priority,
	); err != nil {
		return nil, err
	}

	if len(data) > 0 && !bytes.Equal(data, []byte("null")) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&b.BackupData); err != nil {
			return nil, fmt.Errorf("decode backup_data: %w", err)
		}
	}
	b.FilePaths = []string{}
	if len(filePaths) > 0 {
		if err := json.Unmarshal(filePaths, &b.FilePaths); err != nil {
			return nil, fmt.Errorf("decode file_paths: %w", err)
		}
	}
	return &b, nil
}

func (r *BackupPostgres) queryBackups(ctx context.Context, q string, args ...any) ([]model.BackupRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BackupRecord, 0)
	for rows.Next() {
		b, err := scanBackup(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a backup record and returns the stored row.
func (r *BackupPostgres) Create(ctx context.Context, b *model.BackupRecord) (*model.BackupRecord, error) {
	var data any
	if b.BackupData != nil {
		raw, err := json.Marshal(b.BackupData)
		if err != nil {
			return nil, fmt.Errorf("encode backup_data: %w", err)
		}
		data = string(raw)
	}
	paths := b.FilePaths
	if paths == nil {
		paths = []string{}
	}
	rawPaths, err := json.Marshal(paths)
	if err != nil {
		return nil, fmt.Errorf("encode file_paths: %w", err)
	}

	q := `
		INSERT INTO backups (id, created_by, table_name, backup_type, storage_type, status,
			backup_data, file_paths, backup_size, description, error_message,
			created_at, completed_at, expires_at, compression, encryption, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb,
			ARRAY(SELECT json_array_elements_text($8::json)), $9, $10, $11, $12, $13, $14,
			$15, $16, $17)
		RETURNING ` + backupColumns
	row := r.db.QueryRowContext(ctx, q,
		b.ID,
		b.CreatedBy,
		b.TableName,
		b.BackupType,
		b.StorageType,
		b.Status,
		data,
		string(rawPaths),
		b.BackupSize,
		b.Description,
		b.ErrorMessage,
		b.CreatedAt,
		b.CompletedAt,
		b.ExpiresAt,
		b.Compression,
		b.Encryption,
		b.Priority,
	)
	return scanBackup(row)
}

// FindByID fetches a single backup by its ID.
func (r *BackupPostgres) FindByID(ctx context.Context, id string) (*model.BackupRecord, error) {
	q := "SELECT " + backupColumns + " FROM backups WHERE id = $1"
	return scanBackup(r.db.QueryRowContext(ctx, q, id))
}

// List returns backups newest first, optionally for a single client.
func (r *BackupPostgres) List(ctx context.Context, clientID string) ([]model.BackupRecord, error) {
	if clientID == "" {
		q := "SELECT " + backupColumns + " FROM backups ORDER BY created_at DESC"
		return r.queryBackups(ctx, q)
	}
	q := "SELECT " + backupColumns + " FROM backups WHERE created_by = $1 ORDER BY created_at DESC"
	return r.queryBackups(ctx, q, clientID)
}

// Delete removes a backup by ID.
func (r *BackupPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM backups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// SetRestoreStatus updates restore progress columns.
func (r *BackupPostgres) SetRestoreStatus(ctx context.Context, id, status string, startedAt *time.Time, errMsg *string) error {
	const q = `
		UPDATE backups
		SET restore_status = $2,
			restore_started_at = COALESCE($3, restore_started_at),
			error_message = COALESCE($4, error_message)
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q, id, status, startedAt, errMsg)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// LatestCreatedAt returns the newest backup time, or nil when there are no backups.
func (r *BackupPostgres) LatestCreatedAt(ctx context.Context) (*time.Time, error) {
	var ts sql.NullTime
	if err := r.db.QueryRowContext(ctx, `SELECT max(created_at) FROM backups`).Scan(&ts); err != nil {
		return nil, err
	}
	if !ts.Valid {
		return nil, nil
	}
	return &ts.Time, nil
}

// ListExpired returns backups past their retention.
func (r *BackupPostgres) ListExpired(ctx context.Context, now time.Time) ([]model.BackupRecord, error) {
	q := "SELECT " + backupColumns + " FROM backups WHERE expires_at IS NOT NULL AND expires_at < $1"
	return r.queryBackups(ctx, q, now)
}
