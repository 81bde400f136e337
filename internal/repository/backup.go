package repository

import (
	"context"
	"time"

	"tenantconsole/internal/model"
)

// BackupRepository defines data access for backup records.
type BackupRepository interface {
	Create(ctx context.Context, b *model.BackupRecord) (*model.BackupRecord, error)

	// FindByID returns sql.ErrNoRows when the backup does not exist.
	FindByID(ctx context.Context, id string) (*model.BackupRecord, error)

	// List returns backups newest first. An empty clientID lists every backup.
	List(ctx context.Context, clientID string) ([]model.BackupRecord, error)

	// Delete removes a backup. It returns sql.ErrNoRows when nothing was deleted.
	Delete(ctx context.Context, id string) error

	// SetRestoreStatus records restore progress. startedAt and errMsg are
	// written only when non-nil.
	SetRestoreStatus(ctx context.Context, id, status string, startedAt *time.Time, errMsg *string) error

	// LatestCreatedAt returns the creation time of the newest backup, or nil.
	LatestCreatedAt(ctx context.Context) (*time.Time, error)

	// ListExpired returns backups whose expires_at is before now.
	ListExpired(ctx context.Context, now time.Time) ([]model.BackupRecord, error)
}
