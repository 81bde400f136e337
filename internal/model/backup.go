package model

import (
	"encoding/json"
	"time"
)

// Backup types.
const (
	BackupTypeFull         = "full"
	BackupTypeIncremental  = "incremental"
	BackupTypeDifferential = "differential"
)

// Storage targets for a backup.
const (
	StorageCloud = "cloud"
	StorageLocal = "local"
	StorageBoth  = "both"
)

// Backup and restore statuses.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Backup priorities.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// BackupData maps a table name to the rows captured from it.
type BackupData map[string][]Row

// BackupRecord is a snapshot of selected table data.
type BackupRecord struct {
	ID               string     `json:"id"`
	CreatedBy        *string    `json:"created_by,omitempty"`
	TableName        string     `json:"table_name"`
	BackupType       string     `json:"backup_type"`
	StorageType      string     `json:"storage_type"`
	Status           string     `json:"status"`
	BackupData       BackupData `json:"backup_data,omitempty"`
	FilePaths        []string   `json:"file_paths"`
	BackupSize       int64      `json:"backup_size"`
	Description      string     `json:"description,omitempty"`
	Compression      bool       `json:"compression"`
	Encryption       bool       `json:"encryption"`
	Priority         string     `json:"priority"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	RestoreStatus    *string    `json:"restore_status,omitempty"`
	RestoreStartedAt *time.Time `json:"restore_started_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}

// Size returns the byte length of the JSON encoding of data.
func (d BackupData) Size() (int64, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return 0, err
	}
	return int64(len(b)), nil
}

// BackupOptions describes a backup request.
type BackupOptions struct {
	ClientID        string     `json:"client_id,omitempty" validate:"omitempty,uuid"`
	Tables          []string   `json:"tables,omitempty" validate:"omitempty,dive,required"`
	SelectAllTables bool       `json:"select_all_tables"`
	Type            string     `json:"type" validate:"required,oneof=full incremental differential"`
	StorageType     string     `json:"storage_type,omitempty" validate:"omitempty,oneof=cloud local both"`
	Compression     bool       `json:"compression"`
	Encryption      bool       `json:"encryption"`
	DateRange       *DateRange `json:"date_range,omitempty"`
	Description     string     `json:"description,omitempty" validate:"max=500"`
	Priority        string     `json:"priority,omitempty" validate:"omitempty,oneof=low normal high"`
	RetentionDays   int        `json:"retention_days,omitempty" validate:"gte=0,lte=3650"`
}

// IncludesCloud reports whether the backup is recorded in the backups table.
func (o BackupOptions) IncludesCloud() bool {
	return o.StorageType == "" || o.StorageType == StorageCloud || o.StorageType == StorageBoth
}

// PriorityOrDefault returns the requested priority, normal when unset.
func (o BackupOptions) PriorityOrDefault() string {
	if o.Priority == "" {
		return PriorityNormal
	}
	return o.Priority
}

// IncludesLocal reports whether file artifacts are written locally.
func (o BackupOptions) IncludesLocal() bool {
	return o.StorageType == StorageLocal || o.StorageType == StorageBoth
}

// StorageTypeFor maps the two include switches of a quick backup to a storage type.
func StorageTypeFor(includeCloud, includeLocal bool) string {
	switch {
	case includeCloud && includeLocal:
		return StorageBoth
	case includeLocal:
		return StorageLocal
	default:
		return StorageCloud
	}
}
