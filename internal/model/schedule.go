package model

import "time"

// Schedule frequencies.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// ScheduleOptions are the backup options applied on every scheduled run.
type ScheduleOptions struct {
	Type        string   `json:"type" validate:"required,oneof=full incremental differential"`
	Compression bool     `json:"compression"`
	Encryption  bool     `json:"encryption"`
	StorageType string   `json:"storage_type" validate:"required,oneof=cloud local both"`
	Tables      []string `json:"tables,omitempty"`
}

// BackupSchedule is a recurring backup of one client's data.
type BackupSchedule struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	Frequency     string          `json:"frequency"`
	TimeOfDay     string          `json:"time_of_day"`
	BackupOptions ScheduleOptions `json:"backup_options"`
	NextRun       time.Time       `json:"next_run"`
	LastRun       *time.Time      `json:"last_run,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
