package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantconsole/internal/model"
)

var backupCols = []string{
	"id", "created_by", "table_name", "backup_type", "storage_type", "status", "backup_data",
	"file_paths", "backup_size", "description", "error_message", "restore_status",
	"restore_started_at", "created_at", "completed_at", "expires_at",
	"compression", "encryption", "priority",
}

func backupRow(rows *sqlmock.Rows, id string, data string, now time.Time) *sqlmock.Rows {
	var raw any
	if data != "" {
		raw = []byte(data)
	}
	return rows.AddRow(id, "c-1", "profiles,members", "full", "cloud", "completed", raw,
		[]byte(`["local/a.xlsx"]`), int64(len(data)), "", nil, nil, nil, now, now, nil, true, false, "high")
}

func TestBackupPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBackupPostgres(db)
	now := time.Now().UTC()
	client := "c-1"
	b := &model.BackupRecord{
		ID:          "b-1",
		CreatedBy:   &client,
		TableName:   "profiles",
		BackupType:  model.BackupTypeFull,
		StorageType: model.StorageCloud,
		Status:      model.StatusCompleted,
		BackupData:  model.BackupData{"profiles": {{"id": "p-1"}}},
		BackupSize:  28,
		CreatedAt:   now,
		CompletedAt: &now,
		Compression: true,
		Priority:    model.PriorityHigh,
	}

	mock.ExpectQuery("INSERT INTO backups").
		WithArgs("b-1", "c-1", "profiles", "full", "cloud", "completed",
			`{"profiles":[{"id":"p-1"}]}`, `[]`, int64(28), "", nil, now, now, nil, true, false, "high").
		WillReturnRows(backupRow(sqlmock.NewRows(backupCols), "b-1", `{"profiles":[{"id":"p-1","n":1}]}`, now))

	got, err := repo.Create(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, []string{"local/a.xlsx"}, got.FilePaths)
	require.Len(t, got.BackupData["profiles"], 1)
	assert.Equal(t, json.Number("1"), got.BackupData["profiles"][0]["n"])
	assert.True(t, got.Compression)
	assert.False(t, got.Encryption)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupPostgres_Create_FailedRecordWithoutData(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBackupPostgres(db)
	now := time.Now().UTC()
	msg := "boom"

	mock.ExpectQuery("INSERT INTO backups").
		WithArgs("b-2", nil, "pos_orders", "full", "both", "failed",
			nil, `["a.sql"]`, int64(0), "", "boom", now, nil, nil, false, false, "").
		WillReturnRows(backupRow(sqlmock.NewRows(backupCols), "b-2", "", now))

	got, err := repo.Create(context.Background(), &model.BackupRecord{
		ID:           "b-2",
		TableName:    "pos_orders",
		BackupType:   model.BackupTypeFull,
		StorageType:  model.StorageBoth,
		Status:       model.StatusFailed,
		FilePaths:    []string{"a.sql"},
		ErrorMessage: &msg,
		CreatedAt:    now,
	})

	require.NoError(t, err)
	assert.Nil(t, got.BackupData)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBackupPostgres(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("all", func(t *testing.T) {
		rows := sqlmock.NewRows(backupCols)
		backupRow(rows, "b-1", `{}`, now)
		backupRow(rows, "b-2", `{}`, now)
		mock.ExpectQuery("SELECT (.+) FROM backups ORDER BY created_at DESC").
			WillReturnRows(rows)

		items, err := repo.List(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("by client", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM backups WHERE created_by = (.+) ORDER BY created_at DESC").
			WithArgs("c-1").
			WillReturnRows(backupRow(sqlmock.NewRows(backupCols), "b-1", `{}`, now))

		items, err := repo.List(ctx, "c-1")

		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBackupPostgres(db)

	mock.ExpectExec("DELETE FROM backups WHERE id = ?").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), sql.ErrNoRows)
}

func TestBackupPostgres_SetRestoreStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBackupPostgres(db)
	now := time.Now()

	mock.ExpectExec("UPDATE backups SET restore_status").
		WithArgs("b-1", "in_progress", now, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetRestoreStatus(context.Background(), "b-1", model.StatusInProgress, &now, nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupPostgres_LatestCreatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBackupPostgres(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT max\(created_at\) FROM backups`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(now))
	ts, err := repo.LatestCreatedAt(ctx)
	require.NoError(t, err)
	assert.Equal(t, now, *ts)

	mock.ExpectQuery(`SELECT max\(created_at\) FROM backups`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))
	ts, err = repo.LatestCreatedAt(ctx)
	require.NoError(t, err)
	assert.Nil(t, ts)
}
