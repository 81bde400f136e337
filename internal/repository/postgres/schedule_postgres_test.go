package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantconsole/internal/model"
)

var scheduleCols = []string{
	"id", "client_id", "frequency", "time_of_day", "backup_options", "next_run",
	"last_run", "active", "created_at", "updated_at",
}

func scheduleRows(now time.Time, ids ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows(scheduleCols)
	for _, id := range ids {
		rows.AddRow(id, "c-"+id, "daily", "02:00",
			[]byte(`{"type":"full","compression":true,"encryption":false,"storage_type":"both"}`),
			now, nil, true, now, now)
	}
	return rows
}

func TestSchedulePostgres_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSchedulePostgres(db)
	now := time.Now().UTC()
	s := &model.BackupSchedule{
		ID:        "s-1",
		ClientID:  "c-s-1",
		Frequency: model.FrequencyDaily,
		TimeOfDay: "02:00",
		BackupOptions: model.ScheduleOptions{
			Type:        model.BackupTypeFull,
			Compression: true,
			StorageType: model.StorageBoth,
		},
		NextRun:   now,
		Active:    true,
		UpdatedAt: now,
	}

	mock.ExpectQuery(`INSERT INTO backup_schedules (.+) ON CONFLICT \(client_id\) DO UPDATE`).
		WithArgs("s-1", "c-s-1", "daily", "02:00",
			`{"type":"full","compression":true,"encryption":false,"storage_type":"both"}`,
			now, true, now).
		WillReturnRows(scheduleRows(now, "s-1"))

	got, err := repo.Upsert(context.Background(), s)

	require.NoError(t, err)
	assert.Equal(t, "s-1", got.ID)
	assert.True(t, got.BackupOptions.Compression)
	assert.Equal(t, model.StorageBoth, got.BackupOptions.StorageType)
	assert.Nil(t, got.LastRun)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchedulePostgres_FindByClient(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSchedulePostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM backup_schedules WHERE client_id = ?").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	s, err := repo.FindByClient(context.Background(), "nobody")

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, s)
}

func TestSchedulePostgres_ListDue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSchedulePostgres(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM backup_schedules WHERE active AND next_run <= (.+) ORDER BY next_run").
		WithArgs(now).
		WillReturnRows(scheduleRows(now, "s-1", "s-2"))

	items, err := repo.ListDue(context.Background(), now)

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "c-s-2", items[1].ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchedulePostgres_MarkRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSchedulePostgres(db)
	last := time.Now()
	next := last.Add(24 * time.Hour)

	mock.ExpectExec("UPDATE backup_schedules SET last_run").
		WithArgs("s-1", last, next).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkRun(context.Background(), "s-1", last, next))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchedulePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSchedulePostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM backup_schedules WHERE client_id = ?").
		WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(ctx, "c-1"))

	mock.ExpectExec("DELETE FROM backup_schedules WHERE client_id = ?").
		WithArgs("c-2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, "c-2"), sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}
