package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tenantconsole/internal/cache"
	"tenantconsole/internal/export"
	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
	repoMocks "tenantconsole/internal/repository/mocks"
)

func newTestSchemaService(tables *repoMocks.MockTableRepository, backups *repoMocks.MockBackupRepository, c cache.Cache) SchemaService {
	return NewSchemaService(tables, backups, c, time.Minute, time.FixedZone("WIB", 7*3600), zap.NewNop())
}

func TestSchemaService_DataStats(t *testing.T) {
	ctx := context.Background()
	mTables := new(repoMocks.MockTableRepository)
	mBackups := new(repoMocks.MockBackupRepository)
	c := cache.NewMemoryCache()
	svc := newTestSchemaService(mTables, mBackups, c)
	last := time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)

	mTables.On("Stats", ctx).Return([]model.TableStat{
		{Name: "members", Rows: 10, Bytes: 8192},
		{Name: "profiles", Rows: 3, Bytes: 16384},
	}, nil).Once()
	mBackups.On("LatestCreatedAt", ctx).Return(&last, nil).Once()

	ds, err := svc.DataStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DataStats{
		TotalRecords: 13,
		StorageUsed:  24576,
		LastBackup:   "2024-05-01T10:00:00+07:00",
		DataTypes:    []string{"members", "profiles"},
	}, *ds)

	cachedStats, err := svc.DataStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, ds, cachedStats)

	ts, err := svc.TableStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(13), ts.TotalRows)
	mTables.AssertExpectations(t)
	mBackups.AssertExpectations(t)
}

func TestSchemaService_DataStats_NoBackups(t *testing.T) {
	ctx := context.Background()
	mTables := new(repoMocks.MockTableRepository)
	mBackups := new(repoMocks.MockBackupRepository)
	svc := newTestSchemaService(mTables, mBackups, nil)

	mTables.On("Stats", ctx).Return([]model.TableStat{}, nil)
	mBackups.On("LatestCreatedAt", ctx).Return(nil, nil)

	ds, err := svc.DataStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, NoBackupsFound, ds.LastBackup)
	assert.Empty(t, ds.DataTypes)
}

func TestSchemaService_Rows(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: DefaultRowLimit},
		{name: "within bounds", limit: 25, wantLimit: 25},
		{name: "clamped", limit: 5000, wantLimit: MaxRowLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mTables := new(repoMocks.MockTableRepository)
			svc := newTestSchemaService(mTables, nil, nil)
			mTables.On("Exists", ctx, "members").Return(true, nil)
			mTables.On("Rows", ctx, "members", repository.RowQuery{Limit: tt.wantLimit}).Return([]model.Row{}, nil)

			_, err := svc.Rows(ctx, "members", tt.limit)

			assert.NoError(t, err)
			mTables.AssertExpectations(t)
		})
	}
}

func TestSchemaService_InvalidTable(t *testing.T) {
	ctx := context.Background()
	mTables := new(repoMocks.MockTableRepository)
	svc := newTestSchemaService(mTables, nil, nil)
	mTables.On("Exists", ctx, "secrets").Return(false, nil)
	mTables.On("Exists", ctx, "broken").Return(false, errors.New("conn reset"))

	_, err := svc.Columns(ctx, "secrets")
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = svc.Rows(ctx, "", 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Export(ctx, "broken", export.FormatCSV)
	assert.EqualError(t, err, "conn reset")

	mTables.AssertNotCalled(t, "Columns", mock.Anything, mock.Anything)
}

func TestSchemaService_InsertRow(t *testing.T) {
	ctx := context.Background()
	mTables := new(repoMocks.MockTableRepository)
	c := cache.NewMemoryCache()
	svc := newTestSchemaService(mTables, nil, c)
	require.NoError(t, c.SetJSON(ctx, cache.KeyTableStats, model.TableStats{}, 0))

	mTables.On("Exists", ctx, "members").Return(true, nil)
	mTables.On("InsertRow", ctx, "members", model.Row{"name": "Sari", "points": 0}).
		Return(model.Row{"id": "m-1", "name": "Sari", "points": 0}, nil)

	row, err := svc.InsertRow(ctx, "members", model.Row{"id": "", "name": "Sari", "points": 0})

	require.NoError(t, err)
	assert.Equal(t, "m-1", row["id"])
	assert.ErrorIs(t, c.GetJSON(ctx, cache.KeyTableStats, &model.TableStats{}), cache.ErrMiss)

	_, err = svc.InsertRow(ctx, "members", model.Row{"name": ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSchemaService_UpdateRow(t *testing.T) {
	ctx := context.Background()
	mTables := new(repoMocks.MockTableRepository)
	svc := newTestSchemaService(mTables, nil, nil)
	mTables.On("Exists", ctx, "members").Return(true, nil)
	mTables.On("UpdateRow", ctx, "members", "m-9", model.Row{"name": "x"}).Return(nil, sql.ErrNoRows)
	mTables.On("UpdateRow", ctx, "members", "m-1", model.Row{"id": "m-1"}).Return(nil, repository.ErrNoColumns)

	_, err := svc.UpdateRow(ctx, "members", "m-9", model.Row{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateRow(ctx, "members", "m-1", model.Row{"id": "m-1"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateRow(ctx, "members", "", model.Row{"name": "x"})
	assert.ErrorIs(t, err, ErrIDRequired)
}

func TestSchemaService_DeleteRow(t *testing.T) {
	ctx := context.Background()
	mTables := new(repoMocks.MockTableRepository)
	svc := newTestSchemaService(mTables, nil, nil)
	mTables.On("Exists", ctx, "members").Return(true, nil)
	mTables.On("DeleteRow", ctx, "members", "m-1").Return(nil)
	mTables.On("DeleteRow", ctx, "members", "m-9").Return(sql.ErrNoRows)

	assert.NoError(t, svc.DeleteRow(ctx, "members", "m-1"))
	assert.ErrorIs(t, svc.DeleteRow(ctx, "members", "m-9"), ErrNotFound)
}

func TestSchemaService_Export(t *testing.T) {
	ctx := context.Background()
	mTables := new(repoMocks.MockTableRepository)
	svc := newTestSchemaService(mTables, nil, nil)
	mTables.On("Exists", ctx, "members").Return(true, nil)
	mTables.On("Rows", ctx, "members", repository.RowQuery{}).Return([]model.Row{{"id": "m-1", "name": "Sari"}}, nil)

	f, err := svc.Export(ctx, "members", export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "members.csv", f.Name)
	assert.Equal(t, export.ContentTypeCSV, f.ContentType)
	assert.Equal(t, "id,name\nm-1,Sari\n", string(f.Data))

	_, err = svc.Export(ctx, "members", "pdf")
	assert.ErrorIs(t, err, ErrValidation)
}
