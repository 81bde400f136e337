package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"tenantconsole/internal/model"
	"tenantconsole/internal/service"
	"tenantconsole/internal/storage"
)

type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) List(ctx context.Context, clientID string) ([]model.BackupRecord, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BackupRecord), args.Error(1)
}

func (m *MockBackupService) Get(ctx context.Context, id string) (*model.BackupRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BackupRecord), args.Error(1)
}

func (m *MockBackupService) Create(ctx context.Context, opts model.BackupOptions) (*service.BackupResult, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BackupResult), args.Error(1)
}

func (m *MockBackupService) QuickBackup(ctx context.Context, table string, includeCloud, includeLocal bool) (*service.BackupResult, error) {
	args := m.Called(ctx, table, includeCloud, includeLocal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BackupResult), args.Error(1)
}

func (m *MockBackupService) Restore(ctx context.Context, id, confirm string) error {
	args := m.Called(ctx, id, confirm)
	return args.Error(0)
}

func (m *MockBackupService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackupService) PruneExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockBackupService) OpenArtifact(ctx context.Context, id, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, id, key)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockBackupService) ArtifactURL(ctx context.Context, id, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, id, key, expiry)
	return args.String(0), args.Error(1)
}
