package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"tenantconsole/internal/model"
)

type MockBackupRepository struct {
	mock.Mock
}

func (m *MockBackupRepository) Create(ctx context.Context, b *model.BackupRecord) (*model.BackupRecord, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BackupRecord), args.Error(1)
}

func (m *MockBackupRepository) FindByID(ctx context.Context, id string) (*model.BackupRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BackupRecord), args.Error(1)
}

func (m *MockBackupRepository) List(ctx context.Context, clientID string) ([]model.BackupRecord, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BackupRecord), args.Error(1)
}

func (m *MockBackupRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackupRepository) SetRestoreStatus(ctx context.Context, id, status string, startedAt *time.Time, errMsg *string) error {
	args := m.Called(ctx, id, status, startedAt, errMsg)
	return args.Error(0)
}

func (m *MockBackupRepository) LatestCreatedAt(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockBackupRepository) ListExpired(ctx context.Context, now time.Time) ([]model.BackupRecord, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BackupRecord), args.Error(1)
}
