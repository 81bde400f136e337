package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"tenantconsole/internal/model"
)

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Upsert(ctx context.Context, s *model.BackupSchedule) (*model.BackupSchedule, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BackupSchedule), args.Error(1)
}

func (m *MockScheduleRepository) FindByClient(ctx context.Context, clientID string) (*model.BackupSchedule, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BackupSchedule), args.Error(1)
}

func (m *MockScheduleRepository) List(ctx context.Context) ([]model.BackupSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BackupSchedule), args.Error(1)
}

func (m *MockScheduleRepository) ListDue(ctx context.Context, now time.Time) ([]model.BackupSchedule, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BackupSchedule), args.Error(1)
}

func (m *MockScheduleRepository) MarkRun(ctx context.Context, id string, lastRun, nextRun time.Time) error {
	args := m.Called(ctx, id, lastRun, nextRun)
	return args.Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}
