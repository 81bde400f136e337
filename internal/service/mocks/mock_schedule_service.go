package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tenantconsole/internal/model"
	"tenantconsole/internal/service"
)

type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) Upsert(ctx context.Context, clientID string, in service.ScheduleInput) (*model.BackupSchedule, error) {
	args := m.Called(ctx, clientID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BackupSchedule), args.Error(1)
}

func (m *MockScheduleService) Get(ctx context.Context, clientID string) (*model.BackupSchedule, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BackupSchedule), args.Error(1)
}

func (m *MockScheduleService) List(ctx context.Context) ([]model.BackupSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BackupSchedule), args.Error(1)
}

func (m *MockScheduleService) Delete(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *MockScheduleService) RunDue(ctx context.Context) (service.RunSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.RunSummary), args.Error(1)
}
