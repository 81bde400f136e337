package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tenantconsole/internal/model"
)

type MockOverviewService struct {
	mock.Mock
}

func (m *MockOverviewService) ClientStats(ctx context.Context) (*model.ClientStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientStats), args.Error(1)
}

func (m *MockOverviewService) RecentActivity(ctx context.Context) ([]model.ClientActivity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClientActivity), args.Error(1)
}
