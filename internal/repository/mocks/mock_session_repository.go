package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"tenantconsole/internal/model"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, s *model.UserSession) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) IncrementActions(ctx context.Context, id string, now time.Time) error {
	args := m.Called(ctx, id, now)
	return args.Error(0)
}

func (m *MockSessionRepository) End(ctx context.Context, id string, now time.Time) error {
	args := m.Called(ctx, id, now)
	return args.Error(0)
}

func (m *MockSessionRepository) ListActive(ctx context.Context) ([]model.UserSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserSession), args.Error(1)
}

func (m *MockSessionRepository) DeactivateStale(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) Stats(ctx context.Context, since time.Time, highActivity int) (*model.SessionStats, error) {
	args := m.Called(ctx, since, highActivity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SessionStats), args.Error(1)
}

type MockOverviewRepository struct {
	mock.Mock
}

func (m *MockOverviewRepository) CountActivePlatformSessions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOverviewRepository) CountOpenTickets(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
