package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
)

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Exists(ctx context.Context, table string) (bool, error) {
	args := m.Called(ctx, table)
	return args.Bool(0), args.Error(1)
}

func (m *MockTableRepository) Stats(ctx context.Context) ([]model.TableStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TableStat), args.Error(1)
}

func (m *MockTableRepository) Columns(ctx context.Context, table string) ([]model.Column, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Column), args.Error(1)
}

func (m *MockTableRepository) Rows(ctx context.Context, table string, q repository.RowQuery) ([]model.Row, error) {
	args := m.Called(ctx, table, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Row), args.Error(1)
}

func (m *MockTableRepository) InsertRow(ctx context.Context, table string, row model.Row) (model.Row, error) {
	args := m.Called(ctx, table, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Row), args.Error(1)
}

func (m *MockTableRepository) UpdateRow(ctx context.Context, table, id string, row model.Row) (model.Row, error) {
	args := m.Called(ctx, table, id, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Row), args.Error(1)
}

func (m *MockTableRepository) DeleteRow(ctx context.Context, table, id string) error {
	args := m.Called(ctx, table, id)
	return args.Error(0)
}

func (m *MockTableRepository) DeleteOwned(ctx context.Context, table, column, ownerID string) (int64, error) {
	args := m.Called(ctx, table, column, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTableRepository) Upsert(ctx context.Context, table string, rows []model.Row) (int64, error) {
	args := m.Called(ctx, table, rows)
	return args.Get(0).(int64), args.Error(1)
}
