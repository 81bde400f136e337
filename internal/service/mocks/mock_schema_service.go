package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tenantconsole/internal/export"
	"tenantconsole/internal/model"
)

type MockSchemaService struct {
	mock.Mock
}

func (m *MockSchemaService) DataStats(ctx context.Context) (*model.DataStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DataStats), args.Error(1)
}

func (m *MockSchemaService) TableStats(ctx context.Context) (*model.TableStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TableStats), args.Error(1)
}

func (m *MockSchemaService) Columns(ctx context.Context, table string) ([]model.Column, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Column), args.Error(1)
}

func (m *MockSchemaService) Rows(ctx context.Context, table string, limit int) ([]model.Row, error) {
	args := m.Called(ctx, table, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Row), args.Error(1)
}

func (m *MockSchemaService) InsertRow(ctx context.Context, table string, row model.Row) (model.Row, error) {
	args := m.Called(ctx, table, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Row), args.Error(1)
}

func (m *MockSchemaService) UpdateRow(ctx context.Context, table, id string, row model.Row) (model.Row, error) {
	args := m.Called(ctx, table, id, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Row), args.Error(1)
}

func (m *MockSchemaService) DeleteRow(ctx context.Context, table, id string) error {
	args := m.Called(ctx, table, id)
	return args.Error(0)
}

func (m *MockSchemaService) Export(ctx context.Context, table, format string) (export.File, error) {
	args := m.Called(ctx, table, format)
	return args.Get(0).(export.File), args.Error(1)
}
