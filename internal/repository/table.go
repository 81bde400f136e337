package repository

import (
	"context"

	"tenantconsole/internal/model"
)

// TableRepository gives schema-level access to arbitrary tables in the
// public schema. Callers must check Exists before passing a table name.
type TableRepository interface {
	Exists(ctx context.Context, table string) (bool, error)

	// Stats returns row and size estimates for every user table.
	Stats(ctx context.Context) ([]model.TableStat, error)

	Columns(ctx context.Context, table string) ([]model.Column, error)

	Rows(ctx context.Context, table string, q RowQuery) ([]model.Row, error)

	InsertRow(ctx context.Context, table string, row model.Row) (model.Row, error)

	// UpdateRow returns sql.ErrNoRows when no row has the given id.
	UpdateRow(ctx context.Context, table, id string, row model.Row) (model.Row, error)

	// DeleteRow returns sql.ErrNoRows when no row has the given id.
	DeleteRow(ctx context.Context, table, id string) error

	// DeleteOwned removes every row whose column equals ownerID.
	DeleteOwned(ctx context.Context, table, column, ownerID string) (int64, error)

	// Upsert writes rows, replacing rows that collide on the primary key.
	Upsert(ctx context.Context, table string, rows []model.Row) (int64, error)
}
