package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
)

// TablePostgres is a PostgreSQL implementation of repository.TableRepository.
// Table and column names are always quoted with pgx.Identifier; values are
// shipped as a single JSON parameter and expanded with json_populate_record*,
// so the server applies each column's own type.
type TablePostgres struct {
	db *sql.DB
}

// NewTablePostgres creates a new TablePostgres repository.
func NewTablePostgres(db *sql.DB) *TablePostgres {
	return &TablePostgres{db: db}
}

var _ repository.TableRepository = (*TablePostgres)(nil)

const schemaName = "public"

func quoteTable(table string) string {
	return pgx.Identifier{schemaName, table}.Sanitize()
}

func quoteColumns(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = pgx.Identifier{c}.Sanitize()
	}
	return strings.Join(quoted, ", ")
}

// sortedKeys returns the keys of row in lexical order.
func sortedKeys(row model.Row) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func decodeRows(raw []byte) ([]model.Row, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	rows := make([]model.Row, 0)
	if err := dec.Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func decodeRow(raw []byte) (model.Row, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var row model.Row
	if err := dec.Decode(&row); err != nil {
		return nil, err
	}
	return row, nil
}

// Exists reports whether table is a base table in the public schema.
func (r *TablePostgres) Exists(ctx context.Context, table string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = $1 AND table_name = $2 AND table_type = 'BASE TABLE'
		)
	`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, schemaName, table).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Stats returns live row estimates and on-disk sizes per user table.
func (r *TablePostgres) Stats(ctx context.Context) ([]model.TableStat, error) {
	const q = `
		SELECT relname, n_live_tup, pg_total_relation_size(relid)
		FROM pg_stat_user_tables
		WHERE schemaname = $1
		ORDER BY relname
	`
	rows, err := r.db.QueryContext(ctx, q, schemaName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.TableStat, 0)
	for rows.Next() {
		var s model.TableStat
		if err := rows.Scan(&s.Name, &s.Rows, &s.Bytes); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// Columns lists the columns of table in ordinal order.
func (r *TablePostgres) Columns(ctx context.Context, table string) ([]model.Column, error) {
	const q = `
		SELECT c.column_name, c.data_type, c.is_nullable = 'YES', c.column_default,
			EXISTS (
				SELECT 1
				FROM information_schema.table_constraints tc
				JOIN information_schema.key_column_usage k
					ON k.constraint_name = tc.constraint_name AND k.table_schema = tc.table_schema
				WHERE tc.constraint_type = 'PRIMARY KEY'
					AND tc.table_schema = c.table_schema
					AND tc.table_name = c.table_name
					AND k.column_name = c.column_name
			)
		FROM information_schema.columns c
		WHERE c.table_schema = $1 AND c.table_name = $2
		ORDER BY c.ordinal_position
	`
	rows, err := r.db.QueryContext(ctx, q, schemaName, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Column, 0)
	for rows.Next() {
		var c model.Column
		if err := rows.Scan(&c.Name, &c.DataType, &c.Nullable, &c.Default, &c.IsPrimary); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// Rows reads rows of table as JSON objects.
func (r *TablePostgres) Rows(ctx context.Context, table string, rq repository.RowQuery) ([]model.Row, error) {
	var (
		where []string
		args  []any
	)
	if rq.OwnerColumn != "" && rq.OwnerID != "" {
		args = append(args, rq.OwnerID)
		where = append(where, fmt.Sprintf("%s = $%d", pgx.Identifier{rq.OwnerColumn}.Sanitize(), len(args)))
	}
	if rq.CreatedFrom != nil && rq.CreatedTo != nil {
		args = append(args, *rq.CreatedFrom, *rq.CreatedTo)
		where = append(where, fmt.Sprintf("created_at >= $%d AND created_at <= $%d", len(args)-1, len(args)))
	}

	inner := "SELECT * FROM " + quoteTable(table)
	if len(where) > 0 {
		inner += " WHERE " + strings.Join(where, " AND ")
	}
	if rq.Limit > 0 {
		inner += fmt.Sprintf(" LIMIT %d", rq.Limit)
	}
	q := "SELECT COALESCE(json_agg(t), '[]'::json) FROM (" + inner + ") t"

	var raw []byte
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&raw); err != nil {
		return nil, err
	}
	rows, err := decodeRows(raw)
	if err != nil {
		return nil, fmt.Errorf("decode rows of %s: %w", table, err)
	}
	return rows, nil
}

// InsertRow inserts one row built from the given columns and returns it as stored.
func (r *TablePostgres) InsertRow(ctx context.Context, table string, row model.Row) (model.Row, error) {
	cols := sortedKeys(row)
	if len(cols) == 0 {
		return nil, repository.ErrNoColumns
	}
	payload, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}

	ident := quoteTable(table)
	colList := quoteColumns(cols)
	q := fmt.Sprintf(
		"INSERT INTO %s AS r (%s) SELECT %s FROM json_populate_record(NULL::%s, $1::json) RETURNING to_json(r)",
		ident, colList, colList, ident)

	var raw []byte
	if err := r.db.QueryRowContext(ctx, q, string(payload)).Scan(&raw); err != nil {
		return nil, err
	}
	return decodeRow(raw)
}

// UpdateRow overwrites the given columns of the row with the given id.
func (r *TablePostgres) UpdateRow(ctx context.Context, table, id string, row model.Row) (model.Row, error) {
	var sets []string
	for _, c := range sortedKeys(row) {
		if c == "id" {
			continue
		}
		col := pgx.Identifier{c}.Sanitize()
		sets = append(sets, fmt.Sprintf("%s = s.%s", col, col))
	}
	if len(sets) == 0 {
		return nil, repository.ErrNoColumns
	}
	payload, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}

	ident := quoteTable(table)
	q := fmt.Sprintf(
		"UPDATE %s AS r SET %s FROM json_populate_record(NULL::%s, $1::json) AS s WHERE r.id::text = $2 RETURNING to_json(r)",
		ident, strings.Join(sets, ", "), ident)

	var raw []byte
	if err := r.db.QueryRowContext(ctx, q, string(payload), id).Scan(&raw); err != nil {
		return nil, err
	}
	return decodeRow(raw)
}

// DeleteRow removes the row with the given id.
func (r *TablePostgres) DeleteRow(ctx context.Context, table, id string) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE id::text = $1", quoteTable(table))
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// DeleteOwned removes every row of table owned by ownerID.
func (r *TablePostgres) DeleteOwned(ctx context.Context, table, column, ownerID string) (int64, error) {
	q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", quoteTable(table), pgx.Identifier{column}.Sanitize())
	res, err := r.db.ExecContext(ctx, q, ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Upsert writes rows in one statement. Keys that are not columns of table are
// ignored; rows colliding on the primary key are overwritten.
func (r *TablePostgres) Upsert(ctx context.Context, table string, rows []model.Row) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	columns, err := r.Columns(ctx, table)
	if err != nil {
		return 0, fmt.Errorf("columns of %s: %w", table, err)
	}

	known := make(map[string]bool, len(columns))
	var pk []string
	for _, c := range columns {
		known[c.Name] = true
		if c.IsPrimary {
			pk = append(pk, c.Name)
		}
	}
	present := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			if known[k] {
				present[k] = true
			}
		}
	}
	if len(present) == 0 {
		return 0, repository.ErrNoColumns
	}
	cols := make([]string, 0, len(present))
	for k := range present {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	payload, err := json.Marshal(rows)
	if err != nil {
		return 0, fmt.Errorf("encode rows: %w", err)
	}

	ident := quoteTable(table)
	colList := quoteColumns(cols)
	q := fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM json_populate_recordset(NULL::%s, $1::json)",
		ident, colList, colList, ident)

	if len(pk) > 0 {
		isPK := make(map[string]bool, len(pk))
		for _, c := range pk {
			isPK[c] = true
		}
		var sets []string
		for _, c := range cols {
			if isPK[c] {
				continue
			}
			col := pgx.Identifier{c}.Sanitize()
			sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
		if len(sets) == 0 {
			q += fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", quoteColumns(pk))
		} else {
			q += fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s", quoteColumns(pk), strings.Join(sets, ", "))
		}
	}

	res, err := r.db.ExecContext(ctx, q, string(payload))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
