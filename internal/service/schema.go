package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tenantconsole/internal/cache"
	"tenantconsole/internal/export"
	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
)

// Row listing bounds.
const (
	DefaultRowLimit = 100
	MaxRowLimit     = 100
)

// NoBackupsFound is reported as the last backup time when there are no backups.
const NoBackupsFound = "No backups found"

// SchemaService browses and edits arbitrary tables of the public schema.
type SchemaService interface {
	DataStats(ctx context.Context) (*model.DataStats, error)
	TableStats(ctx context.Context) (*model.TableStats, error)
	Columns(ctx context.Context, table string) ([]model.Column, error)
	// Rows returns up to limit rows; limit is clamped to 1..MaxRowLimit and
	// defaults to DefaultRowLimit.
	Rows(ctx context.Context, table string, limit int) ([]model.Row, error)
	InsertRow(ctx context.Context, table string, row model.Row) (model.Row, error)
	UpdateRow(ctx context.Context, table, id string, row model.Row) (model.Row, error)
	DeleteRow(ctx context.Context, table, id string) error
	// Export renders every row of table as xlsx, sql or csv.
	Export(ctx context.Context, table, format string) (export.File, error)
}

type schemaService struct {
	tables  repository.TableRepository
	backups repository.BackupRepository
	cache   cache.Cache
	ttl     time.Duration
	loc     *time.Location
	log     *zap.Logger
}

// NewSchemaService constructs a SchemaService. Backup times are reported in loc.
func NewSchemaService(tables repository.TableRepository, backups repository.BackupRepository, c cache.Cache, ttl time.Duration, loc *time.Location, log *zap.Logger) SchemaService {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &schemaService{tables: tables, backups: backups, cache: c, ttl: ttl, loc: loc, log: log}
}

func (s *schemaService) TableStats(ctx context.Context) (*model.TableStats, error) {
	var st model.TableStats
	if cached(ctx, s.cache, s.log, cache.KeyTableStats, &st) {
		return &st, nil
	}

	items, err := s.tables.Stats(ctx)
	if err != nil {
		return nil, err
	}
	st = model.TableStats{Tables: items, TableNames: make([]string, len(items))}
	for i, t := range items {
		st.TotalRows += t.Rows
		st.TotalSize += t.Bytes
		st.TableNames[i] = t.Name
	}

	store(ctx, s.cache, s.log, cache.KeyTableStats, st, s.ttl)
	return &st, nil
}

func (s *schemaService) DataStats(ctx context.Context) (*model.DataStats, error) {
	var ds model.DataStats
	if cached(ctx, s.cache, s.log, cache.KeyDataStats, &ds) {
		return &ds, nil
	}

	ts, err := s.TableStats(ctx)
	if err != nil {
		return nil, err
	}
	last, err := s.backups.LatestCreatedAt(ctx)
	if err != nil {
		return nil, err
	}
	ds = model.DataStats{
		TotalRecords: ts.TotalRows,
		StorageUsed:  ts.TotalSize,
		LastBackup:   NoBackupsFound,
		DataTypes:    ts.TableNames,
	}
	if last != nil {
		ds.LastBackup = last.In(s.loc).Format(time.RFC3339)
	}

	store(ctx, s.cache, s.log, cache.KeyDataStats, ds, s.ttl)
	return &ds, nil
}

func (s *schemaService) checkTable(ctx context.Context, table string) error {
	if table == "" {
		return invalid("table is required")
	}
	ok, err := s.tables.Exists(ctx, table)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidTable, table)
	}
	return nil
}

func (s *schemaService) Columns(ctx context.Context, table string) ([]model.Column, error) {
	if err := s.checkTable(ctx, table); err != nil {
		return nil, err
	}
	return s.tables.Columns(ctx, table)
}

func (s *schemaService) Rows(ctx context.Context, table string, limit int) ([]model.Row, error) {
	if err := s.checkTable(ctx, table); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRowLimit
	}
	if limit > MaxRowLimit {
		limit = MaxRowLimit
	}
	return s.tables.Rows(ctx, table, repository.RowQuery{Limit: limit})
}

// InsertRow drops empty string values so column defaults apply.
func (s *schemaService) InsertRow(ctx context.Context, table string, row model.Row) (model.Row, error) {
	if err := s.checkTable(ctx, table); err != nil {
		return nil, err
	}
	clean := make(model.Row, len(row))
	for k, v := range row {
		if str, ok := v.(string); ok && str == "" {
			continue
		}
		clean[k] = v
	}
	if len(clean) == 0 {
		return nil, invalid("row has no values")
	}
	out, err := s.tables.InsertRow(ctx, table, clean)
	if err != nil {
		return nil, noColumns(err)
	}
	invalidate(ctx, s.cache, s.log, "", cache.StatsKeys...)
	return out, nil
}

func (s *schemaService) UpdateRow(ctx context.Context, table, id string, row model.Row) (model.Row, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.checkTable(ctx, table); err != nil {
		return nil, err
	}
	out, err := s.tables.UpdateRow(ctx, table, id, row)
	if err != nil {
		return nil, noColumns(notFound(err))
	}
	return out, nil
}

func (s *schemaService) DeleteRow(ctx context.Context, table, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.checkTable(ctx, table); err != nil {
		return err
	}
	if err := s.tables.DeleteRow(ctx, table, id); err != nil {
		return notFound(err)
	}
	invalidate(ctx, s.cache, s.log, "", cache.StatsKeys...)
	return nil
}

func (s *schemaService) Export(ctx context.Context, table, format string) (export.File, error) {
	if err := s.checkTable(ctx, table); err != nil {
		return export.File{}, err
	}
	rows, err := s.tables.Rows(ctx, table, repository.RowQuery{})
	if err != nil {
		return export.File{}, err
	}
	f, err := export.Render(format, table, rows)
	if errors.Is(err, export.ErrUnknownFormat) {
		return export.File{}, invalid("format must be one of xlsx, sql, csv")
	}
	return f, err
}

func noColumns(err error) error {
	if errors.Is(err, repository.ErrNoColumns) {
		return invalid("row has no writable columns")
	}
	return err
}
