package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tenantconsole/internal/cache"
	"tenantconsole/internal/export"
	"tenantconsole/internal/metrics"
	"tenantconsole/internal/model"
	"tenantconsole/internal/repository"
	"tenantconsole/internal/storage"
)

// BackupResult describes a finished backup. Record is nil when the backup
// was written to local storage only.
type BackupResult struct {
	Record    *model.BackupRecord `json:"record,omitempty"`
	Tables    []string            `json:"tables"`
	Folder    string              `json:"folder,omitempty"`
	FilePaths []string            `json:"file_paths"`
	Size      int64               `json:"backup_size"`
}

// BackupService defines the backup lifecycle.
type BackupService interface {
	// List returns backups newest first; an empty clientID lists all clients.
	List(ctx context.Context, clientID string) ([]model.BackupRecord, error)
	Get(ctx context.Context, id string) (*model.BackupRecord, error)
	Create(ctx context.Context, opts model.BackupOptions) (*BackupResult, error)
	// QuickBackup takes a full backup of a single table.
	QuickBackup(ctx context.Context, table string, includeCloud, includeLocal bool) (*BackupResult, error)
	// Restore writes the backed up rows back. confirm must equal the
	// backup's table_name.
	Restore(ctx context.Context, id, confirm string) error
	// Delete removes the backup's artifacts and then its record.
	Delete(ctx context.Context, id string) error
	// PruneExpired deletes backups whose retention has passed and returns how many were removed.
	PruneExpired(ctx context.Context) (int, error)
	// OpenArtifact streams one of the backup's files.
	OpenArtifact(ctx context.Context, id, key string) (io.ReadCloser, storage.ObjectInfo, error)
	// ArtifactURL returns a time-limited download link for one of the backup's files.
	ArtifactURL(ctx context.Context, id, key string, expiry time.Duration) (string, error)
}

// BackupDeps are the collaborators of the backup service.
type BackupDeps struct {
	Backups repository.BackupRepository
	Tables  repository.TableRepository
	// Local receives artifacts of local backups; nil disables them.
	Local storage.Storage
	// Mirror receives artifacts of cloud backups; nil disables mirroring.
	Mirror        storage.Storage
	Cache         cache.Cache
	CacheTTL      time.Duration
	Metrics       *metrics.Metrics
	Log           *zap.Logger
	DefaultTables []string
}

type backupService struct {
	BackupDeps
	now func() time.Time
}

// NewBackupService constructs a BackupService.
func NewBackupService(d BackupDeps) BackupService {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return &backupService{BackupDeps: d, now: time.Now}
}

const artifactUploadLimit = 4

func (s *backupService) List(ctx context.Context, clientID string) ([]model.BackupRecord, error) {
	key := cache.BackupsKey(clientID)
	var items []model.BackupRecord
	if cached(ctx, s.Cache, s.Log, key, &items) {
		return items, nil
	}

	items, err := s.Backups.List(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if err := ValidateBackupRecord(&items[i]); err != nil {
			return nil, err
		}
	}

	store(ctx, s.Cache, s.Log, key, items, s.CacheTTL)
	return items, nil
}

func (s *backupService) Get(ctx context.Context, id string) (*model.BackupRecord, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.Backups.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if err := ValidateBackupRecord(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ValidateBackupRecord checks the shape of a stored backup record.
func ValidateBackupRecord(b *model.BackupRecord) error {
	switch {
	case b == nil:
		return ErrInvalidBackupRecord
	case b.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidBackupRecord)
	case b.TableName == "":
		return fmt.Errorf("%w: missing table_name", ErrInvalidBackupRecord)
	case !slices.Contains([]string{model.BackupTypeFull, model.BackupTypeIncremental, model.BackupTypeDifferential}, b.BackupType):
		return fmt.Errorf("%w: invalid backup_type %q", ErrInvalidBackupRecord, b.BackupType)
	case !slices.Contains([]string{model.StatusInProgress, model.StatusCompleted, model.StatusFailed}, b.Status):
		return fmt.Errorf("%w: invalid status %q", ErrInvalidBackupRecord, b.Status)
	case b.BackupData == nil && b.Status != model.StatusFailed:
		return fmt.Errorf("%w: missing backup_data", ErrInvalidBackupRecord)
	case b.FilePaths == nil:
		return fmt.Errorf("%w: missing file_paths", ErrInvalidBackupRecord)
	case b.CreatedAt.IsZero():
		return fmt.Errorf("%w: missing created_at", ErrInvalidBackupRecord)
	}
	return nil
}

// tablesFor resolves the table set of a backup request and checks each
// table exists.
func (s *backupService) tablesFor(ctx context.Context, opts model.BackupOptions) ([]string, error) {
	var tables []string
	if opts.SelectAllTables {
		tables = slices.Clone(s.DefaultTables)
	} else {
		for _, t := range opts.Tables {
			t = strings.TrimSpace(t)
			if t != "" && !slices.Contains(tables, t) {
				tables = append(tables, t)
			}
		}
	}
	if len(tables) == 0 {
		return nil, invalid("no tables selected")
	}
	for _, t := range tables {
		ok, err := s.Tables.Exists(ctx, t)
		if err != nil {
			return tables, fmt.Errorf("check table %s: %w", t, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTable, t)
		}
	}
	return tables, nil
}

// ownerColumn is the column that ties a row of table to a client.
func ownerColumn(table string) string {
	if table == "profiles" {
		return "id"
	}
	return "user_id"
}

func (s *backupService) Create(ctx context.Context, opts model.BackupOptions) (res *BackupResult, err error) {
	ctx, span := startSpan(ctx, "backup.create",
		attribute.String("backup.type", opts.Type),
		attribute.String("backup.storage_type", opts.StorageType))
	defer func() { endSpan(span, err) }()

	if err := validateStruct(opts); err != nil {
		return nil, err
	}
	if opts.StorageType == "" {
		opts.StorageType = model.StorageCloud
	}
	tables, err := s.tablesFor(ctx, opts)
	if err != nil {
		if errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidTable) {
			return nil, err
		}
	} else {
		res, err = s.run(ctx, opts, tables)
	}
	if err != nil {
		s.recordFailure(ctx, opts, tables, err)
		s.Metrics.ObserveBackup(opts.Type, opts.StorageType, model.StatusFailed, 0)
		return nil, fmt.Errorf("create backup: %w", err)
	}

	invalidate(ctx, s.Cache, s.Log, cache.KeyBackupsPattern, cache.StatsKeys...)
	s.Metrics.ObserveBackup(opts.Type, opts.StorageType, model.StatusCompleted, res.Size)
	s.Log.Info("backup created",
		zap.Strings("tables", tables),
		zap.String("storage_type", opts.StorageType),
		zap.Int64("backup_size", res.Size),
		zap.Int("files", len(res.FilePaths)))
	return res, nil
}

func (s *backupService) run(ctx context.Context, opts model.BackupOptions, tables []string) (*BackupResult, error) {
	data := make(model.BackupData, len(tables))
	for _, t := range tables {
		rq := repository.RowQuery{}
		if opts.ClientID != "" {
			rq.OwnerColumn = ownerColumn(t)
			rq.OwnerID = opts.ClientID
		}
		if opts.DateRange.Complete() {
			rq.CreatedFrom = opts.DateRange.Start
			rq.CreatedTo = opts.DateRange.End
		}
		rows, err := s.Tables.Rows(ctx, t, rq)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", t, err)
		}
		data[t] = rows
	}
	size, err := data.Size()
	if err != nil {
		return nil, fmt.Errorf("encode backup data: %w", err)
	}

	now := s.now().UTC()
	res := &BackupResult{Tables: tables, Size: size, FilePaths: []string{}}

	var targets []storage.Storage
	if opts.IncludesLocal() && s.Local != nil {
		targets = append(targets, s.Local)
	}
	if opts.IncludesCloud() && s.Mirror != nil {
		targets = append(targets, s.Mirror)
	}
	if len(targets) > 0 {
		folder, paths, err := s.writeArtifacts(ctx, targets, tables, data, opts.Compression, now)
		if err != nil {
			s.Log.Warn("backup artifacts not written", zap.String("folder", folder), zap.Error(err))
		} else {
			res.Folder = folder
			res.FilePaths = paths
		}
	}

	if !opts.IncludesCloud() {
		return res, nil
	}

	rec := &model.BackupRecord{
		ID:          uuid.NewString(),
		CreatedBy:   clientRef(opts.ClientID),
		TableName:   strings.Join(tables, ","),
		BackupType:  opts.Type,
		StorageType: opts.StorageType,
		Status:      model.StatusCompleted,
		BackupData:  data,
		FilePaths:   res.FilePaths,
		BackupSize:  size,
		Description: opts.Description,
		Compression: opts.Compression,
		Encryption:  opts.Encryption,
		Priority:    opts.PriorityOrDefault(),
		CreatedAt:   now,
		CompletedAt: &now,
	}
	if opts.RetentionDays > 0 {
		exp := now.AddDate(0, 0, opts.RetentionDays)
		rec.ExpiresAt = &exp
	}
	stored, err := s.Backups.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("save backup record: %w", err)
	}
	if err := ValidateBackupRecord(stored); err != nil {
		return nil, err
	}
	res.Record = stored
	return res, nil
}

func clientRef(clientID string) *string {
	if clientID == "" {
		return nil
	}
	return &clientID
}

// folderFor names the artifact folder after the table for single-table
// backups and "tables" otherwise.
func folderFor(tables []string, t time.Time) string {
	name := "tables"
	if len(tables) == 1 {
		name = tables[0]
	}
	return export.FolderName(name, t)
}

// writeArtifacts renders an Excel workbook and SQL dump per table and puts
// them into every target. With compress the folder is uploaded as one zip.
// Local storage failures do not fail the backup; they are returned to the
// caller for logging.
func (s *backupService) writeArtifacts(ctx context.Context, targets []storage.Storage, tables []string, data model.BackupData, compress bool, now time.Time) (string, []string, error) {
	folder := folderFor(tables, now)

	var files []export.File
	for _, t := range tables {
		tf, err := export.TableArtifacts(t, data[t])
		if err != nil {
			return folder, nil, err
		}
		files = append(files, tf...)
	}

	var objects []export.File
	if compress {
		zipped, err := export.Zip(folder, files)
		if err != nil {
			return folder, nil, err
		}
		objects = []export.File{{Name: folder + ".zip", ContentType: export.ContentTypeZip, Data: zipped}}
	} else {
		for _, f := range files {
			f.Name = path.Join(folder, f.Name)
			objects = append(objects, f)
		}
	}

	var errs []error
	for _, target := range targets {
		if err := putAll(ctx, target, objects); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == len(targets) {
		return folder, nil, errors.Join(errs...)
	}
	if len(errs) > 0 {
		s.Log.Warn("artifact upload partially failed", zap.String("folder", folder), zap.Error(errors.Join(errs...)))
	}

	paths := make([]string, len(objects))
	for i, o := range objects {
		paths[i] = o.Name
	}
	return folder, paths, nil
}

func putAll(ctx context.Context, target storage.Storage, objects []export.File) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(artifactUploadLimit)
	for _, o := range objects {
		g.Go(func() error {
			_, err := target.Put(gctx, o.Name, bytes.NewReader(o.Data), storage.PutObjectOptions{
				Size:        int64(len(o.Data)),
				ContentType: o.ContentType,
			})
			if err != nil {
				return fmt.Errorf("put %s: %w", o.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// recordFailure stores a failed backup row when the request included cloud storage.
func (s *backupService) recordFailure(ctx context.Context, opts model.BackupOptions, tables []string, cause error) {
	s.Log.Error("backup failed", zap.Strings("tables", tables), zap.Error(cause))
	if !opts.IncludesCloud() {
		return
	}
	msg := cause.Error()
	_, err := s.Backups.Create(ctx, &model.BackupRecord{
		ID:           uuid.NewString(),
		CreatedBy:    clientRef(opts.ClientID),
		TableName:    strings.Join(tables, ","),
		BackupType:   opts.Type,
		StorageType:  opts.StorageType,
		Status:       model.StatusFailed,
		FilePaths:    []string{},
		Description:  opts.Description,
		Compression:  opts.Compression,
		Encryption:   opts.Encryption,
		Priority:     opts.PriorityOrDefault(),
		ErrorMessage: &msg,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		s.Log.Error("failed backup not recorded", zap.Error(err))
		return
	}
	invalidate(ctx, s.Cache, s.Log, cache.KeyBackupsPattern)
}

func (s *backupService) QuickBackup(ctx context.Context, table string, includeCloud, includeLocal bool) (*BackupResult, error) {
	if table == "" {
		return nil, invalid("table is required")
	}
	if !includeCloud && !includeLocal {
		return nil, invalid("select cloud or local storage")
	}
	return s.Create(ctx, model.BackupOptions{
		Tables:      []string{table},
		Type:        model.BackupTypeFull,
		StorageType: model.StorageTypeFor(includeCloud, includeLocal),
	})
}

// restoreOrder lists the tables of a backup in the order they were backed
// up, followed by any other keys of backup_data in lexical order.
func restoreOrder(rec *model.BackupRecord) []string {
	var order []string
	for _, t := range strings.Split(rec.TableName, ",") {
		if _, ok := rec.BackupData[t]; ok && !slices.Contains(order, t) {
			order = append(order, t)
		}
	}
	var rest []string
	for t := range rec.BackupData {
		if !slices.Contains(order, t) {
			rest = append(rest, t)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func (s *backupService) Restore(ctx context.Context, id, confirm string) (err error) {
	ctx, span := startSpan(ctx, "backup.restore", attribute.String("backup.id", id))
	defer func() { endSpan(span, err) }()

	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if confirm != rec.TableName {
		return ErrConfirmationMismatch
	}
	if rec.Status != model.StatusCompleted {
		return invalid("backup status is %s", rec.Status)
	}

	started := s.now().UTC()
	err = s.Backups.SetRestoreStatus(ctx, id, model.StatusInProgress, &started, nil)
	if err == nil {
		err = s.restoreTables(ctx, rec)
	}
	if err == nil {
		err = s.Backups.SetRestoreStatus(ctx, id, model.StatusCompleted, nil, nil)
	}
	if err != nil {
		msg := err.Error()
		if ferr := s.Backups.SetRestoreStatus(ctx, id, model.StatusFailed, nil, &msg); ferr != nil {
			s.Log.Error("restore failure not recorded", zap.String("backup_id", id), zap.Error(ferr))
		}
		s.Metrics.ObserveRestore(model.StatusFailed)
		invalidate(ctx, s.Cache, s.Log, cache.KeyBackupsPattern)
		return err
	}

	s.Metrics.ObserveRestore(model.StatusCompleted)
	invalidate(ctx, s.Cache, s.Log, cache.KeyBackupsPattern, cache.StatsKeys...)
	s.Log.Info("backup restored", zap.String("backup_id", id), zap.Duration("took", s.now().UTC().Sub(started)))
	return nil
}

// restoreTables upserts each table's rows. For a full client backup the
// client's current rows are deleted first; profiles rows are only upserted.
func (s *backupService) restoreTables(ctx context.Context, rec *model.BackupRecord) error {
	owner := ""
	if rec.CreatedBy != nil {
		owner = *rec.CreatedBy
	}
	for _, table := range restoreOrder(rec) {
		rows := rec.BackupData[table]
		if len(rows) == 0 {
			continue
		}
		if rec.BackupType == model.BackupTypeFull && owner != "" && ownerColumn(table) != "id" {
			if _, err := s.Tables.DeleteOwned(ctx, table, ownerColumn(table), owner); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		if _, err := s.Tables.Upsert(ctx, table, rows); err != nil {
			return fmt.Errorf("restore %s: %w", table, err)
		}
	}
	return nil
}

func (s *backupService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	rec, err := s.Backups.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	for _, key := range rec.FilePaths {
		for _, target := range []storage.Storage{s.Local, s.Mirror} {
			if target == nil {
				continue
			}
			if err := target.Delete(ctx, key); err != nil {
				s.Log.Warn("artifact not deleted", zap.String("backup_id", id), zap.String("key", key), zap.Error(err))
			}
		}
	}
	if err := s.Backups.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	invalidate(ctx, s.Cache, s.Log, cache.KeyBackupsPattern, cache.StatsKeys...)
	return nil
}

func (s *backupService) PruneExpired(ctx context.Context) (int, error) {
	expired, err := s.Backups.ListExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, err
	}
	var n int
	for _, b := range expired {
		if err := s.Delete(ctx, b.ID); err != nil {
			s.Log.Warn("expired backup not deleted", zap.String("backup_id", b.ID), zap.Error(err))
			continue
		}
		n++
	}
	s.Metrics.AddPruned(n)
	return n, nil
}

func (s *backupService) artifactOf(ctx context.Context, id, key string) error {
	rec, err := s.Backups.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if !slices.Contains(rec.FilePaths, key) {
		return ErrNotFound
	}
	return nil
}

func (s *backupService) OpenArtifact(ctx context.Context, id, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	if id == "" {
		return nil, storage.ObjectInfo{}, ErrIDRequired
	}
	if err := s.artifactOf(ctx, id, key); err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	for _, target := range []storage.Storage{s.Local, s.Mirror} {
		if target == nil {
			continue
		}
		rc, info, err := target.Get(ctx, key)
		if errors.Is(err, storage.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return nil, storage.ObjectInfo{}, err
		}
		if info.ContentType == "" {
			info.ContentType = contentTypeOf(key)
		}
		return rc, info, nil
	}
	return nil, storage.ObjectInfo{}, ErrNotFound
}

func (s *backupService) ArtifactURL(ctx context.Context, id, key string, expiry time.Duration) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	if err := s.artifactOf(ctx, id, key); err != nil {
		return "", err
	}
	for _, target := range []storage.Storage{s.Mirror, s.Local} {
		if target != nil {
			return target.PresignGet(ctx, key, expiry)
		}
	}
	return "", ErrNotFound
}

func contentTypeOf(key string) string {
	switch path.Ext(key) {
	case ".xlsx":
		return export.ContentTypeXLSX
	case ".sql":
		return export.ContentTypeSQL
	case ".zip":
		return export.ContentTypeZip
	case ".csv":
		return export.ContentTypeCSV
	default:
		return "application/octet-stream"
	}
}
