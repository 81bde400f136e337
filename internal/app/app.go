// Package app wires configuration, storage and services into the object
// graph shared by the API server and the console CLI.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"tenantconsole/internal/cache"
	"tenantconsole/internal/config"
	"tenantconsole/internal/database"
	"tenantconsole/internal/database/migration"
	"tenantconsole/internal/metrics"
	"tenantconsole/internal/repository/postgres"
	"tenantconsole/internal/scheduler"
	"tenantconsole/internal/service"
	"tenantconsole/internal/storage"
)

// Services groups the console services. Its layout matches handler.Services.
type Services struct {
	Profiles  service.ProfileService
	Overview  service.OverviewService
	Backups   service.BackupService
	Schedules service.ScheduleService
	Schema    service.SchemaService
	Sessions  service.SessionService
}

// App owns the long-lived resources of a process.
type App struct {
	Config   *config.AppConfig
	Log      *zap.Logger
	DB       *sql.DB
	Cache    cache.Cache
	Metrics  *metrics.Metrics
	Services Services
}

// Options tune New for the calling process.
type Options struct {
	// Registry receives the backup collectors; nil skips metrics.
	Registry prometheus.Registerer
	// SkipMigrations leaves the schema untouched.
	SkipMigrations bool
}

// New connects to PostgreSQL, applies migrations and builds the services.
// The MinIO mirror is optional: a failing endpoint is logged and skipped.
func New(ctx context.Context, cfg *config.AppConfig, log *zap.Logger, opts Options) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	loc := cfg.Location()

	db, err := database.NewPostgres(ctx, cfg.Database, log.Named("database"))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if !opts.SkipMigrations {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	local, err := storage.NewLocalStorage(cfg.Backup.LocalDir, log.Named("local_storage"))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	var mirror storage.Storage
	if cfg.MinIO.Endpoint != "" {
		m, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Warn("object storage unavailable, cloud artifacts disabled",
				zap.String("endpoint", cfg.MinIO.Endpoint), zap.Error(err))
		} else {
			mirror = m
		}
	}

	var m *metrics.Metrics
	if opts.Registry != nil {
		if m, err = metrics.New(opts.Registry); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	c := cache.New(cfg.Redis, log)
	ttl := cfg.Redis.TTL

	profileRepo := postgres.NewProfilePostgres(db)
	backupRepo := postgres.NewBackupPostgres(db)
	tableRepo := postgres.NewTablePostgres(db)
	scheduleRepo := postgres.NewSchedulePostgres(db)
	sessionRepo := postgres.NewSessionPostgres(db)

	backups := service.NewBackupService(service.BackupDeps{
		Backups:       backupRepo,
		Tables:        tableRepo,
		Local:         local,
		Mirror:        mirror,
		Cache:         c,
		CacheTTL:      ttl,
		Metrics:       m,
		Log:           log.Named("backup"),
		DefaultTables: cfg.Backup.DefaultTables,
	})

	return &App{
		Config:  cfg,
		Log:     log,
		DB:      db,
		Cache:   c,
		Metrics: m,
		Services: Services{
			Profiles:  service.NewProfileService(profileRepo, loc, c, log.Named("profiles")),
			Overview:  service.NewOverviewService(profileRepo, sessionRepo, c, ttl, log.Named("overview")),
			Backups:   backups,
			Schedules: service.NewScheduleService(scheduleRepo, backups, m, loc, log.Named("schedule")),
			Schema:    service.NewSchemaService(tableRepo, backupRepo, c, ttl, loc, log.Named("schema")),
			Sessions:  service.NewSessionService(sessionRepo),
		},
	}, nil
}

// Scheduler builds the background job runner from the schedule config.
func (a *App) Scheduler() (*scheduler.Scheduler, error) {
	return scheduler.New(a.Config.Schedule.Spec, scheduler.Jobs{
		Schedules: a.Services.Schedules,
		Backups:   a.Services.Backups,
		Sessions:  a.Services.Sessions,
	}, a.Config.Location(), a.Log.Named("scheduler"))
}

// Close releases the cache and the database pool.
func (a *App) Close() error {
	return errors.Join(a.Cache.Close(), a.DB.Close())
}
