package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is owned by this service; the platform tables may already exist.
const sentinelTable = "public.backup_schedules"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS profiles (
  id                UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  full_name         TEXT        NOT NULL DEFAULT '',
  username          TEXT        NOT NULL DEFAULT '',
  avatar_url        TEXT,
  email             TEXT        NOT NULL DEFAULT '',
  phone_number      TEXT,
  whatsapp_number   TEXT,
  role              TEXT        NOT NULL DEFAULT 'stylist',
  is_active         BOOLEAN     NOT NULL DEFAULT true,
  last_active       TIMESTAMPTZ,
  salon_name        TEXT,
  subscription_plan TEXT,
  monthly_revenue   NUMERIC,
  client_id         UUID,
  settings          JSONB,
  metadata          JSONB,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_backups",
		SQL: `CREATE TABLE IF NOT EXISTS backups (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  created_by         UUID,
  table_name         TEXT        NOT NULL,
  backup_type        TEXT        NOT NULL CHECK (backup_type IN ('full', 'incremental', 'differential')),
  storage_type       TEXT        NOT NULL DEFAULT 'cloud' CHECK (storage_type IN ('cloud', 'local', 'both')),
  status             TEXT        NOT NULL CHECK (status IN ('in_progress', 'completed', 'failed')),
  backup_data        JSONB,
  file_paths         TEXT[]      NOT NULL DEFAULT '{}',
  backup_size        BIGINT      NOT NULL DEFAULT 0 CHECK (backup_size >= 0),
  description        TEXT        NOT NULL DEFAULT '',
  error_message      TEXT,
  restore_status     TEXT        CHECK (restore_status IN ('in_progress', 'completed', 'failed')),
  restore_started_at TIMESTAMPTZ,
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
  completed_at       TIMESTAMPTZ,
  expires_at         TIMESTAMPTZ
);`,
	},
	{
		Name: "alter_table_backups_request_options",
		SQL: `ALTER TABLE backups
  ADD COLUMN IF NOT EXISTS compression BOOLEAN NOT NULL DEFAULT false,
  ADD COLUMN IF NOT EXISTS encryption  BOOLEAN NOT NULL DEFAULT false,
  ADD COLUMN IF NOT EXISTS priority    TEXT    NOT NULL DEFAULT 'normal';`,
	},
	{
		Name: "create_index_backups_created_by",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_backups_created_by ON backups (created_by);`,
	},
	{
		Name: "create_index_backups_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_backups_created_at ON backups (created_at);`,
	},
	{
		Name: "create_table_backup_schedules",
		SQL: `CREATE TABLE IF NOT EXISTS backup_schedules (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  client_id      UUID        NOT NULL UNIQUE,
  frequency      TEXT        NOT NULL CHECK (frequency IN ('daily', 'weekly', 'monthly')),
  time_of_day    TEXT        NOT NULL DEFAULT '00:00',
  backup_options JSONB       NOT NULL DEFAULT '{}',
  next_run       TIMESTAMPTZ NOT NULL,
  last_run       TIMESTAMPTZ,
  active         BOOLEAN     NOT NULL DEFAULT true,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_backup_schedules_next_run",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_backup_schedules_next_run ON backup_schedules (next_run) WHERE active;`,
	},
	{
		Name: "create_table_user_sessions",
		SQL: `CREATE TABLE IF NOT EXISTS user_sessions (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id       UUID        NOT NULL,
  profile_id    UUID        NOT NULL,
  device_info   JSONB       NOT NULL DEFAULT '{}',
  ip_address    TEXT        NOT NULL DEFAULT '',
  location      JSONB,
  is_active     BOOLEAN     NOT NULL DEFAULT true,
  actions_count INTEGER     NOT NULL DEFAULT 0,
  started_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  last_active   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_support_tickets",
		SQL: `CREATE TABLE IF NOT EXISTS support_tickets (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID,
  subject    TEXT        NOT NULL DEFAULT '',
  status     TEXT        NOT NULL DEFAULT 'open',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_active_sessions",
		SQL: `CREATE TABLE IF NOT EXISTS active_sessions (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID,
  is_active  BOOLEAN     NOT NULL DEFAULT true,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks if the sentinel table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass($1) IS NOT NULL"
	if err := db.QueryRowContext(ctx, query, sentinelTable).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("detail", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
