package database

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantconsole/internal/config"
	"tenantconsole/internal/logging"
)

func TestBuildPostgresDSN(t *testing.T) {
	base := config.DatabaseConfig{Host: "db", Port: "5432", User: "console", Name: "salon"}

	tests := []struct {
		name    string
		mutate  func(c *config.DatabaseConfig)
		want    string
		wantErr string
	}{
		{
			name: "minimal",
			want: "postgres://console@db:5432/salon",
		},
		{
			name: "password and runtime parameters",
			mutate: func(c *config.DatabaseConfig) {
				c.Password = "p@ss word"
				c.SSLMode = "require"
				c.ApplicationName = "tenantconsole"
				c.StatementTimeout = 30 * time.Second
			},
			want: "postgres://console:p%40ss%20word@db:5432/salon?application_name=tenantconsole&sslmode=require&statement_timeout=30000",
		},
		{
			name:   "ipv6 host",
			mutate: func(c *config.DatabaseConfig) { c.Host = "::1" },
			want:   "postgres://console@[::1]:5432/salon",
		},
		{
			name:    "missing fields are listed",
			mutate:  func(c *config.DatabaseConfig) { c.Host, c.Name = "", "" },
			wantErr: "missing host, name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			if tt.mutate != nil {
				tt.mutate(&c)
			}
			got, err := BuildPostgresDSN(c)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func stubOpen(t *testing.T, db *sql.DB, err error) {
	t.Helper()
	orig := sqlOpen
	sqlOpen = func(driverName, dataSourceName string) (*sql.DB, error) {
		return db, err
	}
	t.Cleanup(func() { sqlOpen = orig })
}

func TestNewPostgres(t *testing.T) {
	ctx := context.Background()
	conf := config.DatabaseConfig{
		Host:               "localhost",
		Port:               "5432",
		User:               "user",
		Password:           "pass",
		Name:               "salon",
		MaxOpenConns:       10,
		MaxIdleConns:       5,
		ConnMaxLifetimeSec: 300,
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		stubOpen(t, db, nil)
		mock.ExpectPing()

		gotDB, err := NewPostgres(ctx, conf, nil)

		require.NoError(t, err)
		assert.Equal(t, 10, gotDB.Stats().MaxOpenConnections)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sqlOpen error", func(t *testing.T) {
		stubOpen(t, nil, errors.New("open error"))

		gotDB, err := NewPostgres(ctx, conf, nil)

		assert.EqualError(t, err, "sql open: open error")
		assert.Nil(t, gotDB)
	})

	t.Run("ping error", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		stubOpen(t, db, nil)
		mock.ExpectPing().WillReturnError(errors.New("ping failed"))

		gotDB, err := NewPostgres(ctx, conf, nil)

		assert.ErrorContains(t, err, "db ping: ping failed")
		assert.Nil(t, gotDB)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ping retried until success", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		stubOpen(t, db, nil)

		var buf bytes.Buffer
		retryConf := conf
		retryConf.ConnectRetries = 2
		mock.ExpectPing().WillReturnError(errors.New("starting up"))
		mock.ExpectPing()

		gotDB, err := NewPostgres(ctx, retryConf, logging.New(&buf, time.UTC, "info"))

		require.NoError(t, err)
		assert.NotNil(t, gotDB)
		assert.Contains(t, buf.String(), `"msg":"database not ready"`)
		assert.Contains(t, buf.String(), `"msg":"database connected"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		stubOpen(t, db, nil)
		mock.ExpectPing().WillReturnError(errors.New("starting up"))

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		retryConf := conf
		retryConf.ConnectRetries = 5

		_, err = NewPostgres(cctx, retryConf, nil)

		assert.Error(t, err)
	})

	t.Run("invalid DSN", func(t *testing.T) {
		gotDB, err := NewPostgres(ctx, config.DatabaseConfig{}, nil)
		assert.Error(t, err)
		assert.Nil(t, gotDB)
	})
}

func TestRegisterPoolMetrics(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	reg := prometheus.NewRegistry()

	require.NoError(t, RegisterPoolMetrics(reg, db, "tenantconsole"))
	assert.Positive(t, testutil.CollectAndCount(reg, "go_sql_max_open_connections"))
	assert.Error(t, RegisterPoolMetrics(reg, db, "tenantconsole"))
}
