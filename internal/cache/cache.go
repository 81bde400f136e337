// Package cache stores short-lived read models (backup lists, overview
// statistics) in Redis, or in process memory when Redis is not configured.
package cache

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tenantconsole/internal/config"
)

// ErrMiss is returned by GetJSON when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache defines the operations the services rely on.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePattern removes keys matching a glob with a single trailing or
	// leading '*'.
	DeletePattern(ctx context.Context, pattern string) error
	Close() error
}

// Cache keys.
const (
	KeyBackupsPattern = "backups:*"
	KeyClientStats    = "stats:clients"
	KeyRecentActivity = "stats:activity"
	KeyDataStats      = "stats:data"
	KeyTableStats     = "stats:tables"
)

// BackupsKey is the key of a cached backup list; an empty clientID means all clients.
func BackupsKey(clientID string) string {
	if clientID == "" {
		return "backups:all"
	}
	return "backups:" + clientID
}

// StatsKeys are invalidated whenever backups or table data change.
var StatsKeys = []string{KeyDataStats, KeyTableStats}

// New returns a Redis cache when cfg.Addr is set and reachable, and the
// in-memory cache otherwise.
func New(cfg config.RedisConfig, log *zap.Logger) Cache {
	if cfg.Addr == "" {
		log.Info("cache", zap.String("backend", "memory"))
		return NewMemoryCache()
	}
	rc, err := NewRedisCache(cfg)
	if err != nil {
		log.Warn("redis unavailable, using memory cache", zap.String("addr", cfg.Addr), zap.Error(err))
		return NewMemoryCache()
	}
	log.Info("cache", zap.String("backend", "redis"), zap.String("addr", cfg.Addr))
	return rc
}
