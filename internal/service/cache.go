package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tenantconsole/internal/cache"
)

// cached reads key into dest. Cache failures other than a miss are logged
// and treated as a miss.
func cached(ctx context.Context, c cache.Cache, log *zap.Logger, key string, dest any) bool {
	if c == nil {
		return false
	}
	err := c.GetJSON(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	return false
}

func store(ctx context.Context, c cache.Cache, log *zap.Logger, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}
	if err := c.SetJSON(ctx, key, value, ttl); err != nil {
		log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func invalidate(ctx context.Context, c cache.Cache, log *zap.Logger, pattern string, keys ...string) {
	if c == nil {
		return
	}
	if pattern != "" {
		if err := c.DeletePattern(ctx, pattern); err != nil {
			log.Warn("cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
		}
	}
	if len(keys) > 0 {
		if err := c.Delete(ctx, keys...); err != nil {
			log.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
		}
	}
}
