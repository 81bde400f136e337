package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tenantconsole/internal/config"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "stats:clients", map[string]int{"total": 3}, time.Minute))

	var got map[string]int
	require.NoError(t, c.GetJSON(ctx, "stats:clients", &got))
	assert.Equal(t, 3, got["total"])

	assert.ErrorIs(t, c.GetJSON(ctx, "missing", &got), ErrMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", 1, time.Second))
	now = now.Add(2 * time.Second)

	var v int
	assert.ErrorIs(t, c.GetJSON(ctx, "k", &v), ErrMiss)
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	for _, k := range []string{BackupsKey(""), BackupsKey("c-1"), KeyDataStats} {
		require.NoError(t, c.SetJSON(ctx, k, true, 0))
	}

	require.NoError(t, c.DeletePattern(ctx, KeyBackupsPattern))

	var v bool
	assert.ErrorIs(t, c.GetJSON(ctx, "backups:all", &v), ErrMiss)
	assert.ErrorIs(t, c.GetJSON(ctx, "backups:c-1", &v), ErrMiss)
	assert.NoError(t, c.GetJSON(ctx, KeyDataStats, &v))

	require.NoError(t, c.Delete(ctx, StatsKeys...))
	assert.ErrorIs(t, c.GetJSON(ctx, KeyDataStats, &v), ErrMiss)
}

func TestMatchPattern(t *testing.T) {
	assert.True(t, matchPattern("*", "x"))
	assert.True(t, matchPattern("backups:*", "backups:all"))
	assert.True(t, matchPattern("*:all", "backups:all"))
	assert.False(t, matchPattern("stats:*", "backups:all"))
	assert.True(t, matchPattern("exact", "exact"))
}

func TestBackupsKey(t *testing.T) {
	assert.Equal(t, "backups:all", BackupsKey(""))
	assert.Equal(t, "backups:c-1", BackupsKey("c-1"))
}

func TestNew_FallsBackToMemory(t *testing.T) {
	log := zap.NewNop()

	_, ok := New(config.RedisConfig{}, log).(*MemoryCache)
	assert.True(t, ok)

	_, ok = New(config.RedisConfig{Addr: "127.0.0.1:1"}, log).(*MemoryCache)
	assert.True(t, ok)
}
