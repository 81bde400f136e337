package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache implements Cache in process memory.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]cacheItem
	now  func() time.Time
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]cacheItem), now: time.Now}
}

func (mc *MemoryCache) GetJSON(ctx context.Context, key string, dest any) error {
	mc.mu.RLock()
	item, ok := mc.data[key]
	mc.mu.RUnlock()
	if !ok {
		return ErrMiss
	}
	if !item.expiresAt.IsZero() && mc.now().After(item.expiresAt) {
		mc.mu.Lock()
		delete(mc.data, key)
		mc.mu.Unlock()
		return ErrMiss
	}
	return json.Unmarshal(item.value, dest)
}

// SetJSON stores value; a zero ttl never expires.
func (mc *MemoryCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	item := cacheItem{value: data}
	if ttl > 0 {
		item.expiresAt = mc.now().Add(ttl)
	}
	mc.mu.Lock()
	mc.data[key] = item
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for _, k := range keys {
		delete(mc.data, k)
	}
	return nil
}

func (mc *MemoryCache) DeletePattern(ctx context.Context, pattern string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for k := range mc.data {
		if matchPattern(pattern, k) {
			delete(mc.data, k)
		}
	}
	return nil
}

func (mc *MemoryCache) Close() error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.data = make(map[string]cacheItem)
	return nil
}

func matchPattern(pattern, s string) bool {
	switch {
	case pattern == "*":
		return true
	case strings.HasSuffix(pattern, "*"):
		return strings.HasPrefix(s, pattern[:len(pattern)-1])
	case strings.HasPrefix(pattern, "*"):
		return strings.HasSuffix(s, pattern[1:])
	default:
		return pattern == s
	}
}
