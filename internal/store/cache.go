package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const defaultCachePrefix = "content:query:"

// Cache stores encoded query results.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cached decorates a Client with a result cache. Failed queries are never cached and
// every hit decodes a fresh copy, so callers may mutate what they receive.
type Cached struct {
	next   Client
	cache  Cache
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

// CachedOption customises Cached.
type CachedOption func(*Cached)

// WithCachePrefix overrides the key prefix.
func WithCachePrefix(prefix string) CachedOption {
	return func(c *Cached) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithCacheLogger attaches a logger for cache backend failures.
func WithCacheLogger(logger *zap.Logger) CachedOption {
	return func(c *Cached) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCached wraps next with cache.
func NewCached(next Client, cache Cache, ttl time.Duration, opts ...CachedOption) *Cached {
	c := &Cached{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		prefix: defaultCachePrefix,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Key returns the cache key for q.
func (c *Cached) Key(q Query) string {
	sum := sha256.Sum256([]byte(q.GROQ()))
	return c.prefix + hex.EncodeToString(sum[:])
}

// Query implements Client.
func (c *Cached) Query(ctx context.Context, q Query) ([]Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	key := c.Key(q)

	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("store cache get failed", zap.String("type", q.Type), zap.Error(err))
	}
	if ok {
		var docs []Document
		if err := json.Unmarshal(raw, &docs); err == nil {
			return docs, nil
		}
		c.logger.Warn("store cache entry undecodable", zap.String("type", q.Type))
	}

	docs, err := c.next.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("store: encode cache entry: %w", err)
	}
	if err := c.cache.Set(ctx, key, encoded, c.ttl); err != nil {
		c.logger.Warn("store cache set failed", zap.String("type", q.Type), zap.Error(err))
	}

	var fresh []Document
	if err := json.Unmarshal(encoded, &fresh); err != nil {
		return nil, fmt.Errorf("store: decode cache entry: %w", err)
	}
	return fresh, nil
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// MemoryCache is a process-local TTL cache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache constructs an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get implements Cache.
func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expires.IsZero() && !m.now().Before(entry.expires) {
		m.mu.Lock()
		if current, still := m.entries[key]; still && current.expires.Equal(entry.expires) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	return append([]byte(nil), entry.value...), true, nil
}

// Set implements Cache. A non-positive ttl keeps the entry until overwritten.
func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expires = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// RedisCache stores entries in Redis so several web instances share results.
type RedisCache struct {
	client redis.Cmdable
}

// NewRedisCache wraps a Redis client.
func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

// Get implements Cache.
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: redis get: %w", err)
	}
	return value, true, nil
}

// Set implements Cache.
func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("store: redis set: %w", err)
	}
	return nil
}
