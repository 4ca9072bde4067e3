package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store is the raw key-value layer under the snapshot cache. Implementations
// must fail open: a broken backend degrades to a cache miss, never an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// MemoryStore keeps entries in a plain map. It is the default backend when
// no REDIS_URL is configured and the backend used throughout the tests.
// Expiry is enforced by the snapshot envelope, so entries are only removed
// lazily via Delete.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

func (m *MemoryStore) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// RedisStore backs the snapshot cache with redis. The redis expiration is a
// hint for memory pressure; the envelope timestamp stays authoritative.
type RedisStore struct {
	client *redis.Client
	logger *zap.SugaredLogger
}

func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger.Sugar()}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warnw("redis get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Warnw("redis set failed", "key", key, "error", err)
	}
}

func (r *RedisStore) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil && err != redis.Nil {
		r.logger.Warnw("redis del failed", "key", key, "error", err)
	}
}
