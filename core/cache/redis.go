// Package cache - Redis-backed cache
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tripcost/core/types"
	"tripcost/internal/logging"

	"go.uber.org/zap"
)

// Redis is a cache backed by a Redis instance so multiple server
// replicas share quote lookups. TTL expiry is delegated to Redis.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed cache
func NewRedis(addr string, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Ping verifies connectivity
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get retrieves a fresh entry
func (r *Redis) Get(ctx context.Context, key string) (Entry, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return Entry{}, false
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, false
	}
	return entry, true
}

// Put stores a value
func (r *Redis) Put(ctx context.Context, key string, value interface{}, source types.PriceSource) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := Entry{Value: raw, Source: source, CachedAt: time.Now()}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// Close releases the underlying client
func (r *Redis) Close() error {
	return r.client.Close()
}
