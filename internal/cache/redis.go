package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the read side handlers compose against. Implementations own
// entry lifecycle; callers only ever see a value or a miss.
type Store interface {
	// Get returns the stored payload for key, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores value under key for ttl, best effort.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Redis is a Store backed by a Redis instance. Operational failures after
// startup are logged and reported as misses; the request in flight carries on
// against the upstream instead.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedis connects to Redis using a connection URL
// (redis://[user:password@]host:port[/db]) and verifies connectivity,
// failing fast on startup when the store is unreachable.
func NewRedis(ctx context.Context, url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	logger := slog.Default().With("component", "redis")
	logger.Info("redis client connected", "addr", opts.Addr)

	return &Redis{client: client, logger: logger}, nil
}

// Close closes the underlying connection.
func (r *Redis) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	return nil
}

// HealthCheck verifies Redis connectivity. Used by the health endpoint.
func (r *Redis) HealthCheck(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}

// Get retrieves a cached payload. A transport error is treated the same as
// an absent key: logged, swallowed, and reported as a miss.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		r.logger.Debug("cache miss", "key", key)
		return nil, false
	}
	if err != nil {
		r.logger.Warn("cache read failed, treating as miss", "key", key, "error", err)
		return nil, false
	}

	r.logger.Debug("cache hit", "key", key)
	return val, true
}

// Set stores a payload with a TTL. The value has already been computed and
// will be returned to the caller regardless, so a write failure only warns.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	r.logger.Debug("cache set", "key", key, "ttl", ttl)
}
