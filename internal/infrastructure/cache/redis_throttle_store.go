package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/littlelemon/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// RedisThrottleStore is a ThrottleStore backed by Redis, so request
// counters are shared across instances.
type RedisThrottleStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisThrottleStore creates a Redis-backed throttle store and
// verifies the connection.
func NewRedisThrottleStore(cfg config.RedisConfig) (*RedisThrottleStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisThrottleStore{
		client:    client,
		keyPrefix: "throttle:",
	}, nil
}

// NewRedisThrottleStoreWithClient creates a store with an existing client.
// Useful for testing or sharing a client across components.
func NewRedisThrottleStoreWithClient(client *redis.Client, keyPrefix string) *RedisThrottleStore {
	if keyPrefix == "" {
		keyPrefix = "throttle:"
	}
	return &RedisThrottleStore{client: client, keyPrefix: keyPrefix}
}

// Incr implements ThrottleStore. INCR and EXPIRE run in one pipeline;
// the expiry is only set when the key is new so the window is anchored
// to the first request.
func (s *RedisThrottleStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := s.keyPrefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return incr.Val(), nil
}

// Close closes the underlying Redis client
func (s *RedisThrottleStore) Close() error {
	return s.client.Close()
}
