package cache

import (
	"time"

	"github.com/littlelemon/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewThrottleStore creates a throttle store based on configuration.
// When Redis is enabled it is tried first; on connection failure the
// store falls back to in-memory counters so throttling keeps working on
// a single instance.
func NewThrottleStore(cfg config.RedisConfig, window time.Duration, log *zap.Logger) ThrottleStore {
	if cfg.Enabled {
		store, err := NewRedisThrottleStore(cfg)
		if err == nil {
			log.Info("Using Redis throttle store", zap.String("addr", cfg.Addr()))
			return store
		}
		log.Warn("Redis unavailable, falling back to in-memory throttle store", zap.Error(err))
	}
	return NewInMemoryThrottleStore(2 * window)
}
