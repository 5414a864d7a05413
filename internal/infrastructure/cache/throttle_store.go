package cache

import (
	"context"
	"time"
)

// ThrottleStore counts requests per key over a fixed window. It backs the
// HTTP throttle middleware; implementations must be safe for concurrent
// use.
type ThrottleStore interface {
	// Incr increments the counter for key, starting a new window when
	// none is active, and returns the count within the current window.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	// Close releases any underlying resources.
	Close() error
}
