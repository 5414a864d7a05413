package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryThrottleStore is a ThrottleStore backed by a process-local map.
// Suitable for single-instance deployments and testing; counters are not
// shared across instances.
type InMemoryThrottleStore struct {
	mu       sync.Mutex
	counters map[string]*windowCounter
	stop     chan struct{}
	stopOnce sync.Once
}

type windowCounter struct {
	count      int64
	windowFrom time.Time
}

// NewInMemoryThrottleStore creates a new in-memory throttle store with a
// background sweep that drops counters idle for longer than maxIdle.
func NewInMemoryThrottleStore(maxIdle time.Duration) *InMemoryThrottleStore {
	s := &InMemoryThrottleStore{
		counters: make(map[string]*windowCounter),
		stop:     make(chan struct{}),
	}
	go s.sweep(maxIdle)
	return s
}

func (s *InMemoryThrottleStore) sweep(maxIdle time.Duration) {
	ticker := time.NewTicker(maxIdle)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			cutoff := time.Now().Add(-maxIdle)
			for key, c := range s.counters {
				if c.windowFrom.Before(cutoff) {
					delete(s.counters, key)
				}
			}
			s.mu.Unlock()
		}
	}
}

// Incr implements ThrottleStore
func (s *InMemoryThrottleStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c, ok := s.counters[key]
	if !ok || now.Sub(c.windowFrom) >= window {
		s.counters[key] = &windowCounter{count: 1, windowFrom: now}
		return 1, nil
	}

	c.count++
	return c.count, nil
}

// Close stops the background sweep
func (s *InMemoryThrottleStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}
