package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCounterStore keeps counters in process memory. Counts are not
// shared between instances.
type MemoryCounterStore struct {
	c *gocache.Cache
}

// NewMemoryCounterStore creates a store that purges expired windows every cleanupInterval
func NewMemoryCounterStore(cleanupInterval time.Duration) *MemoryCounterStore {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	return &MemoryCounterStore{c: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

// Increment implements CounterStore
func (s *MemoryCounterStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := s.c.Add(key, int64(1), window); err == nil {
			return 1, nil
		}
		n, err := s.c.IncrementInt64(key, 1)
		if err == nil {
			return n, nil
		}
		// the window expired between Add and IncrementInt64
	}
}

// Close drops every counter
func (s *MemoryCounterStore) Close() error {
	s.c.Flush()
	return nil
}

var _ CounterStore = (*MemoryCounterStore)(nil)
