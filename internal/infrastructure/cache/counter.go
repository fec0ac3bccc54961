// Package cache holds the expiring counters behind request rate limiting.
package cache

import (
	"context"
	"time"
)

// CounterStore counts hits per key in fixed windows
type CounterStore interface {
	// Increment adds one hit to key and returns the count for the current
	// window. The window starts with the first hit and lasts window.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
	Close() error
}
