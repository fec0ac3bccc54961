package cache

import (
	"fmt"
	"time"

	"github.com/loja/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// CounterStoreFactory creates counter stores based on configuration
type CounterStoreFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// CounterStoreFactoryOption is a functional option for configuring the factory
type CounterStoreFactoryOption func(*CounterStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) CounterStoreFactoryOption {
	return func(f *CounterStoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to
// the in-memory store. Default is true.
func WithInMemoryFallback(allow bool) CounterStoreFactoryOption {
	return func(f *CounterStoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewCounterStoreFactory creates a new factory
func NewCounterStoreFactory(cfg config.RedisConfig, opts ...CounterStoreFactoryOption) *CounterStoreFactory {
	f := &CounterStoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns the store named by kind (config.RateLimitStoreMemory or
// config.RateLimitStoreRedis)
func (f *CounterStoreFactory) Create(kind string) (CounterStore, error) {
	switch kind {
	case "", config.RateLimitStoreMemory:
		return NewMemoryCounterStore(time.Minute), nil
	case config.RateLimitStoreRedis:
		store, err := NewRedisCounterStore(f.redisConfig)
		if err == nil {
			f.logger.Info("using Redis rate limit store", zap.String("addr", f.redisConfig.Addr()))
			return store, nil
		}
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("Redis required for rate limiting but unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory rate limit store. "+
			"Limits will not be shared across instances.",
			zap.Error(err),
		)
		return NewMemoryCounterStore(time.Minute), nil
	default:
		return nil, fmt.Errorf("unknown rate limit store %q", kind)
	}
}
