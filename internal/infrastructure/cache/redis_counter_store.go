package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/loja/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const defaultCounterPrefix = "loja:ratelimit:"

// RedisCounterStore keeps counters in Redis so every instance shares the
// same windows
type RedisCounterStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCounterStore connects to Redis and verifies the connection
func NewRedisCounterStore(cfg config.RedisConfig) (*RedisCounterStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCounterStoreWithClient(client, ""), nil
}

// NewRedisCounterStoreWithClient wraps an existing client
func NewRedisCounterStoreWithClient(client *redis.Client, keyPrefix string) *RedisCounterStore {
	if keyPrefix == "" {
		keyPrefix = defaultCounterPrefix
	}
	return &RedisCounterStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Increment implements CounterStore. The expiry is set by the hit that
// opens the window.
func (s *RedisCounterStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	key = s.keyPrefix + key

	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return n, fmt.Errorf("failed to set counter expiry: %w", err)
		}
	}
	return n, nil
}

// Close closes the Redis client
func (s *RedisCounterStore) Close() error {
	return s.client.Close()
}

var _ CounterStore = (*RedisCounterStore)(nil)
