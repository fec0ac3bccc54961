package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/loja/backend/internal/infrastructure/cache"
	"github.com/loja/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// RateLimiter implements a fixed-window limiter on top of a CounterStore
type RateLimiter struct {
	store  cache.CounterStore
	limit  int
	window time.Duration
	logger *zap.Logger
}

// NewRateLimiter creates a limiter allowing limit requests per key per window
func NewRateLimiter(store cache.CounterStore, limit int, window time.Duration, logger *zap.Logger) *RateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimiter{
		store:  store,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// Allow counts a request for key and reports whether it fits the window and
// how many requests remain. A store failure lets the request through.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, int) {
	n, err := rl.store.Increment(ctx, key, rl.window)
	if err != nil {
		rl.logger.Error("Rate limit store failed", zap.String("key", key), zap.Error(err))
		return true, rl.limit
	}
	return n <= int64(rl.limit), max(rl.limit-int(n), 0)
}

// Limit returns the requests allowed per window
func (rl *RateLimiter) Limit() int {
	return rl.limit
}

// RateLimit returns a rate limiting middleware keyed by route and client IP
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return RateLimitByKey(limiter, func(c *gin.Context) string {
		return c.FullPath() + ":" + c.ClientIP()
	})
}

// RateLimitByKey returns a rate limiting middleware with custom key extractor
func RateLimitByKey(limiter *RateLimiter, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := limiter.Allow(c.Request.Context(), keyFunc(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(limiter.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeRateLimited,
				"Too many requests. Please try again later.",
				GetRequestID(c),
			))
			return
		}
		c.Next()
	}
}
