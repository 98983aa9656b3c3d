package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"crowdaid-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Redis     redis.Cmdable
	Requests  int
	Window    time.Duration
	KeyPrefix string
	Timeout   time.Duration
}

// RateLimiter is a sliding-window log limiter backed by a Redis sorted set per caller.
// Authenticated callers are keyed by user id, everyone else by client IP.
type RateLimiter struct {
	config RateLimitConfig
	now    func() time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyPrefix == "" {
		config.KeyPrefix = "rate_limit"
	}
	if config.Requests <= 0 {
		config.Requests = 100
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	if config.Timeout <= 0 {
		config.Timeout = 500 * time.Millisecond
	}
	return &RateLimiter{config: config, now: time.Now}
}

// Middleware returns the rate limiting middleware. Redis failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.config.Redis == nil {
			c.Next()
			return
		}

		key := rl.key(c)
		ctx, cancel := context.WithTimeout(c.Request.Context(), rl.config.Timeout)
		allowed, remaining, resetAt, err := rl.allow(ctx, key)
		cancel()
		if err != nil {
			logger.FromGinContext(c).WithError(err).WithField("key", key).Warn("Rate limit check failed, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !allowed {
			retryAfter := int(rl.config.Window.Seconds())
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			logger.FromGinContext(c).WithField("key", key).Warn("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}

// allow records the request in the caller's window and reports whether it fits the limit
func (rl *RateLimiter) allow(ctx context.Context, key string) (bool, int, time.Time, error) {
	now := rl.now()
	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString())

	pipe := rl.config.Redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(now.Add(-rl.config.Window).UnixNano(), 10))
	count := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.Expire(ctx, key, rl.config.Window+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	current := count.Val()
	resetAt := now.Add(rl.config.Window)
	if current >= int64(rl.config.Requests) {
		// rejected requests do not consume the window
		if err := rl.config.Redis.ZRem(ctx, key, member).Err(); err != nil {
			return false, 0, resetAt, err
		}
		return false, 0, resetAt, nil
	}

	remaining := rl.config.Requests - int(current) - 1
	if remaining < 0 {
		remaining = 0
	}
	return true, remaining, resetAt, nil
}

func (rl *RateLimiter) key(c *gin.Context) string {
	if value, ok := c.Get("user_id"); ok {
		if id, ok := value.(uuid.UUID); ok && id != uuid.Nil {
			return fmt.Sprintf("%s:user:%s", rl.config.KeyPrefix, id)
		}
	}
	return fmt.Sprintf("%s:ip:%s", rl.config.KeyPrefix, c.ClientIP())
}
