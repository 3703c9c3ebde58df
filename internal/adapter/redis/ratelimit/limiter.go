package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/gradelab-2025.net/internal/config"
	"gitlab.com/gradelab-2025.net/internal/core/ports/primary"
)

const limiterKeyPrefix = "ratelimit:executions:"

// Limiter implements the RateLimiter interface with a fixed window counter
// in Redis. Code execution is the expensive path, so the window applies per
// client key across all service instances.
type Limiter struct {
	redisClient *redis.Client
	limit       int64
	window      time.Duration
	logger      primary.Logger
}

// NewLimiter creates a new Redis-backed rate limiter
func NewLimiter(redisClient *redis.Client, cfg *config.RateLimitConfig, logger primary.Logger) *Limiter {
	return &Limiter{
		redisClient: redisClient,
		limit:       int64(cfg.Limit),
		window:      cfg.Window,
		logger:      logger,
	}
}

// Allow counts one request against the client's current window
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := limiterKeyPrefix + key

	count, err := l.redisClient.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		if err := l.redisClient.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.logger.Warn("Failed to set rate limit window", "key", redisKey, "error", err)
		}
	}
	return count <= l.limit, nil
}
