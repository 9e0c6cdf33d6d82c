package middleware

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "customer-management:ratelimit:"

// RedisLimiter is a fixed-window counter shared by every instance pointing at the same Redis.
type RedisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client redis.Cmdable, rps float64, window time.Duration) *RedisLimiter {
	limit := int64(math.Ceil(rps * window.Seconds()))
	if limit < 1 {
		limit = 1
	}
	return &RedisLimiter{client: client, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := redisKeyPrefix + key

	pipe := l.client.Pipeline()
	incrCmd := pipe.Incr(ctx, redisKey)
	ttlCmd := pipe.TTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("rate limit pipeline for %s: %w", redisKey, err)
	}

	count := incrCmd.Val()
	ttl := ttlCmd.Val()

	// -1: key has no expiry, -2: key vanished between INCR and TTL.
	if ttl < 0 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("set expiry for %s: %w", redisKey, err)
		}
		ttl = l.window
	}

	if count > l.limit {
		return false, ttl, nil
	}
	return true, 0, nil
}
