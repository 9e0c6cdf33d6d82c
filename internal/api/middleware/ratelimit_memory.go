package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterCleanupInterval = 10 * time.Minute

// MemoryLimiter keeps one token bucket per key in process memory.
type MemoryLimiter struct {
	limiters sync.Map
	limit    rate.Limit
	burst    int
}

func NewMemoryLimiter(ctx context.Context, rps float64, burst int) *MemoryLimiter {
	if burst < 1 {
		burst = 1
	}
	m := &MemoryLimiter{limit: rate.Limit(rps), burst: burst}
	go m.cleanupLoop(ctx, limiterCleanupInterval)
	return m
}

func (m *MemoryLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := m.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}
	limiter, _ := m.limiters.LoadOrStore(key, rate.NewLimiter(m.limit, m.burst))
	return limiter.(*rate.Limiter)
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	reservation := m.getLimiter(key).Reserve()
	if delay := reservation.Delay(); delay > 0 {
		reservation.Cancel()
		return false, delay, nil
	}
	return true, 0, nil
}

func (m *MemoryLimiter) cleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

// cleanup drops buckets that have refilled completely; they carry no state worth keeping.
func (m *MemoryLimiter) cleanup() {
	m.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(m.burst) {
			m.limiters.Delete(key)
		}
		return true
	})
}
