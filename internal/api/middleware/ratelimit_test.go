package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"customer-management/internal/api/handler/dto"
	"customer-management/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// fakeRedis answers INCR, TTL and EXPIRE in memory through a client hook, so no server is dialled.
type fakeRedis struct {
	mu      sync.Mutex
	counts  map[string]int64
	expires map[string]time.Duration
	failing error
}

func newFakeRedisClient(t *testing.T) (*redis.Client, *fakeRedis) {
	t.Helper()
	fake := &fakeRedis{counts: map[string]int64{}, expires: map[string]time.Duration{}}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(fake)
	t.Cleanup(func() { _ = client.Close() })
	return client, fake
}

func (f *fakeRedis) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, errors.New("fake redis does not dial")
	}
}

func (f *fakeRedis) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		return f.apply(cmd)
	}
}

func (f *fakeRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		for _, cmd := range cmds {
			if err := f.apply(cmd); err != nil {
				return err
			}
		}
		return nil
	}
}

func (f *fakeRedis) apply(cmd redis.Cmder) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failing != nil {
		cmd.SetErr(f.failing)
		return f.failing
	}

	key, _ := cmd.Args()[1].(string)
	switch c := cmd.(type) {
	case *redis.IntCmd:
		f.counts[key]++
		c.SetVal(f.counts[key])
	case *redis.DurationCmd:
		ttl, ok := f.expires[key]
		if !ok {
			ttl = -1
		}
		c.SetVal(ttl)
	case *redis.BoolCmd:
		secs, _ := cmd.Args()[2].(int64)
		f.expires[key] = time.Duration(secs) * time.Second
		c.SetVal(true)
	}
	return nil
}

func TestRateLimiterMiddlewareMemory(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Backend: config.RateLimitBackendMemory, RPS: 1, Burst: 2}
	rl := NewRateLimiterMiddleware(t.Context(), cfg, nil, testLogger())
	handler := rl.Middleware(okHandler)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "127.0.0.1:12345"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send().Code)
	assert.Equal(t, http.StatusOK, send().Code)

	rec := send()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	var response dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "RATE_LIMITED", response.Error.Code)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.9:5555"
	otherRec := httptest.NewRecorder()
	handler.ServeHTTP(otherRec, other)
	assert.Equal(t, http.StatusOK, otherRec.Code, "limits are tracked per client")
}

func TestRateLimiterMiddlewareDisabled(t *testing.T) {
	rl := NewRateLimiterMiddleware(t.Context(), config.RateLimitConfig{Enabled: false}, nil, testLogger())
	assert.False(t, rl.IsEnabled())

	for range 5 {
		rec := httptest.NewRecorder()
		rl.Middleware(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiterMiddlewareBackendSelection(t *testing.T) {
	client, _ := newFakeRedisClient(t)

	t.Run("redis with client", func(t *testing.T) {
		cfg := config.RateLimitConfig{Enabled: true, Backend: config.RateLimitBackendRedis, RPS: 5}
		rl := NewRateLimiterMiddleware(t.Context(), cfg, client, testLogger())
		assert.IsType(t, &RedisLimiter{}, rl.limiter)
		assert.Equal(t, config.RateLimitBackendRedis, rl.GetConfig().Backend)
	})

	t.Run("redis without client falls back to memory", func(t *testing.T) {
		cfg := config.RateLimitConfig{Enabled: true, Backend: config.RateLimitBackendRedis, RPS: 5, Burst: 5}
		rl := NewRateLimiterMiddleware(t.Context(), cfg, nil, testLogger())
		assert.IsType(t, &MemoryLimiter{}, rl.limiter)
		assert.Equal(t, config.RateLimitBackendMemory, rl.GetConfig().Backend)
	})

	t.Run("non-positive rps disables", func(t *testing.T) {
		cfg := config.RateLimitConfig{Enabled: true, RPS: 0}
		rl := NewRateLimiterMiddleware(t.Context(), cfg, nil, testLogger())
		assert.False(t, rl.IsEnabled())
	})
}

func TestRateLimiterMiddlewareRedis(t *testing.T) {
	client, fake := newFakeRedisClient(t)
	cfg := config.RateLimitConfig{Enabled: true, Backend: config.RateLimitBackendRedis, RPS: 2}
	handler := NewRateLimiterMiddleware(t.Context(), cfg, client, testLogger()).Middleware(okHandler)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "192.168.1.1, 10.0.0.1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send().Code)
	assert.Equal(t, http.StatusOK, send().Code)
	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	fake.mu.Lock()
	assert.Equal(t, int64(3), fake.counts[redisKeyPrefix+"192.168.1.1"])
	assert.Equal(t, time.Second, fake.expires[redisKeyPrefix+"192.168.1.1"])
	fake.mu.Unlock()

	t.Run("fails open when redis errors", func(t *testing.T) {
		fake.mu.Lock()
		fake.failing = errors.New("connection reset")
		fake.mu.Unlock()

		assert.Equal(t, http.StatusOK, send().Code)
	})
}

func TestRedisLimiterLimitRounding(t *testing.T) {
	client, _ := newFakeRedisClient(t)

	assert.Equal(t, int64(1), NewRedisLimiter(client, 0.2, time.Second).limit)
	assert.Equal(t, int64(3), NewRedisLimiter(client, 2.5, time.Second).limit)
	assert.Equal(t, int64(20), NewRedisLimiter(client, 10, 2*time.Second).limit)
}

func TestMemoryLimiterCleanup(t *testing.T) {
	m := NewMemoryLimiter(t.Context(), 1000, 1)

	allowed, _, err := m.Allow(t.Context(), "127.0.0.1")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, retryAfter, err := m.Allow(t.Context(), "127.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))

	require.Eventually(t, func() bool {
		m.cleanup()
		_, exists := m.limiters.Load("127.0.0.1")
		return !exists
	}, time.Second, 5*time.Millisecond)
}

func TestExtractIP(t *testing.T) {
	rl := NewRateLimiterMiddleware(t.Context(), config.RateLimitConfig{}, nil, testLogger())

	tests := []struct {
		name       string
		xff        string
		xRealIP    string
		remoteAddr string
		want       string
	}{
		{"forwarded for", "192.168.1.1, 10.0.0.1", "", "127.0.0.1:1", "192.168.1.1"},
		{"real ip", "", "10.0.0.1", "127.0.0.1:1", "10.0.0.1"},
		{"garbage forwarded header", "not-an-ip", "", "127.0.0.1:12345", "127.0.0.1"},
		{"remote addr", "", "", "127.0.0.1:12345", "127.0.0.1"},
		{"bare remote ip", "", "", "::1", "::1"},
		{"unknown", "", "", "nonsense", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xRealIP != "" {
				req.Header.Set("X-Real-IP", tt.xRealIP)
			}
			assert.Equal(t, tt.want, rl.extractIP(req))
		})
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(200*time.Millisecond))
	assert.Equal(t, 2, retryAfterSeconds(1500*time.Millisecond))
}
