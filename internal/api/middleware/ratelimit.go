package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"customer-management/internal/api/handler/dto"
	"customer-management/internal/config"
	"customer-management/internal/pkg/apperrors"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether one more request for key fits in its budget.
// When it does not, retryAfter says how long the caller should wait.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

type RateLimiterMiddleware struct {
	limiter Limiter
	cfg     config.RateLimitConfig
	logger  *slog.Logger
}

// NewRateLimiterMiddleware picks the backend named in cfg. A redis backend without a client falls back to memory.
// ctx bounds the lifetime of the memory backend's cleanup loop.
func NewRateLimiterMiddleware(
	ctx context.Context,
	cfg config.RateLimitConfig,
	redisClient *redis.Client,
	logger *slog.Logger,
) *RateLimiterMiddleware {
	rl := &RateLimiterMiddleware{cfg: cfg, logger: logger.With("component", "RateLimiter")}

	if !cfg.Enabled {
		rl.logger.Info("Rate limiting is disabled via configuration.")
		return rl
	}
	if cfg.RPS <= 0 {
		rl.logger.Warn("Rate limiting enabled with non-positive rps; disabling.", "rps", cfg.RPS)
		rl.cfg.Enabled = false
		return rl
	}

	switch {
	case cfg.Backend == config.RateLimitBackendRedis && redisClient != nil:
		rl.limiter = NewRedisLimiter(redisClient, cfg.RPS, time.Second)
	case cfg.Backend == config.RateLimitBackendRedis:
		rl.logger.Warn("Redis rate limiting requested but no Redis client provided; using in-memory limiter.")
		rl.cfg.Backend = config.RateLimitBackendMemory
		rl.limiter = NewMemoryLimiter(ctx, cfg.RPS, cfg.Burst)
	default:
		rl.cfg.Backend = config.RateLimitBackendMemory
		rl.limiter = NewMemoryLimiter(ctx, cfg.RPS, cfg.Burst)
	}

	rl.logger.Info("Rate limiter middleware configured", "backend", rl.cfg.Backend, "rps", cfg.RPS, "burst", cfg.Burst)
	return rl
}

func (rl *RateLimiterMiddleware) IsEnabled() bool {
	return rl.cfg.Enabled && rl.limiter != nil
}

func (rl *RateLimiterMiddleware) GetConfig() config.RateLimitConfig {
	return rl.cfg
}

func (rl *RateLimiterMiddleware) extractIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		ip := strings.TrimSpace(first)
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	xRealIP := strings.TrimSpace(r.Header.Get("X-Real-IP"))
	if xRealIP != "" && net.ParseIP(xRealIP) != nil {
		return xRealIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return ip
	}

	if parsedIP := net.ParseIP(r.RemoteAddr); parsedIP != nil {
		return parsedIP.String()
	}

	rl.logger.Warn("Could not determine client IP for rate limiting", "remoteAddr", r.RemoteAddr, "x-forwarded-for", xff, "x-real-ip", xRealIP)
	return "unknown"
}

func (rl *RateLimiterMiddleware) Middleware(next http.Handler) http.Handler {
	if !rl.IsEnabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.extractIP(r)
		if ip == "unknown" {
			rl.logger.Error("Blocking request due to unknown client IP for rate limiting")
			writeJSONError(w, http.StatusForbidden, dto.ErrorDetail{Code: apperrors.CodeForbidden, Message: "Forbidden"})
			return
		}

		allowed, retryAfter, err := rl.limiter.Allow(r.Context(), ip)
		if err != nil {
			// Fail open.
			rl.logger.Error("Rate limiter backend failed", "error", err, "ip", ip)
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			rl.logger.Warn("Rate limit exceeded", "ip", ip, "retry_after", retryAfter)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(retryAfter)))
			writeJSONError(w, http.StatusTooManyRequests, dto.ErrorDetail{
				Code:    apperrors.CodeRateLimited,
				Message: fmt.Sprintf("Rate limit exceeded. Limit is %g requests per second.", rl.cfg.RPS),
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
