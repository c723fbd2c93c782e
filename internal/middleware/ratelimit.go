package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	logpkg "github.com/benvon/zenith-task/internal/logger"
	"github.com/benvon/zenith-task/internal/request"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	stdlibmw "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"
)

const (
	// DefaultRate is used when no rate is configured
	DefaultRate = "50-S"

	rateLimitPrefix = "zenith:ratelimit"
)

// RateLimiter is per-client-IP rate limiting backed by ulule/limiter. Counters
// live in process memory, or in Redis when a URL is given so several API
// instances share them.
type RateLimiter struct {
	limiter *limiter.Limiter
	redis   *redis.Client
	logger  *zap.Logger
}

// NewRateLimiter builds a limiter for the formatted rate (e.g. "50-S").
// With an empty redisURL the in-memory store is used.
func NewRateLimiter(ctx context.Context, rate, redisURL string, logger *zap.Logger) (*RateLimiter, error) {
	if rate == "" {
		rate = DefaultRate
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	rl := &RateLimiter{logger: logger}

	var store limiter.Store
	if redisURL == "" {
		store = memorystore.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          rateLimitPrefix,
			CleanUpInterval: time.Minute,
		})
	} else {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		store, err = redisstore.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: rateLimitPrefix})
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create Redis rate limit store: %w", err)
		}
		rl.redis = client
	}

	rl.limiter = limiter.New(store, parsed)
	return rl, nil
}

// Backend names the counter store in use
func (rl *RateLimiter) Backend() string {
	if rl.redis != nil {
		return "redis"
	}
	return "memory"
}

// Ping checks the Redis backend; the memory backend is always reachable.
// The server adds it to the extended health check when Redis is in use.
func (rl *RateLimiter) Ping(ctx context.Context) error {
	if rl.redis == nil {
		return nil
	}
	return rl.redis.Ping(ctx).Err()
}

// Close releases the Redis connection, if any
func (rl *RateLimiter) Close() error {
	if rl.redis == nil {
		return nil
	}
	return rl.redis.Close()
}

// Middleware returns the HTTP middleware. Requests are rejected with 503
// while the counter store is failing.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	mw := stdlibmw.NewMiddleware(rl.limiter,
		stdlibmw.WithKeyGetter(request.ClientIP),
		stdlibmw.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			respondErrorJSON(w, http.StatusTooManyRequests, "Too many requests", rl.logger)
		}),
		stdlibmw.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			rl.logger.Warn("rate_limit_store_error",
				zap.String("error", logpkg.SanitizeError(err)),
				zap.String("request_id", request.RequestID(r.Context())),
			)
			respondErrorJSON(w, http.StatusServiceUnavailable, "Rate limiter unavailable", rl.logger)
		}),
	)
	return mw.Handler
}
