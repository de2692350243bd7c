package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/bancoideias/backend-go/internal/config"
)

// RateLimiter throttles login/register attempts using Redis
type RateLimiter interface {
	// LimitAuth is a gin middleware applying a fixed window per client IP
	LimitAuth() gin.HandlerFunc

	// Close closes the Redis connection
	Close() error
}

type redisRateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *slog.Logger
}

// NewRateLimiter creates a new Redis-based rate limiter
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) (RateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDB),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("❌ [RateLimiter] Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [RateLimiter] Connected to Redis",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
	)

	return &redisRateLimiter{
		client: client,
		limit:  cfg.LoginRateLimit,
		window: time.Duration(cfg.LoginRateWindow) * time.Second,
		logger: logger,
	}, nil
}

// NewRateLimiterWithClient wires an existing Redis client (for testing)
func NewRateLimiterWithClient(client *redis.Client, cfg *config.Config, logger *slog.Logger) RateLimiter {
	return &redisRateLimiter{
		client: client,
		limit:  cfg.LoginRateLimit,
		window: time.Duration(cfg.LoginRateWindow) * time.Second,
		logger: logger,
	}
}

// authKey generates the Redis key for an auth attempt window
// Format: rate:auth:{clientIP}
func authKey(clientIP string) string {
	return fmt.Sprintf("rate:auth:%s", clientIP)
}

func (r *redisRateLimiter) LimitAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.limit <= 0 {
			c.Next()
			return
		}

		key := authKey(c.ClientIP())
		ctx := c.Request.Context()

		pipe := r.client.Pipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, r.window)

		if _, err := pipe.Exec(ctx); err != nil {
			// On Redis failure, allow the request but log it.
			r.logger.Error("❌ [RateLimiter] Failed to count attempt", "error", err)
			c.Next()
			return
		}

		if incr.Val() > r.limit {
			r.logger.Warn("⚠️ [RateLimiter] Too many auth attempts", "client_ip", c.ClientIP())
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Muitas tentativas, tente novamente mais tarde"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (r *redisRateLimiter) Close() error {
	return r.client.Close()
}

// noOpRateLimiter never blocks; used when Redis is unavailable
type noOpRateLimiter struct {
	logger *slog.Logger
}

// NewNoOpRateLimiter creates a rate limiter that allows everything
func NewNoOpRateLimiter(logger *slog.Logger) RateLimiter {
	logger.Warn("⚠️ [RateLimiter] Using no-op rate limiter (no Redis)")
	return &noOpRateLimiter{logger: logger}
}

func (n *noOpRateLimiter) LimitAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

func (n *noOpRateLimiter) Close() error {
	return nil
}
