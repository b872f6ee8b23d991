package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimiter is a redis-backed fixed-window request counter keyed by the
// authenticated user when known, else the client IP. When redis is
// unreachable requests are allowed through (fail open).
type RateLimiter struct {
	client      *redis.Client
	maxRequests int
	window      time.Duration
	log         *logrus.Logger
}

func NewRateLimiter(client *redis.Client, maxRequests int, window time.Duration, log *logrus.Logger) *RateLimiter {
	return &RateLimiter{
		client:      client,
		maxRequests: maxRequests,
		window:      window,
		log:         log,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s", rl.identifier(c))
		ctx := c.Request.Context()

		count, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			rl.log.WithError(err).Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			rl.client.Expire(ctx, key, rl.window)
		}

		remaining := int64(rl.maxRequests) - count
		if remaining < 0 {
			remaining = 0
		}
		reset := time.Now().Add(rl.window).Unix()
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

		if count > int64(rl.maxRequests) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) identifier(c *gin.Context) string {
	if userID := CurrentUserID(c); userID != 0 {
		return fmt.Sprintf("user_%d", userID)
	}
	return fmt.Sprintf("ip_%s", c.ClientIP())
}
