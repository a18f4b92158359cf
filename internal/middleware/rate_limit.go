package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oficinapro/workshop-api/internal/config"
	"github.com/oficinapro/workshop-api/internal/utils"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit implements per-tenant rate limiting. Runs after
// ResolveTenant; a SUPERADMIN operating without a tenant is keyed by user
// id instead.
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := m.rateLimitKey(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required for rate limiting"})
			c.Abort()
			return
		}

		m.enforce(c, key, m.config.DefaultRateLimit)
	}
}

// GlobalRateLimit implements global rate limiting based on IP.
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		m.enforce(c, key, limit)
	}
}

func (m *RateLimitMiddleware) rateLimitKey(c *gin.Context) (string, error) {
	scope, err := utils.GetTenantScopeFromContext(c.Request.Context())
	if err == nil {
		if tenantID, ok := scope.TenantID(); ok {
			return fmt.Sprintf("rate_limit:tenant:%s", tenantID), nil
		}
	}

	identity, err := utils.GetIdentityFromContext(c.Request.Context())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rate_limit:user:%s", identity.UserID), nil
}

func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int) {
	// Check current request count
	current, err := m.redis.Get(c.Request.Context(), key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err)
		// Allow request to continue on Redis error (fail open)
		c.Next()
		return
	}

	reset := time.Now().Add(time.Minute).Unix()

	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Rate limit exceeded",
			"limit": limit,
			"reset": reset,
		})
		c.Abort()
		return
	}

	// Increment counter
	pipe := m.redis.Pipeline()
	pipe.Incr(c.Request.Context(), key)
	pipe.Expire(c.Request.Context(), key, time.Minute)
	if _, err := pipe.Exec(c.Request.Context()); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

	c.Next()
}
