package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "shield-srv/pkg/errors"
	"shield-srv/pkg/response"
)

const (
	rateLimitKeyPrefix = "shield:ratelimit:cron:"
	rateLimitWindow    = time.Minute
	rateLimitMax       = 10
)

// CronRateLimit returns a middleware that caps cron trigger frequency per
// route using a fixed redis window. Redis being down fails open; the cron
// secret remains the primary gate.
func (m Middleware) CronRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.redis == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := rateLimitKeyPrefix + c.FullPath()

		count, err := m.redis.Incr(ctx, key)
		if err != nil {
			m.l.Warnf(ctx, "Rate limit check failed: %v | Path: %s", err, c.Request.URL.Path)
			c.Next()
			return
		}
		if count == 1 {
			if err := m.redis.Expire(ctx, key, rateLimitWindow); err != nil {
				m.l.Warnf(ctx, "Rate limit expire failed: %v | Path: %s", err, c.Request.URL.Path)
			}
		}

		if count > rateLimitMax {
			response.HttpError(c, pkgErrors.NewHTTPError(42901,
				fmt.Sprintf("Rate limit exceeded: max %d triggers per minute", rateLimitMax), 429))
			c.Abort()
			return
		}

		c.Next()
	}
}
