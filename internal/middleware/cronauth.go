package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"shield-srv/pkg/response"
)

// CronAuth returns a middleware that guards the internal cron endpoints
// with a shared bearer secret.
func (m Middleware) CronAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.l.Warnf(c.Request.Context(), "Missing cron secret | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		secret := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if subtle.ConstantTimeCompare([]byte(secret), []byte(m.cronSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "Invalid cron secret | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
