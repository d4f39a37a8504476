package middleware

import (
	"github.com/gin-gonic/gin"

	pkgLog "shield-srv/pkg/log"
	"shield-srv/pkg/response"
	"shield-srv/pkg/slack"
)

func Recovery(logger pkgLog.Logger, slackClient slack.IClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, slackClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
