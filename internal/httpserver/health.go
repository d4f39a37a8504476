package httpserver

import (
	"github.com/gin-gonic/gin"

	pkgErrors "shield-srv/pkg/errors"
	"shield-srv/pkg/response"
)

// healthCheck reports overall service health.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, pkgErrors.NewHTTPError(503, "Database connection failed", 503))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "shield-srv",
		"version":  "1.0.0",
		"database": "connected",
	})
}

// readyCheck reports whether the service can serve traffic.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, pkgErrors.NewHTTPError(503, "Database connection not available", 503))
		return
	}
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, pkgErrors.NewHTTPError(503, "Redis connection not available", 503))
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "shield-srv",
		"version": "1.0.0",
	})
}

// liveCheck reports process liveness.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "shield-srv",
		"version": "1.0.0",
	})
}
