package http

import (
	"github.com/gin-gonic/gin"

	"shield-srv/internal/middleware"
)

// RegisterRoutes registers the cron trigger routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	cron := r.Group("", mw.CronAuth(), mw.CronRateLimit())
	{
		cron.POST("/alerts", h.RunAlertScan)
		cron.POST("/digest", h.RunDailyDigest)
		cron.POST("/spend-digest", h.RunSpendDigest)
		cron.POST("/guardrail", h.RunGuardrail)
		cron.POST("/weekly-receipt", h.RunWeeklyReceipt)
	}
}
