package http

import (
	"github.com/gin-gonic/gin"

	"shield-srv/internal/middleware"
)

// RegisterRoutes registers the company routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/onboarding", h.Onboard)

	authed := r.Group("", mw.Auth())
	{
		authed.GET("/settings", h.GetSettings)
		authed.PUT("/settings", h.UpdateSettings)

		authed.GET("/brands", h.ListBrands)
		authed.POST("/brands", h.CreateBrand)
		authed.POST("/brands/ad-accounts", h.AttachAdAccount)

		authed.POST("/notifications/slack-test", h.SendTestSlack)
		authed.POST("/notifications/email-test", h.SendTestEmail)

		authed.GET("/companies", h.GetCompanies)
	}
}
