package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"shield-srv/internal/digest"
	"shield-srv/pkg/response"
)

// runInput reads the dry/force trigger flags. Both accept 1/true.
func runInput(c *gin.Context) digest.RunInput {
	return digest.RunInput{
		Dry:   c.Query("dry") == "1" || c.Query("dry") == "true",
		Force: c.Query("force") == "1" || c.Query("force") == "true",
	}
}

func (h *Handler) run(c *gin.Context, name string, fn func(context.Context, digest.RunInput) (digest.RunSummary, error)) {
	ctx := c.Request.Context()

	summary, err := fn(ctx, runInput(c))
	if err != nil {
		h.l.Errorf(ctx, "internal.digest.delivery.http.%s: %v", name, err)
		response.Error(c, err, h.slack)
		return
	}

	response.OK(c, summary)
}

// RunAlertScan
// @Summary Scan CSV alert feeds and route alerts
// @Tags cron
// @Produce json
// @Param dry query string false "Dry run (1/true)"
// @Success 200 {object} response.Resp{data=digest.RunSummary}
// @Router /internal/api/v1/cron/alerts [post]
func (h *Handler) RunAlertScan(c *gin.Context) {
	h.run(c, "RunAlertScan", h.uc.RunAlertScan)
}

// RunDailyDigest
// @Summary Post daily digests
// @Tags cron
// @Produce json
// @Param dry query string false "Dry run (1/true)"
// @Param force query string false "Bypass the digest-hour gate (1/true)"
// @Success 200 {object} response.Resp{data=digest.RunSummary}
// @Router /internal/api/v1/cron/digest [post]
func (h *Handler) RunDailyDigest(c *gin.Context) {
	h.run(c, "RunDailyDigest", h.uc.RunDailyDigest)
}

// RunSpendDigest
// @Summary Post spend digests
// @Tags cron
// @Produce json
// @Param dry query string false "Dry run (1/true)"
// @Success 200 {object} response.Resp{data=digest.RunSummary}
// @Router /internal/api/v1/cron/spend-digest [post]
func (h *Handler) RunSpendDigest(c *gin.Context) {
	h.run(c, "RunSpendDigest", h.uc.RunSpendDigest)
}

// RunGuardrail
// @Summary Post over-budget alerts
// @Tags cron
// @Produce json
// @Param dry query string false "Dry run (1/true)"
// @Success 200 {object} response.Resp{data=digest.RunSummary}
// @Router /internal/api/v1/cron/guardrail [post]
func (h *Handler) RunGuardrail(c *gin.Context) {
	h.run(c, "RunGuardrail", h.uc.RunGuardrail)
}

// RunWeeklyReceipt
// @Summary Post weekly receipts
// @Tags cron
// @Produce json
// @Param dry query string false "Dry run (1/true)"
// @Success 200 {object} response.Resp{data=digest.RunSummary}
// @Router /internal/api/v1/cron/weekly-receipt [post]
func (h *Handler) RunWeeklyReceipt(c *gin.Context) {
	h.run(c, "RunWeeklyReceipt", h.uc.RunWeeklyReceipt)
}
