package http

import (
	"github.com/gin-gonic/gin"

	"shield-srv/internal/company"
	"shield-srv/pkg/paginator"
	"shield-srv/pkg/response"
	"shield-srv/pkg/scope"
)

// GetSettings
// @Summary Get company settings
// @Tags company
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Resp{data=settingsResp}
// @Router /api/v1/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	out, err := h.uc.GetSettings(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.GetSettings.GetSettings: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newSettingsResp(out, out.MetaAccessToken != ""))
}

// UpdateSettings
// @Summary Update company settings
// @Tags company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body company.UpdateSettingsInput true "Settings patch"
// @Success 200 {object} response.Resp{data=settingsResp}
// @Router /api/v1/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	var req company.UpdateSettingsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.UpdateSettings.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, company.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.UpdateSettings(ctx, sc, req)
	if err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.UpdateSettings.UpdateSettings: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newSettingsResp(out, out.MetaAccessToken != ""))
}

// Onboard
// @Summary Create a company with its admin user and default brand
// @Tags company
// @Accept json
// @Produce json
// @Param body body company.OnboardInput true "Onboarding request"
// @Success 200 {object} response.Resp{data=onboardResp}
// @Router /api/v1/onboarding [post]
func (h *Handler) Onboard(c *gin.Context) {
	ctx := c.Request.Context()

	var req company.OnboardInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.Onboard.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, company.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Onboard(ctx, req)
	if err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.Onboard.Onboard: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newOnboardResp(out))
}

// GetCompanies
// @Summary List companies (admin)
// @Tags company
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Resp{data=companiesResp}
// @Router /api/v1/companies [get]
func (h *Handler) GetCompanies(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.GetCompanies.ShouldBindQuery: %v", err)
		response.ErrorWithMap(c, company.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Get(ctx, sc, company.GetInput{PaginateQuery: pq})
	if err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.GetCompanies.Get: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newCompaniesResp(out))
}

// CreateBrand
// @Summary Create a brand
// @Tags brand
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body company.CreateBrandInput true "Brand"
// @Success 200 {object} response.Resp{data=brandResp}
// @Router /api/v1/brands [post]
func (h *Handler) CreateBrand(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	var req company.CreateBrandInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.CreateBrand.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, company.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.CreateBrand(ctx, sc, req)
	if err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.CreateBrand.CreateBrand: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newBrandResp(out))
}

// ListBrands
// @Summary List brands
// @Tags brand
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Resp{data=[]brandResp}
// @Router /api/v1/brands [get]
func (h *Handler) ListBrands(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	brands, err := h.uc.ListBrands(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.ListBrands.ListBrands: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	items := make([]brandResp, len(brands))
	for i, b := range brands {
		items[i] = newBrandResp(b)
	}
	response.OK(c, items)
}

// AttachAdAccount
// @Summary Attach an external ad account to a brand
// @Tags brand
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body company.AttachAdAccountInput true "Attachment"
// @Success 200 {object} response.Resp{data=adAccountResp}
// @Router /api/v1/brands/ad-accounts [post]
func (h *Handler) AttachAdAccount(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	var req company.AttachAdAccountInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.AttachAdAccount.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, company.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.AttachAdAccount(ctx, sc, req)
	if err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.AttachAdAccount.AttachAdAccount: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, adAccountResp{
		ID:         out.ID,
		BrandID:    out.BrandID,
		Provider:   out.Provider,
		ExternalID: out.ExternalID,
	})
}

// SendTestSlack
// @Summary Post a test message to the company's Slack endpoint
// @Tags company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body company.SendTestSlackInput false "Test message"
// @Success 200 {object} response.Resp
// @Router /api/v1/notifications/slack-test [post]
func (h *Handler) SendTestSlack(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	var req company.SendTestSlackInput
	_ = c.ShouldBindJSON(&req)

	if err := h.uc.SendTestSlack(ctx, sc, req); err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.SendTestSlack.SendTestSlack: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}

// SendTestEmail
// @Summary Send a test email to the caller
// @Tags company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body company.SendTestEmailInput false "Test email"
// @Success 200 {object} response.Resp
// @Router /api/v1/notifications/email-test [post]
func (h *Handler) SendTestEmail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	var req company.SendTestEmailInput
	_ = c.ShouldBindJSON(&req)

	if err := h.uc.SendTestEmail(ctx, sc, req); err != nil {
		h.l.Warnf(ctx, "internal.company.delivery.http.SendTestEmail.SendTestEmail: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}
