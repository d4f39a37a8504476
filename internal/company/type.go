package company

import (
	"shield-srv/internal/model"
	"shield-srv/pkg/paginator"
)

// UpdateSettingsInput carries a settings update. Pointer fields are
// "absent means keep current value".
type UpdateSettingsInput struct {
	Name              *string `json:"name"`
	Timezone          *string `json:"timezone"`
	Currency          *string `json:"currency"`
	MinSeverity       *string `json:"min_severity"`
	QuietStart        *string `json:"quiet_start"`
	QuietEnd          *string `json:"quiet_end"`
	DigestHourLocal   *int    `json:"digest_hour_local"`
	SlackWebhookURL   *string `json:"slack_webhook_url"`
	SummaryWebhookURL *string `json:"summary_webhook_url"`
	// BrandWebhooks accepts either a JSON object string or
	// newline-separated "brand=url" lines.
	BrandWebhooks   *string `json:"brand_webhooks"`
	FeedURL         *string `json:"feed_url"`
	DailyCapAmount  *float64 `json:"daily_cap_amount"`
	MetaAccessToken *string `json:"meta_access_token"`
	MetaAdAccountID *string `json:"meta_ad_account_id"`
}

// OnboardInput creates a company with its admin user and default brand.
type OnboardInput struct {
	CompanyName string `json:"company_name"`
	Timezone    string `json:"timezone"`
	Currency    string `json:"currency"`
	AdminEmail  string `json:"admin_email"`
	AdminName   string `json:"admin_name"`
	Password    string `json:"password"`
}

// OnboardOutput is the result of onboarding.
type OnboardOutput struct {
	Company model.Company
	Admin   model.User
	Brand   model.Brand
}

// GetInput lists companies (admin only).
type GetInput struct {
	PaginateQuery paginator.PaginateQuery
}

// GetCompanyOutput is a paginated company listing.
type GetCompanyOutput struct {
	Companies []model.Company
	Paginator paginator.Paginator
}

// CreateBrandInput creates a brand under the caller's company.
type CreateBrandInput struct {
	Name       string `json:"name"`
	Currency   string `json:"currency"`
	WebhookURL string `json:"webhook_url"`
}

// AttachAdAccountInput attaches an external ad account to a brand.
type AttachAdAccountInput struct {
	BrandID    string `json:"brand_id"`
	Provider   string `json:"provider"`
	ExternalID string `json:"external_id"`
}

// SendTestSlackInput posts a test message to the company's webhook.
type SendTestSlackInput struct {
	Text string `json:"text"`
}

// SendTestEmailInput sends a test email to the caller.
type SendTestEmailInput struct {
	Subject string `json:"subject"`
}
