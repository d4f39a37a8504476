package http

import (
	"shield-srv/internal/company"
	"shield-srv/internal/model"
	"shield-srv/pkg/paginator"
)

type settingsResp struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Timezone        string            `json:"timezone"`
	Currency        string            `json:"currency"`
	MinSeverity     string            `json:"min_severity"`
	QuietStart      string            `json:"quiet_start,omitempty"`
	QuietEnd        string            `json:"quiet_end,omitempty"`
	DigestHourLocal int               `json:"digest_hour_local"`
	SlackWebhookURL string            `json:"slack_webhook_url,omitempty"`
	SummaryWebhook  string            `json:"summary_webhook_url,omitempty"`
	BrandWebhooks   map[string]string `json:"brand_webhooks,omitempty"`
	FeedURL         string            `json:"feed_url,omitempty"`
	DailyCapAmount  float64           `json:"daily_cap_amount,omitempty"`
	MetaConnected   bool              `json:"meta_connected"`
	MetaAdAccountID string            `json:"meta_ad_account_id,omitempty"`
}

func newSettingsResp(c model.Company, metaConnected bool) settingsResp {
	return settingsResp{
		ID:              c.ID,
		Name:            c.Name,
		Timezone:        c.Timezone,
		Currency:        c.Currency,
		MinSeverity:     string(c.MinSeverity),
		QuietStart:      c.QuietStart,
		QuietEnd:        c.QuietEnd,
		DigestHourLocal: c.DigestHourLocal,
		SlackWebhookURL: c.SlackWebhookURL,
		SummaryWebhook:  c.SummaryWebhookURL,
		BrandWebhooks:   c.BrandWebhooks,
		FeedURL:         c.FeedURL,
		DailyCapAmount:  c.DailyCapAmount,
		MetaConnected:   metaConnected,
		MetaAdAccountID: c.MetaAdAccountID,
	}
}

type brandResp struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Currency   string `json:"currency"`
	WebhookURL string `json:"webhook_url,omitempty"`
}

func newBrandResp(b model.Brand) brandResp {
	return brandResp{
		ID:         b.ID,
		Name:       b.Name,
		Currency:   b.Currency,
		WebhookURL: b.WebhookURL,
	}
}

type adAccountResp struct {
	ID         string `json:"id"`
	BrandID    string `json:"brand_id"`
	Provider   string `json:"provider"`
	ExternalID string `json:"external_id"`
}

type onboardResp struct {
	Company settingsResp `json:"company"`
	AdminID string       `json:"admin_id"`
	Brand   brandResp    `json:"brand"`
}

func newOnboardResp(op company.OnboardOutput) onboardResp {
	return onboardResp{
		Company: newSettingsResp(op.Company, false),
		AdminID: op.Admin.ID,
		Brand:   newBrandResp(op.Brand),
	}
}

type companiesResp struct {
	Items []settingsResp              `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func newCompaniesResp(op company.GetCompanyOutput) companiesResp {
	items := make([]settingsResp, len(op.Companies))
	for i, c := range op.Companies {
		items[i] = newSettingsResp(c, c.MetaAccessToken != "")
	}
	return companiesResp{
		Items: items,
		Meta:  op.Paginator.ToResponse(),
	}
}
