package postgres

import (
	"encoding/json"
	"time"

	"shield-srv/internal/model"

	"github.com/aarondl/null/v8"
)

// Row types are written by hand; the schema is managed outside this service.

type companyRow struct {
	ID                string       `boil:"id"`
	Name              string       `boil:"name"`
	Timezone          string       `boil:"timezone"`
	Currency          string       `boil:"currency"`
	MinSeverity       string       `boil:"min_severity"`
	QuietStart        null.String  `boil:"quiet_start"`
	QuietEnd          null.String  `boil:"quiet_end"`
	DigestHourLocal   int          `boil:"digest_hour_local"`
	SlackWebhookURL   null.String  `boil:"slack_webhook_url"`
	SummaryWebhookURL null.String  `boil:"summary_webhook_url"`
	BrandWebhooks     null.JSON    `boil:"brand_webhooks"`
	FeedURL           null.String  `boil:"feed_url"`
	DailyCapAmount    null.Float64 `boil:"daily_cap_amount"`
	MetaAccessToken   null.String  `boil:"meta_access_token"`
	MetaAdAccountID   null.String  `boil:"meta_ad_account_id"`
	CreatedAt         time.Time    `boil:"created_at"`
	UpdatedAt         time.Time    `boil:"updated_at"`
}

func (r companyRow) toModel() model.Company {
	c := model.Company{
		ID:              r.ID,
		Name:            r.Name,
		Timezone:        r.Timezone,
		Currency:        r.Currency,
		MinSeverity:     model.ParseSeverity(r.MinSeverity),
		DigestHourLocal: r.DigestHourLocal,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	c.QuietStart = r.QuietStart.String
	c.QuietEnd = r.QuietEnd.String
	c.SlackWebhookURL = r.SlackWebhookURL.String
	c.SummaryWebhookURL = r.SummaryWebhookURL.String
	c.FeedURL = r.FeedURL.String
	c.MetaAccessToken = r.MetaAccessToken.String
	c.MetaAdAccountID = r.MetaAdAccountID.String
	if r.DailyCapAmount.Valid {
		c.DailyCapAmount = r.DailyCapAmount.Float64
	}
	if r.BrandWebhooks.Valid && len(r.BrandWebhooks.JSON) > 0 {
		// a corrupt map degrades to no brand routing rather than erroring
		_ = json.Unmarshal(r.BrandWebhooks.JSON, &c.BrandWebhooks)
	}
	return c
}

func brandWebhooksJSON(m map[string]string) null.JSON {
	if len(m) == 0 {
		return null.JSON{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return null.JSON{}
	}
	return null.JSONFrom(data)
}

type brandRow struct {
	ID         string      `boil:"id"`
	CompanyID  string      `boil:"company_id"`
	Name       string      `boil:"name"`
	Currency   string      `boil:"currency"`
	WebhookURL null.String `boil:"webhook_url"`
	CreatedAt  time.Time   `boil:"created_at"`
	UpdatedAt  time.Time   `boil:"updated_at"`
}

func (r brandRow) toModel() model.Brand {
	return model.Brand{
		ID:         r.ID,
		CompanyID:  r.CompanyID,
		Name:       r.Name,
		Currency:   r.Currency,
		WebhookURL: r.WebhookURL.String,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type adAccountRow struct {
	ID         string      `boil:"id"`
	BrandID    string      `boil:"brand_id"`
	Provider   string      `boil:"provider"`
	ExternalID string      `boil:"external_id"`
	Meta       null.String `boil:"meta"`
	CreatedAt  time.Time   `boil:"created_at"`
	UpdatedAt  time.Time   `boil:"updated_at"`
}

func (r adAccountRow) toModel() model.AdAccount {
	return model.AdAccount{
		ID:         r.ID,
		BrandID:    r.BrandID,
		Provider:   r.Provider,
		ExternalID: r.ExternalID,
		Meta:       r.Meta.String,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
