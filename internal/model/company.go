package model

import "time"

// Company is the tenant root. All notification preferences hang off it.
type Company struct {
	ID       string
	Name     string
	Timezone string
	Currency string

	// Notification gating.
	MinSeverity     Severity
	QuietStart      string // HH:MM local, empty = no quiet hours
	QuietEnd        string
	DigestHourLocal int

	// Delivery endpoints.
	SlackWebhookURL   string // global fallback
	SummaryWebhookURL string
	BrandWebhooks     map[string]string // brand name -> webhook URL

	// Data sources.
	FeedURL         string
	DailyCapAmount  float64
	MetaAccessToken string // AES-GCM ciphertext, empty = not connected
	MetaAdAccountID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasQuietHours reports whether a quiet-hours window is configured.
func (c Company) HasQuietHours() bool {
	return c.QuietStart != "" && c.QuietEnd != ""
}

// Brand belongs to exactly one company.
type Brand struct {
	ID         string
	CompanyID  string
	Name       string
	Currency   string
	WebhookURL string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AdAccount is an external ad platform attachment for a brand.
// (provider, external id) is unique per brand.
type AdAccount struct {
	ID         string
	BrandID    string
	Provider   string
	ExternalID string
	Meta       string // provider-specific JSON blob
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AdAccount providers.
const (
	ProviderMeta = "meta"
)
