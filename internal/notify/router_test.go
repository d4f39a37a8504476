package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	globalURL  = "https://hooks.slack.com/services/T000/B000/GLOBAL00"
	summaryURL = "https://hooks.slack.com/services/T000/B000/SUMMARY0"
	brandURL   = "https://hooks.slack.com/services/T000/B000/BRAND000"
)

func TestPickWebhook_Summary(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RouteConfig
		wantURL string
		wantOK  bool
	}{
		{
			name:    "summary wins over global when both valid",
			cfg:     RouteConfig{GlobalWebhookURL: globalURL, SummaryWebhookURL: summaryURL},
			wantURL: summaryURL,
			wantOK:  true,
		},
		{
			name:    "falls back to global when summary absent",
			cfg:     RouteConfig{GlobalWebhookURL: globalURL},
			wantURL: globalURL,
			wantOK:  true,
		},
		{
			name:    "falls back to global when summary invalid",
			cfg:     RouteConfig{GlobalWebhookURL: globalURL, SummaryWebhookURL: "https://example.com/x"},
			wantURL: globalURL,
			wantOK:  true,
		},
		{
			name:   "no destination when neither valid",
			cfg:    RouteConfig{GlobalWebhookURL: "not-a-url", SummaryWebhookURL: ""},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := PickWebhook(tt.cfg, PurposeSummary, "")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

func TestPickWebhook_Alert(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RouteConfig
		brand   string
		wantURL string
		wantOK  bool
	}{
		{
			name:    "brand endpoint wins over global",
			cfg:     RouteConfig{GlobalWebhookURL: globalURL, BrandWebhooks: map[string]string{"acme": brandURL}},
			brand:   "acme",
			wantURL: brandURL,
			wantOK:  true,
		},
		{
			name:    "no brand match falls back to global",
			cfg:     RouteConfig{GlobalWebhookURL: globalURL, BrandWebhooks: map[string]string{"acme": brandURL}},
			brand:   "globex",
			wantURL: globalURL,
			wantOK:  true,
		},
		{
			name:    "brand match is exact, not case-insensitive",
			cfg:     RouteConfig{GlobalWebhookURL: globalURL, BrandWebhooks: map[string]string{"acme": brandURL}},
			brand:   "Acme",
			wantURL: globalURL,
			wantOK:  true,
		},
		{
			name:    "invalid brand endpoint falls back to global",
			cfg:     RouteConfig{GlobalWebhookURL: globalURL, BrandWebhooks: map[string]string{"acme": "oops"}},
			brand:   "acme",
			wantURL: globalURL,
			wantOK:  true,
		},
		{
			name:   "nothing configured",
			cfg:    RouteConfig{},
			brand:  "acme",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := PickWebhook(tt.cfg, PurposeAlert, tt.brand)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}
