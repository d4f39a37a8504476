package notify

// Purpose selects the routing rule for a message.
type Purpose string

const (
	// PurposeSummary routes digests and receipts.
	PurposeSummary Purpose = "summary"
	// PurposeAlert routes per-brand alerts.
	PurposeAlert Purpose = "alert"
)

// RouteConfig is a company's configured Slack endpoints.
type RouteConfig struct {
	GlobalWebhookURL  string
	SummaryWebhookURL string
	BrandWebhooks     map[string]string
}
