package notify

import "shield-srv/pkg/slack"

// PickWebhook selects the destination endpoint for a message, or reports
// that none is configured. A syntactically invalid endpoint is treated as
// not configured so a mistyped URL degrades to a skip, not a crash.
//
// Precedence, first valid match wins:
//   - summary: summary endpoint, then global.
//   - alert: brand endpoint (exact name match), then global.
func PickWebhook(cfg RouteConfig, purpose Purpose, brand string) (string, bool) {
	switch purpose {
	case PurposeSummary:
		if slack.ValidWebhookURL(cfg.SummaryWebhookURL) {
			return cfg.SummaryWebhookURL, true
		}
	case PurposeAlert:
		if url, ok := cfg.BrandWebhooks[brand]; ok && slack.ValidWebhookURL(url) {
			return url, true
		}
	}
	if slack.ValidWebhookURL(cfg.GlobalWebhookURL) {
		return cfg.GlobalWebhookURL, true
	}
	return "", false
}
