package slack

import (
	"net/url"
	"strings"
)

// ValidWebhookURL reports whether rawURL is a Slack incoming webhook URL,
// i.e. https://hooks.slack.com/services/T.../B.../XXX.
func ValidWebhookURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "https" || u.Host != webhookHost {
		return false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	return len(parts) == webhookPathParts && parts[0] == webhookPathPrefix
}
