package slack

import (
	"context"
	"net/http"
	"time"
)

// IClient posts messages to Slack incoming webhooks.
type IClient interface {
	// Post delivers a single message to the given webhook URL.
	// It performs exactly one HTTP attempt; retrying is the caller's concern.
	Post(ctx context.Context, webhookURL string, msg Message) error
	// ReportBug posts a plain-text message to the configured ops webhook.
	ReportBug(ctx context.Context, message string) error
}

// Config holds the Slack client configuration.
type Config struct {
	// OpsWebhookURL receives internal error reports. Optional.
	OpsWebhookURL string
	Timeout       time.Duration
}

// New creates a new Slack webhook client.
func New(cfg Config) IClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}
