package email

import (
	"context"
	"net/http"
	"time"
)

// IClient sends transactional email.
type IClient interface {
	Send(ctx context.Context, email Email) error
}

// Config holds the Resend client configuration.
type Config struct {
	APIKey  string
	From    string
	BaseURL string
	Timeout time.Duration
}

// New creates a new Resend email client.
func New(cfg Config) IClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
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
