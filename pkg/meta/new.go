package meta

import (
	"context"
	"net/http"
	"time"
)

// IClient reads ad account data from the Meta Graph API.
type IClient interface {
	// ListAdAccounts returns the ad accounts visible to the access token.
	ListAdAccounts(ctx context.Context, accessToken string) ([]AdAccount, error)
	// DailyInsights returns per-day account-level spend for the given range.
	// Dates are YYYY-MM-DD in the ad account's timezone.
	DailyInsights(ctx context.Context, accessToken, actID, since, until string) ([]Insight, error)
}

// Config holds the Graph API client configuration.
type Config struct {
	BaseURL string
	Version string
	Timeout time.Duration
	// Retries is the number of retry attempts after the first failure.
	Retries int
}

// New creates a new Graph API client.
func New(cfg Config) IClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Version == "" {
		cfg.Version = defaultVersion
	}
	if cfg.Retries == 0 {
		cfg.Retries = defaultRetries
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
