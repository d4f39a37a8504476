package meta

import "time"

const (
	defaultBaseURL = "https://graph.facebook.com"
	defaultVersion = "v19.0"
	defaultTimeout = 20 * time.Second
	defaultRetries = 2

	retryBaseDelay = 500 * time.Millisecond
)
