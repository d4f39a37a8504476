package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/friendsofgo/errors"
)

const (
	defaultBaseURL = "https://api.resend.com"
	defaultTimeout = 15 * time.Second

	maxErrorBodyLen = 200
)

// ErrNotConfigured is returned when the client has no API key.
var ErrNotConfigured = errors.New("email: api key not configured")

// Send implements IClient.
func (c *client) Send(ctx context.Context, email Email) error {
	if c.cfg.APIKey == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(sendRequest{
		From:    c.cfg.From,
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return errors.Wrap(err, "email: marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "email: build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "email: send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		if len(body) > maxErrorBodyLen {
			body = body[:maxErrorBodyLen]
		}
		return fmt.Errorf("email %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
