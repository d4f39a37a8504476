package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/friendsofgo/errors"
)

// ErrNoWebhook is returned when Post is called with an empty webhook URL.
var ErrNoWebhook = errors.New("slack: no webhook url")

// ErrInvalidWebhook is returned when the webhook URL is not a Slack incoming webhook.
var ErrInvalidWebhook = errors.New("slack: invalid webhook url")

// Post implements IClient.
func (c *client) Post(ctx context.Context, webhookURL string, msg Message) error {
	if webhookURL == "" {
		return ErrNoWebhook
	}
	if !ValidWebhookURL(webhookURL) {
		return ErrInvalidWebhook
	}
	return c.sendRequest(ctx, webhookURL, msg)
}

// ReportBug implements IClient.
func (c *client) ReportBug(ctx context.Context, message string) error {
	if c.cfg.OpsWebhookURL == "" {
		return nil
	}
	return c.sendRequest(ctx, c.cfg.OpsWebhookURL, Message{Text: message})
}

func (c *client) sendRequest(ctx context.Context, webhookURL string, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "slack: marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "slack: build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "slack: send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack %d: %s", resp.StatusCode, truncateString(string(body), maxErrorBodyLen))
	}
	return nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
