package slack

import "time"

const (
	defaultTimeout = 10 * time.Second

	// maxErrorBodyLen caps the response body captured in delivery errors.
	maxErrorBodyLen = 200

	webhookHost       = "hooks.slack.com"
	webhookPathPrefix = "services"
	webhookPathParts  = 4
)

// Block Kit types.
const (
	BlockTypeHeader  = "header"
	BlockTypeSection = "section"
	BlockTypeContext = "context"
	BlockTypeDivider = "divider"

	TextTypePlain    = "plain_text"
	TextTypeMarkdown = "mrkdwn"
)
