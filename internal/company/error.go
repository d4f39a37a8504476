package company

import "errors"

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrBrandNotFound      = errors.New("brand not found")
	ErrBrandExists        = errors.New("brand already exists")
	ErrAdAccountExists    = errors.New("ad account already attached")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrFieldRequired      = errors.New("field required")
	ErrInvalidTimezone    = errors.New("invalid timezone")
	ErrInvalidQuietHours  = errors.New("quiet hours must be HH:MM")
	ErrInvalidWebhookURL  = errors.New("invalid slack webhook url")
	ErrInvalidBrandMap    = errors.New("invalid brand webhook map")
	ErrNoWebhook          = errors.New("no webhook configured")
	ErrMetaNotConnected   = errors.New("meta access token not configured")
)
