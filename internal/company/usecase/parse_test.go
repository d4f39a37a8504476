package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shield-srv/internal/company"
)

func TestParseBrandWebhookMap(t *testing.T) {
	t.Run("empty clears the map", func(t *testing.T) {
		m, err := parseBrandWebhookMap("")
		require.NoError(t, err)
		assert.Nil(t, m)

		m, err = parseBrandWebhookMap("   \n  ")
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("json object", func(t *testing.T) {
		m, err := parseBrandWebhookMap(`{"acme": "https://hooks.slack.com/services/T1/B1/x", "globex": "https://hooks.slack.com/services/T2/B2/y"}`)
		require.NoError(t, err)
		assert.Len(t, m, 2)
		assert.Equal(t, "https://hooks.slack.com/services/T1/B1/x", m["acme"])
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseBrandWebhookMap(`{"acme": `)
		assert.ErrorIs(t, err, company.ErrInvalidBrandMap)
	})

	t.Run("key value lines", func(t *testing.T) {
		m, err := parseBrandWebhookMap("acme = https://hooks.slack.com/services/T1/B1/x\n\nglobex=https://hooks.slack.com/services/T2/B2/y\n")
		require.NoError(t, err)
		assert.Len(t, m, 2)
		assert.Equal(t, "https://hooks.slack.com/services/T2/B2/y", m["globex"])
	})

	t.Run("line without separator", func(t *testing.T) {
		_, err := parseBrandWebhookMap("acme https://hooks.slack.com/services/T1/B1/x")
		assert.ErrorIs(t, err, company.ErrInvalidBrandMap)
	})

	t.Run("line with empty value", func(t *testing.T) {
		_, err := parseBrandWebhookMap("acme=")
		assert.ErrorIs(t, err, company.ErrInvalidBrandMap)
	})
}
