package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := LoadFrom(map[string]string{"SESSION_SECRET": "secret"})
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.GetAddr())
		assert.Equal(t, "log", cfg.GetRelayProvider())
		assert.Equal(t, "contact_inquiry", cfg.GetRelayTemplateInquiry())
		assert.Equal(t, "contact_quick", cfg.GetRelayTemplateQuick())
		assert.Equal(t, 10*time.Second, cfg.GetRelayTimeout())
		assert.Equal(t, 10, cfg.GetContactRateLimit())
		assert.False(t, cfg.GetContentWatch())
		assert.False(t, cfg.IsProduction())
	})

	t.Run("requires a session secret", func(t *testing.T) {
		_, err := LoadFrom(map[string]string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SESSION_SECRET")
	})

	t.Run("rejects unknown relay providers", func(t *testing.T) {
		_, err := LoadFrom(map[string]string{
			"SESSION_SECRET": "secret",
			"RELAY_PROVIDER": "pigeon",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pigeon")
	})

	t.Run("parses overrides", func(t *testing.T) {
		cfg, err := LoadFrom(map[string]string{
			"SESSION_SECRET":     "secret",
			"APP_ENV":            "production",
			"RELAY_PROVIDER":     "emailjs",
			"RELAY_PUBLIC_KEY":   "pk_123",
			"RELAY_TIMEOUT":      "3s",
			"CONTACT_RATE_LIMIT": "4",
			"CONTENT_WATCH":      "true",
		})
		require.NoError(t, err)

		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "emailjs", cfg.GetRelayProvider())
		assert.Equal(t, "pk_123", cfg.GetRelayPublicKey())
		assert.Equal(t, 3*time.Second, cfg.GetRelayTimeout())
		assert.Equal(t, 4, cfg.GetContactRateLimit())
		assert.True(t, cfg.GetContentWatch())
	})

	t.Run("rejects a non-positive rate limit", func(t *testing.T) {
		_, err := LoadFrom(map[string]string{
			"SESSION_SECRET":     "secret",
			"CONTACT_RATE_LIMIT": "0",
		})
		require.Error(t, err)
	})
}
