package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourspace/emails/pkg/email"
)

func baseConfig() email.Config {
	return email.Config{
		SendGridAPIKey:       "SG.test",
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		DefaultFromEmail:     "Harbour.Space Events <events@harbour.space>",
		SupportEmail:         "support@harbour.space",
	}
}

func TestNewSender(t *testing.T) {
	t.Parallel()

	t.Run("sendgrid is the default provider", func(t *testing.T) {
		t.Parallel()

		s, err := email.NewSender(baseConfig())
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("postmark", func(t *testing.T) {
		t.Parallel()

		cfg := baseConfig()
		cfg.Provider = email.ProviderPostmark
		s, err := email.NewSender(cfg)
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("dev", func(t *testing.T) {
		t.Parallel()

		cfg := baseConfig()
		cfg.Provider = email.ProviderDev
		cfg.DevDir = t.TempDir()
		s, err := email.NewSender(cfg)
		require.NoError(t, err)

		dev, ok := s.(*email.DevSender)
		require.True(t, ok)
		assert.Equal(t, cfg.DevDir, dev.Dir())
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()

		cfg := baseConfig()
		cfg.Provider = "mailgun"
		s, err := email.NewSender(cfg)
		assert.ErrorIs(t, err, email.ErrUnknownProvider)
		assert.Nil(t, s)
	})

	t.Run("must panics on invalid config", func(t *testing.T) {
		t.Parallel()

		cfg := baseConfig()
		cfg.SendGridAPIKey = ""
		assert.Panics(t, func() { email.MustNewSender(cfg) })
	})
}

func TestNewSendGridClient_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(c *email.Config)
		errMsg string
	}{
		{"missing api key", func(c *email.Config) { c.SendGridAPIKey = "" }, "SendGridAPIKey is required"},
		{"missing sender", func(c *email.Config) { c.DefaultFromEmail = "" }, "DefaultFromEmail is required"},
		{"invalid sender", func(c *email.Config) { c.DefaultFromEmail = "events" }, "DefaultFromEmail must be a valid email address"},
		{"invalid support email", func(c *email.Config) { c.SupportEmail = "support" }, "SupportEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := baseConfig()
			tt.modify(&cfg)

			client, err := email.NewSendGridClient(cfg)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewPostmarkClient_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(c *email.Config)
		errMsg string
	}{
		{"missing server token", func(c *email.Config) { c.PostmarkServerToken = "" }, "PostmarkServerToken is required"},
		{"missing account token", func(c *email.Config) { c.PostmarkAccountToken = "" }, "PostmarkAccountToken is required"},
		{"missing sender", func(c *email.Config) { c.DefaultFromEmail = "" }, "DefaultFromEmail is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := baseConfig()
			tt.modify(&cfg)

			client, err := email.NewPostmarkClient(cfg)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("must panics", func(t *testing.T) {
		t.Parallel()

		cfg := baseConfig()
		cfg.PostmarkServerToken = ""
		assert.Panics(t, func() { email.MustNewPostmarkClient(cfg) })
	})
}
