package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/librakit/pkg/email"
)

func validConfig() email.Config {
	return email.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "desk@example.com",
		SupportEmail:         "support@example.com",
	}
}

func TestNewPostmarkClientConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*email.Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *email.Config) {},
		},
		{
			name:   "support email is optional",
			mutate: func(c *email.Config) { c.SupportEmail = "" },
		},
		{
			name:    "missing server token",
			mutate:  func(c *email.Config) { c.PostmarkServerToken = "" },
			wantErr: true,
		},
		{
			name:    "missing account token",
			mutate:  func(c *email.Config) { c.PostmarkAccountToken = "" },
			wantErr: true,
		},
		{
			name:    "missing sender email",
			mutate:  func(c *email.Config) { c.SenderEmail = "" },
			wantErr: true,
		},
		{
			name:    "malformed sender email",
			mutate:  func(c *email.Config) { c.SenderEmail = "nope" },
			wantErr: true,
		},
		{
			name:    "malformed support email",
			mutate:  func(c *email.Config) { c.SupportEmail = "nope" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			sender, err := email.NewPostmarkClient(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, email.ErrInvalidConfig)
				assert.Nil(t, sender)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, sender)
		})
	}
}

func TestMustNewPostmarkClientPanicsOnInvalidConfig(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		email.MustNewPostmarkClient(email.Config{})
	})

	assert.NotPanics(t, func() {
		email.MustNewPostmarkClient(validConfig())
	})
}
