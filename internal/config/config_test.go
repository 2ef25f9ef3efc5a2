package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("altart_base_url", "")
	t.Setenv("altart_headless", "")
	t.Setenv("altart_verify_published", "")

	cfg := Load()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.True(t, cfg.Headless)
	assert.False(t, cfg.VerifyPublished)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("altart_base_url", "http://localhost:3000")
	t.Setenv("altart_email", "user@example.com")
	t.Setenv("altart_password", "hunter2")
	t.Setenv("altart_headless", "false")
	t.Setenv("altart_verify_published", "1")

	cfg := Load()

	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.False(t, cfg.Headless)
	assert.True(t, cfg.VerifyPublished)
	assert.Equal(t, "user@example.com", cfg.Credentials().Email)
	assert.Equal(t, "hunter2", cfg.Credentials().Password)

	opts := cfg.SessionOptions()
	assert.Equal(t, 1920, opts.Width)
	assert.Equal(t, 980, opts.Height)
	assert.Equal(t, "http://localhost:3000", opts.BaseURL)
}
