package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 30*time.Minute, cfg.CartIdleTTL)
	assert.Equal(t, "templates", cfg.TemplatesDir)
	assert.NotEmpty(t, cfg.APIBaseURL)
	assert.False(t, cfg.IsProd())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_WEB_ADDR", ":9999")
	t.Setenv("STORE_WEB_API_BASE_URL", "https://api.example.com/store")
	t.Setenv("STORE_WEB_API_TIMEOUT", "3s")
	t.Setenv("STORE_WEB_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "https://api.example.com/store", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.True(t, cfg.DevMode)
}

func TestProdRequiresSigningKey(t *testing.T) {
	t.Setenv("STORE_WEB_ENV", "prod")
	t.Setenv("STORE_WEB_SESSION_SIGNING_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SIGNING_KEY")

	t.Setenv("STORE_WEB_SESSION_SIGNING_KEY", "super-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
}

func TestRejectsRelativeBaseURL(t *testing.T) {
	t.Setenv("STORE_WEB_API_BASE_URL", "/just/a/path")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absolute URL")
}
