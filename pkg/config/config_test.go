package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
environment: production
client:
  timeout: 5s
  proxy_url: http://proxy.local:3128
bridge:
  mode: pooled
  workers: 4
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", c.Environment)
	assert.Equal(t, 5*time.Second, c.Client.Timeout)
	assert.Equal(t, "http://proxy.local:3128", c.Client.ProxyURL)
	assert.Equal(t, "https://query2.finance.yahoo.com", c.Client.BaseURL)
	assert.Equal(t, BridgePooled, c.Bridge.Mode)
	assert.Equal(t, 4, c.Bridge.Workers)
	assert.Equal(t, 8080, c.Server.Port)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "bridge:\n  mode: shared\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "bridge.mode")

	path = writeConfig(t, "log_collector:\n  enabled: true\n")
	_, err = Load(path)
	assert.ErrorContains(t, err, "log_collector.brokers")
}

func TestLoadWithEnvMissingFileFallsBackToDefault(t *testing.T) {
	t.Setenv("BRIDGE_MODE", "pooled")
	t.Setenv("CLIENT_BASE_URL", "http://127.0.0.1:9999")

	c, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, BridgePooled, c.Bridge.Mode)
	assert.Equal(t, "http://127.0.0.1:9999", c.Client.BaseURL)
}

func TestServerCORSAndRateLimit(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"*"}, c.Server.CORS.AllowOrigins)
	assert.Equal(t, []string{"GET", "OPTIONS"}, c.Server.CORS.AllowMethods)
	assert.Equal(t, 5.0, c.Server.RateLimit.RPS)

	path := writeConfig(t, `
server:
  cors:
    allow_origins: ["https://dash.local"]
  rate_limit:
    rps: 0
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://dash.local"}, c.Server.CORS.AllowOrigins)
	assert.Equal(t, []string{"GET", "OPTIONS"}, c.Server.CORS.AllowMethods)
	assert.Zero(t, c.Server.RateLimit.RPS)

	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.local,https://b.local")
	c, err = LoadWithEnv(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.local", "https://b.local"}, c.Server.CORS.AllowOrigins)

	bad := writeConfig(t, "server:\n  rate_limit:\n    rps: -1\n")
	_, err = Load(bad)
	assert.ErrorContains(t, err, "rate_limit")
}
