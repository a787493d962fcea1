package configs_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2y/acapyclient/configs"
	"github.com/i2y/acapyclient/pkg/client"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acapy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8031", cfg.AdminURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.RaiseOnUnexpectedStatus)
	assert.Equal(t, "http://localhost:8031/api/docs/swagger.json", cfg.SwaggerURL())
	assert.Equal(t, slog.LevelInfo, cfg.ParsedLogLevel())
	assert.Empty(t, cfg.Headers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ACAPY_ADMIN_URL", "http://agent:9031/")
	t.Setenv("ACAPY_API_KEY", "secret")
	t.Setenv("ACAPY_TIMEOUT", "2s")
	t.Setenv("ACAPY_RAISE_ON_UNEXPECTED_STATUS", "true")
	t.Setenv("ACAPY_LOG_LEVEL", "debug")

	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://agent:9031/", cfg.AdminURL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.True(t, cfg.RaiseOnUnexpectedStatus)
	assert.Equal(t, slog.LevelDebug, cfg.ParsedLogLevel())
	assert.Equal(t, "http://agent:9031/api/docs/swagger.json", cfg.SwaggerURL())
}

func TestLoad_ProfileFile(t *testing.T) {
	path := writeProfile(t, `
admin_url: http://from-file:8031
api_key: file-key
headers:
  X-Tenant: acme
cookies:
  session: abc
`)
	t.Setenv("ACAPY_CONFIG_FILE", path)

	cfg, err := configs.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://from-file:8031", cfg.AdminURL)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, map[string]string{"X-Tenant": "acme"}, cfg.Headers)
	assert.Equal(t, map[string]string{"session": "abc"}, cfg.Cookies)

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("ACAPY_ADMIN_URL", "http://from-env:8031")
		cfg, err := configs.Load()
		require.NoError(t, err)
		assert.Equal(t, "http://from-env:8031", cfg.AdminURL)
		assert.Equal(t, "file-key", cfg.APIKey)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("ACAPY_CONFIG_FILE", filepath.Join(t.TempDir(), "none.yaml"))
		_, err := configs.Load()
		assert.Error(t, err)
	})
	t.Run("malformed file", func(t *testing.T) {
		t.Setenv("ACAPY_CONFIG_FILE", writeProfile(t, "headers: [unclosed"))
		_, err := configs.Load()
		assert.Error(t, err)
	})
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("ACAPY_TIMEOUT", "soon")
		_, err := configs.Load()
		assert.Error(t, err)
	})
}

func TestConfig_ParsedLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := configs.Config{LogLevel: in}
		assert.Equal(t, want, cfg.ParsedLogLevel(), in)
	}
}

func TestConfig_ClientOptions(t *testing.T) {
	cfg := configs.Config{
		AdminURL: "http://agent:8031",
		APIKey:   "secret",
		Timeout:  time.Second,
		Headers:  map[string]string{"X-Tenant": "acme"},
		Cookies:  map[string]string{"session": "abc"},
	}
	c := client.New(cfg.AdminURL, cfg.ClientOptions(nil)...)

	assert.Equal(t, time.Second, c.Timeout())
	assert.Equal(t, "secret", c.Headers().Get(client.APIKeyHeader))
	assert.Equal(t, "acme", c.Headers().Get("X-Tenant"))
	require.Len(t, c.Cookies(), 1)
	assert.Equal(t, "session", c.Cookies()[0].Name)
}
