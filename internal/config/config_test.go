package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("FIREFLY_BASE_URL", "https://firefly.example.com")
	t.Setenv("FIREFLY_TOKEN", "token-123")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://firefly.example.com", cfg.BaseURL)
	assert.Equal(t, "token-123", cfg.Token)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.HTTPAddr)
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("FIREFLY_BASE_URL", "https://firefly.example.com/")
	t.Setenv("FIREFLY_TOKEN", "token-123")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://firefly.example.com", cfg.BaseURL)
}

func TestLoad_MissingBaseURL(t *testing.T) {
	t.Setenv("FIREFLY_BASE_URL", "")
	t.Setenv("FIREFLY_TOKEN", "token-123")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RelativeBaseURL(t *testing.T) {
	t.Setenv("FIREFLY_BASE_URL", "firefly.example.com")
	t.Setenv("FIREFLY_TOKEN", "token-123")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RequiresSomeCredential(t *testing.T) {
	t.Setenv("FIREFLY_BASE_URL", "https://firefly.example.com")
	t.Setenv("FIREFLY_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_CredentialStore(t *testing.T) {
	t.Setenv("FIREFLY_BASE_URL", "https://firefly.example.com")
	t.Setenv("FIREFLY_TOKEN", "")
	t.Setenv("FIREFLY_CREDENTIAL_FILE", "/var/lib/lampyrid/credentials")
	t.Setenv("FIREFLY_CREDENTIAL_SECRET", "sealing-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/lampyrid/credentials", cfg.CredentialFile)
}

func TestLoad_CredentialStoreRequiresSecret(t *testing.T) {
	t.Setenv("FIREFLY_BASE_URL", "https://firefly.example.com")
	t.Setenv("FIREFLY_TOKEN", "")
	t.Setenv("FIREFLY_CREDENTIAL_FILE", "/var/lib/lampyrid/credentials")
	t.Setenv("FIREFLY_CREDENTIAL_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FIREFLY_TIMEOUT", "5s")
	t.Setenv("FIREFLY_MAX_RETRIES", "7")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MCP_HTTP_ADDR", ":8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 7, cfg.MaxRetries)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestLoad_InvalidOverrides(t *testing.T) {
	setRequiredEnv(t)

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("FIREFLY_TIMEOUT", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("negative retries", func(t *testing.T) {
		t.Setenv("FIREFLY_MAX_RETRIES", "-1")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})
}
