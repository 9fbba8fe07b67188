package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, PathsConfig{Templates: "templates", Public: "public", Locales: "locales"}, cfg.Paths)
	assert.Equal(t, 365*24*time.Hour, cfg.Prefs.MaxAge)
	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Dev)
	assert.False(t, cfg.Prod())
}

func TestLoadPortPrecedence(t *testing.T) {
	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(map[string]string{"PORT": "9000"}))
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)

	cfg, err = Load(WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(map[string]string{
		"PORT":               "9000",
		"PORTFOLIO_WEB_PORT": "9100",
	}))
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Server.Port)
}

func TestLoadEnvFileBelowEnvMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# local\nPORTFOLIO_WEB_ENV=PROD\nexport PORTFOLIO_WEB_BASE_URL=\"https://t4wr00t.dev/\"\nPORTFOLIO_WEB_LOG_LEVEL=debug\nDEV=1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(path), WithEnvMap(map[string]string{"PORTFOLIO_WEB_LOG_LEVEL": "warn"}))
	require.NoError(t, err)
	assert.True(t, cfg.Prod())
	assert.True(t, cfg.Dev)
	assert.Equal(t, "https://t4wr00t.dev", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load(WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(map[string]string{
		"PORTFOLIO_WEB_PORT":         "http",
		"PORTFOLIO_WEB_READ_TIMEOUT": "soon",
	}))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 2)
}
