package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "PORTFOLIO_PORT", "PORTFOLIO_MODE", "PORTFOLIO_LOG_LEVEL", "PORTFOLIO_LOG_HUMAN", "PORTFOLIO_CONTENT_PATH"} {
		if v, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { os.Setenv(key, v) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\nmode: debug\ncontent_path: content.yaml\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.Mode)
	assert.Equal(t, "content.yaml", cfg.ContentPath)
	assert.Equal(t, "info", cfg.LogLevel)

	t.Setenv("PORT", "7000")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)

	t.Setenv("PORTFOLIO_PORT", "7100")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")
	t.Setenv("PORTFOLIO_LOG_HUMAN", "false")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogHuman)
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearEnv(t)

	t.Setenv("PORTFOLIO_MODE", "staging")
	_, err := Load("")
	require.Error(t, err)

	t.Setenv("PORTFOLIO_MODE", "release")
	t.Setenv("PORTFOLIO_PORT", "70000")
	_, err = Load("")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
