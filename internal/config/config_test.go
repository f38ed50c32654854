package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddress)
	assert.Equal(t, dir, cfg.DataDir)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.OtelEnabled)
	assert.Equal(t, "tbgen-dashboard", cfg.OtelServiceName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("LISTEN_ADDRESS", ":9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "11")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddress)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(11), int64(cfg.ShutdownTimeout.Seconds()))
}

func TestLoadMissingDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "/definitely/not/a/dir")
	_, err := Load()
	assert.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	assert.Equal(t, "value", GetEnv("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SOME_OTHER_KEY", "fallback"))
}
