package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1200
  height: 900
log:
  level: debug
  development: true
language: " ru "
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, AppConfig{
		Window:   WindowConfig{Width: 1200, Height: 900},
		Log:      LogConfig{Level: "debug", Development: true},
		Language: "ru",
	}, cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "log:\n  development: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultWindowWidth, cfg.Window.Width)
	assert.Equal(t, DefaultWindowHeight, cfg.Window.Height)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_TooSmallWindowNormalized(t *testing.T) {
	path := writeConfig(t, "window:\n  width: 100\n  height: 50\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight}, cfg.Window)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "window: [unclosed")

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")

	cfg := Defaults()
	cfg.ApplyEnv()
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestConfigPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultConfigPath, ConfigPath(""))
	assert.Equal(t, "custom.yaml", ConfigPath("custom.yaml"))

	t.Setenv(EnvConfigPath, "/etc/recipe-book.yaml")
	assert.Equal(t, "/etc/recipe-book.yaml", ConfigPath(""))
	assert.Equal(t, "custom.yaml", ConfigPath("custom.yaml"))
}
