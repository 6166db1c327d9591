package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv
const (
	EnvConfigPath = "RECIPE_BOOK_CONFIG"
	EnvLogLevel   = "RECIPE_BOOK_LOG_LEVEL"
)

// DefaultConfigPath is read when no path is given
const DefaultConfigPath = "config.yaml"

// WindowConfig holds the initial window geometry
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig holds logger options
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// AppConfig is the startup configuration read from config.yaml
type AppConfig struct {
	Window   WindowConfig `yaml:"window"`
	Log      LogConfig    `yaml:"log"`
	Language string       `yaml:"language"`
}

// Defaults returns the configuration used when no file is present
func Defaults() AppConfig {
	return AppConfig{
		Window: WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults.
// A missing file is not an error.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// ApplyEnv overrides fields from the environment
func (c *AppConfig) ApplyEnv() {
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		c.Log.Level = level
	}
}

// normalize replaces unusable values with defaults
func (c *AppConfig) normalize() {
	if c.Window.Width < MinWindowWidth {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height < MinWindowHeight {
		c.Window.Height = DefaultWindowHeight
	}
	c.Language = strings.TrimSpace(c.Language)
}

// ConfigPath returns the config file path from flag or environment
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultConfigPath
}
