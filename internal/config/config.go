// Package config loads shotbridge configuration from YAML with sane
// defaults for every knob.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Config is the effective shotbridge configuration.
type Config struct {
	// PaddingPx is the margin added around a window rectangle before capture.
	PaddingPx int `yaml:"padding_px"`
	// SettleDelayMs is the wait after foregrounding a window before the
	// screen copy runs.
	SettleDelayMs int `yaml:"settle_delay_ms"`
	// RestorePollIntervalMs and RestorePollAttempts bound the wait for a
	// minimized window to restore.
	RestorePollIntervalMs int `yaml:"restore_poll_interval_ms"`
	RestorePollAttempts   int `yaml:"restore_poll_attempts"`
	// OutputFolder is the default destination for screenshots. Empty means
	// a "screenshots" directory under the user's home.
	OutputFolder string `yaml:"output_folder"`
	// ImageFormat is the default output encoding: png or bmp.
	ImageFormat string `yaml:"image_format"`

	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PaddingPx:             10,
		SettleDelayMs:         300,
		RestorePollIntervalMs: 100,
		RestorePollAttempts:   20,
		ImageFormat:           "png",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "shotbridge", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads configuration from path, overlaying the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the capture engine cannot work with.
func (c *Config) Validate() error {
	if c.PaddingPx < 0 {
		return fmt.Errorf("padding_px must be >= 0, got %d", c.PaddingPx)
	}
	if c.SettleDelayMs < 0 {
		return fmt.Errorf("settle_delay_ms must be >= 0, got %d", c.SettleDelayMs)
	}
	if c.RestorePollIntervalMs <= 0 {
		return fmt.Errorf("restore_poll_interval_ms must be > 0, got %d", c.RestorePollIntervalMs)
	}
	if c.RestorePollAttempts <= 0 {
		return fmt.Errorf("restore_poll_attempts must be > 0, got %d", c.RestorePollAttempts)
	}
	switch c.ImageFormat {
	case "png", "bmp":
	default:
		return fmt.Errorf("image_format must be png or bmp, got %q", c.ImageFormat)
	}
	return nil
}
