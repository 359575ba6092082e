package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.PaddingPx)
	assert.Equal(t, 300, cfg.SettleDelayMs)
	assert.Equal(t, 100, cfg.RestorePollIntervalMs)
	assert.Equal(t, 20, cfg.RestorePollAttempts)
	assert.Equal(t, "png", cfg.ImageFormat)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
padding_px: 4
image_format: bmp
output_folder: /mnt/c/Users/alice/shots
logging:
  level: debug
  pretty: true
`), 0o644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.PaddingPx)
	assert.Equal(t, "bmp", cfg.ImageFormat)
	assert.Equal(t, "/mnt/c/Users/alice/shots", cfg.OutputFolder)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
	assert.Equal(t, 300, cfg.SettleDelayMs, "unset keys keep defaults")
}

func TestLoadFromPathRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative padding", "padding_px: -1"},
		{"zero poll interval", "restore_poll_interval_ms: 0"},
		{"bad format", "image_format: jpeg"},
		{"malformed yaml", "padding_px: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := LoadFromPath(path)
			assert.Error(t, err)
		})
	}
}
