package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scrollhide"), 0o755))
	raw := "[bar]\nheight = 96\nduration_ms = 450\n\n[scroll]\nrow_count = 12\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scrollhide", "config.toml"), []byte(raw), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 96.0, cfg.Bar.Height)
	assert.Equal(t, 450, cfg.Bar.DurationMs)
	assert.Equal(t, 12, cfg.Scroll.RowCount)
	// Untouched sections keep defaults.
	assert.Equal(t, 1280, cfg.UI.Width)
	assert.Equal(t, 60.0, cfg.Scroll.WheelSpeed)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Bar.Height = 48
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 48.0, loaded.Bar.Height)
}
