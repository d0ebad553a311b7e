package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesSubsetOfFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xwm.toml")
	contents := `
[geometry]
titlebar_height = 24

[colors]
active_frame = "royal blue"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 24, cfg.Geometry.TitleBarHeight)
	require.Equal(t, 3, cfg.Geometry.FrameBorder) // untouched, still default
	require.Equal(t, "royal blue", cfg.Colors.ActiveFrame)
	require.Equal(t, "", cfg.Colors.InactiveFrame) // untouched
}

func TestLoadParseErrorFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xwm.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid toml :::"), 0o644))

	cfg, err := Load(path)
	require.Error(t, err)
	require.Equal(t, Default(), cfg)
}
