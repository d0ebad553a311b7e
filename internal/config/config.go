// Package config loads the optional, best-effort geometry/color
// overrides for the window manager. It takes no CLI arguments and has
// no required configuration; this file, if present, only retunes the
// built-in frame/titlebar/border sizes and the named colors.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Geometry overrides the built-in frame border, titlebar height and
// inner border widths, in pixels.
type Geometry struct {
	FrameBorder    int `toml:"frame_border"`
	TitleBarHeight int `toml:"titlebar_height"`
	InnerBorder    int `toml:"inner_border"`
}

// Colors overrides the eight named colors the window manager paints
// frames and titlebars with. Any field left empty falls back to the
// corresponding built-in name.
type Colors struct {
	ActiveFrame         string `toml:"active_frame"`
	InactiveFrame       string `toml:"inactive_frame"`
	ActiveTitle         string `toml:"active_title"`
	InactiveTitle       string `toml:"inactive_title"`
	ActiveTitleBorder   string `toml:"active_title_border"`
	InactiveTitleBorder string `toml:"inactive_title_border"`
	Desktop             string `toml:"desktop"`
	WindowBackground    string `toml:"window_background"`
}

// Config is the decoded form of xwm.toml.
type Config struct {
	Geometry Geometry `toml:"geometry"`
	Colors   Colors   `toml:"colors"`
}

// Default returns the built-in geometry constants. The Colors fields
// are left empty; callers resolve an empty name to the built-in
// default themselves (see wm.WM.loadColorsFromConfig), since only the
// window manager knows the mapping from role to default name.
func Default() Config {
	return Config{
		Geometry: Geometry{FrameBorder: 3, TitleBarHeight: 20, InnerBorder: 1},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/xwm/xwm.toml, falling back to
// ~/.config/xwm/xwm.toml exactly as os.UserConfigDir documents.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "xwm", "xwm.toml")
}

// Load reads path if present, overlaying any set fields onto the
// built-in defaults. A missing file is not an error: it returns
// Default() with a nil error, since having no config file is the
// expected common case. A present-but-unparseable file returns the
// defaults along with the parse error, so the caller can log it at
// Warn and carry on: bad config is never fatal.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("could not parse %s: %w", path, err)
	}
	return cfg, nil
}
