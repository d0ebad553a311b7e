package x11

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
)

// ColorSet is the eight named pixel values the window manager paints
// decorations with: active/inactive x frame/title/title-border, plus
// the desktop and window backgrounds.
type ColorSet struct {
	ActiveFrame         uint32
	InactiveFrame       uint32
	ActiveTitle         uint32
	InactiveTitle       uint32
	ActiveTitleBorder   uint32
	InactiveTitleBorder uint32
	Desktop             uint32
	WindowBackground    uint32
}

// AllocColor parses and allocates a color by name against the screen's
// default colormap. Failure is logged and the screen's black pixel is
// returned so the caller always has a usable value.
func (c *Conn) AllocColor(name string) uint32 {
	reply, err := xproto.AllocNamedColor(c.X, c.Screen.DefaultColormap, uint16(len(name)), name).Reply()
	if err != nil {
		slog.Error("could not allocate color", "name", name, "error", err)
		return c.Screen.BlackPixel
	}
	return reply.Pixel
}

// SetRootBackground sets and clears the root window's background,
// forcing a repaint.
func (c *Conn) SetRootBackground(pixel uint32) error {
	err := xproto.ChangeWindowAttributesChecked(c.X, c.Root, xproto.CwBackPixel, []uint32{pixel}).Check()
	if err != nil {
		return err
	}
	return xproto.ClearAreaChecked(c.X, false, c.Root, 0, 0, 0, 0).Check()
}
