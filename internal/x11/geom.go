package x11

import "github.com/BurntSushi/xgb/xproto"

// Rect is an absolute window geometry: top-left plus size.
type Rect struct {
	X, Y          int16
	Width, Height uint16
}

// Geometry fetches a window's current geometry.
func (c *Conn) Geometry(win xproto.Window) (Rect, error) {
	reply, err := xproto.GetGeometry(c.X, xproto.Drawable(win)).Reply()
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: reply.X, Y: reply.Y, Width: reply.Width, Height: reply.Height}, nil
}

// OverrideRedirect reports whether a window has set override-redirect,
// which excludes it from management both at MapRequest time and during
// startup reconciliation.
func (c *Conn) OverrideRedirect(win xproto.Window) bool {
	attr, err := xproto.GetWindowAttributes(c.X, win).Reply()
	if err != nil {
		// A window that can't answer GetWindowAttributes is either
		// already gone or not ours to manage either way.
		return true
	}
	return attr.OverrideRedirect
}

// ScreenRect returns the root window's geometry, used as the screen
// bounds for edge-snap.
func (c *Conn) ScreenRect() Rect {
	return Rect{X: 0, Y: 0, Width: c.Screen.WidthInPixels, Height: c.Screen.HeightInPixels}
}

// ConfigureMoveResize issues an unchecked XMoveResizeWindow-equivalent.
// Unchecked because this runs on every drag motion event; a frame torn
// down mid-drag surfaces its error later through the event loop
// instead of blocking this call on a reply nobody needs.
func (c *Conn) ConfigureMoveResize(win xproto.Window, x, y int32, w, h uint32) {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{uint32(int32ToUint32(x)), uint32(int32ToUint32(y)), w, h}
	xproto.ConfigureWindow(c.X, win, mask, values)
}

// ConfigureResize issues an unchecked XResizeWindow-equivalent.
func (c *Conn) ConfigureResize(win xproto.Window, w, h uint32) {
	mask := uint16(xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	xproto.ConfigureWindow(c.X, win, mask, []uint32{w, h})
}

// int32ToUint32 reinterprets a signed coordinate as the wire's uint32
// value, matching how CONFIGURE_WINDOW passes signed coordinates as
// 32-bit values.
func int32ToUint32(v int32) uint32 { return uint32(v) }
