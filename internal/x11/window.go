package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// CreateWindow creates a simple InputOutput child of parent at the
// given geometry with the given border width, background pixel,
// border pixel and event mask: the shape every window the decoration
// builder creates needs.
func (c *Conn) CreateWindow(parent xproto.Window, r Rect, borderWidth uint16, background, border uint32, eventMask uint32) (xproto.Window, error) {
	wid, err := xproto.NewWindowId(c.X)
	if err != nil {
		return 0, err
	}
	err = xproto.CreateWindowChecked(
		c.X, c.Screen.RootDepth, wid, parent,
		r.X, r.Y, r.Width, r.Height, borderWidth,
		xproto.WindowClassInputOutput, c.Screen.RootVisual,
		xproto.CwBackPixel|xproto.CwBorderPixel|xproto.CwEventMask,
		[]uint32{background, border, eventMask},
	).Check()
	if err != nil {
		return 0, fmt.Errorf("create window: %w", err)
	}
	return wid, nil
}

// SelectInput updates a window's event mask.
func (c *Conn) SelectInput(win xproto.Window, mask uint32) error {
	return xproto.ChangeWindowAttributesChecked(c.X, win, xproto.CwEventMask, []uint32{mask}).Check()
}

// Reparent reparents win into parent at the given offset.
func (c *Conn) Reparent(win, parent xproto.Window, x, y int16) error {
	return xproto.ReparentWindowChecked(c.X, win, parent, x, y).Check()
}

// Map maps a window.
func (c *Conn) Map(win xproto.Window) error {
	return xproto.MapWindowChecked(c.X, win).Check()
}

// Unmap unmaps a window, tolerating the window already being gone:
// calls against a just-destroyed window are expected and non-fatal.
func (c *Conn) Unmap(win xproto.Window) {
	xproto.UnmapWindow(c.X, win)
}

// Destroy destroys a window. Unchecked: the decoration builder calls
// this on a frame that may already be torn down by an unrelated
// DestroyNotify race, and doesn't need confirmation to proceed.
func (c *Conn) Destroy(win xproto.Window) {
	xproto.DestroyWindow(c.X, win)
}

// AddToSaveSet adds win to the server's save-set: if the manager dies,
// the server reparents saved windows back to the root instead of
// destroying them.
func (c *Conn) AddToSaveSet(win xproto.Window) {
	xproto.ChangeSaveSet(c.X, xproto.SetModeInsert, win)
}

// GrabFocusTrap installs the passive left-button focus-trap grab: a
// synchronous-async grab under AnyModifier, with no cursor override
// and no pointer confinement.
func (c *Conn) GrabFocusTrap(win xproto.Window) {
	xproto.GrabButton(
		c.X, false, win,
		uint16(xproto.EventMaskButtonPress),
		xproto.GrabModeSync, xproto.GrabModeAsync,
		0, 0,
		xproto.ButtonIndex1, xproto.ModMaskAny,
	)
}

// UngrabFocusTrap releases the focus-trap grab on a client.
func (c *Conn) UngrabFocusTrap(win xproto.Window) {
	xproto.UngrabButton(c.X, xproto.ButtonIndex1, win, xproto.ModMaskAny)
}

// AllowEvents replays a synchronously-grabbed button press to the
// client once the focus trap has done its job, so the click that
// promoted focus still reaches the application underneath it.
func (c *Conn) AllowEvents(mode byte, time xproto.Timestamp) {
	xproto.AllowEvents(c.X, mode, time)
}

// GrabServer/UngrabServer bracket the startup reconciliation walk: they
// prevent a race between QueryTree and a client mapping a new window
// mid-walk.
func (c *Conn) GrabServer() error   { return xproto.GrabServerChecked(c.X).Check() }
func (c *Conn) UngrabServer() error { return xproto.UngrabServerChecked(c.X).Check() }

// QueryChildren lists the root's current children, used both at
// startup and nowhere else: this system manages a single display, so
// there is only ever one root to walk.
func (c *Conn) QueryChildren() ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(c.X, c.Root).Reply()
	if err != nil {
		return nil, err
	}
	return reply.Children, nil
}

// SetInputFocus sets input focus to win with RevertToNone and the
// given time.
func (c *Conn) SetInputFocus(win xproto.Window, t xproto.Timestamp) error {
	return xproto.SetInputFocusChecked(c.X, xproto.InputFocusNone, win, t).Check()
}

// Raise restacks a window above its siblings.
func (c *Conn) Raise(win xproto.Window) {
	mask := uint16(xproto.ConfigWindowStackMode)
	xproto.ConfigureWindow(c.X, win, mask, []uint32{xproto.StackModeAbove})
}

// SetBorderPixel sets a window's border color. Checked: callers treat
// a failure here as the frame having been destroyed asynchronously,
// and abort the remaining repaints.
func (c *Conn) SetBorderPixel(win xproto.Window, pixel uint32) error {
	return xproto.ChangeWindowAttributesChecked(c.X, win, xproto.CwBorderPixel, []uint32{pixel}).Check()
}

// SetBackgroundPixel sets a window's background color.
func (c *Conn) SetBackgroundPixel(win xproto.Window, pixel uint32) {
	xproto.ChangeWindowAttributes(c.X, win, xproto.CwBackPixel, []uint32{pixel})
}

// ClearWindow clears a window to its current background, forcing a
// repaint. Used after a background color change before redrawing the
// title text.
func (c *Conn) ClearWindow(win xproto.Window) {
	xproto.ClearArea(c.X, false, win, 0, 0, 0, 0)
}

// ApplyConfigureRequest mirrors an XConfigureRequestEvent's requested
// geometry onto a window, honoring only the fields named in
// valueMask.
func (c *Conn) ApplyConfigureRequest(win xproto.Window, valueMask uint16, x, y int16, w, h, borderWidth uint16, sibling xproto.Window, stackMode byte) {
	var mask uint16
	var values []uint32
	if valueMask&xproto.ConfigWindowX != 0 {
		mask |= xproto.ConfigWindowX
		values = append(values, uint32(x))
	}
	if valueMask&xproto.ConfigWindowY != 0 {
		mask |= xproto.ConfigWindowY
		values = append(values, uint32(y))
	}
	if valueMask&xproto.ConfigWindowWidth != 0 {
		mask |= xproto.ConfigWindowWidth
		values = append(values, uint32(w))
	}
	if valueMask&xproto.ConfigWindowHeight != 0 {
		mask |= xproto.ConfigWindowHeight
		values = append(values, uint32(h))
	}
	if valueMask&xproto.ConfigWindowBorderWidth != 0 {
		mask |= xproto.ConfigWindowBorderWidth
		values = append(values, uint32(borderWidth))
	}
	if valueMask&xproto.ConfigWindowSibling != 0 {
		mask |= xproto.ConfigWindowSibling
		values = append(values, uint32(sibling))
	}
	if valueMask&xproto.ConfigWindowStackMode != 0 {
		mask |= xproto.ConfigWindowStackMode
		values = append(values, uint32(stackMode))
	}
	if mask == 0 {
		return
	}
	xproto.ConfigureWindow(c.X, win, mask, values)
}
