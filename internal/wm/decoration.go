package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/go-xwm/xwm/internal/registry"
	"github.com/go-xwm/xwm/internal/x11"
)

const (
	titleEventMask = xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskButton1Motion |
		xproto.EventMaskExposure

	frameEventMask = xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskButton1Motion |
		xproto.EventMaskFocusChange |
		xproto.EventMaskSubstructureRedirect |
		xproto.EventMaskSubstructureNotify
)

// Frame wraps client in a newly-created frame+title pair and
// reparents the client inside the frame. Idempotent: a client already
// present in the registry is left untouched.
func (wm *WM) Frame(client xproto.Window) error {
	if _, ok := wm.reg.LookupByClient(registry.WindowID(client)); ok {
		return nil
	}

	geom, err := wm.conn.Geometry(client)
	if err != nil {
		return fmt.Errorf("could not fetch client geometry: %w", err)
	}

	inner := uint16(wm.geo.InnerBorder)
	titleH := uint16(wm.geo.TitleBarHeight)
	titleRect := x11.Rect{
		X: geom.X, Y: geom.Y,
		Width:  geom.Width - 2*inner,
		Height: titleH - 2*inner,
	}
	title, err := wm.conn.CreateWindow(wm.conn.Root, titleRect, uint16(wm.geo.InnerBorder),
		wm.colors.InactiveTitle, wm.colors.InactiveTitleBorder, uint32(titleEventMask))
	if err != nil {
		return fmt.Errorf("could not create title window: %w", err)
	}

	frameBorder := int32(wm.geo.FrameBorder)
	frameX := maxInt32(0, int32(geom.X)-frameBorder)
	frameY := maxInt32(0, int32(geom.Y)-(int32(wm.geo.TitleBarHeight)+frameBorder))
	frameRect := x11.Rect{
		X: int16(frameX), Y: int16(frameY),
		Width:  geom.Width,
		Height: geom.Height + uint16(wm.geo.TitleBarHeight),
	}
	frame, err := wm.conn.CreateWindow(wm.conn.Root, frameRect, uint16(wm.geo.FrameBorder),
		wm.colors.WindowBackground, wm.colors.InactiveFrame, uint32(frameEventMask))
	if err != nil {
		wm.conn.Destroy(title)
		return fmt.Errorf("could not create frame window: %w", err)
	}

	wm.conn.DefineCursor(title, wm.cursors.TitleDrag)
	wm.conn.DefineCursor(frame, wm.cursors.FrameResize)

	if err := wm.conn.Reparent(title, frame, 0, 0); err != nil {
		wm.conn.Destroy(frame)
		wm.conn.Destroy(title)
		return fmt.Errorf("could not reparent title into frame: %w", err)
	}
	if err := wm.conn.Reparent(client, frame, 0, int16(wm.geo.TitleBarHeight)); err != nil {
		wm.conn.Destroy(frame)
		wm.conn.Destroy(title)
		return fmt.Errorf("could not reparent client into frame: %w", err)
	}

	if err := wm.conn.Map(title); err != nil {
		return fmt.Errorf("could not map title: %w", err)
	}
	if err := wm.conn.Map(frame); err != nil {
		return fmt.Errorf("could not map frame: %w", err)
	}

	wm.conn.AddToSaveSet(client)
	wm.conn.GrabFocusTrap(client)

	wm.reg.Insert(registry.Triple{
		Client: registry.WindowID(client),
		Frame:  registry.WindowID(frame),
		Title:  registry.WindowID(title),
	})
	return nil
}

// Unframe unmaps and destroys the frame (which destroys the title as
// its child) and removes the client from the registry. The client
// itself is not destroyed: the server reparents it back to the root
// because it's in the save-set.
func (wm *WM) Unframe(client xproto.Window) {
	t, ok := wm.reg.LookupByClient(registry.WindowID(client))
	if !ok {
		return
	}
	wm.conn.Unmap(xproto.Window(t.Frame))
	wm.conn.Destroy(xproto.Window(t.Frame))
	wm.reg.RemoveByClient(registry.WindowID(client))
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
