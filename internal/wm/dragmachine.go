package wm

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/go-xwm/xwm/internal/drag"
	"github.com/go-xwm/xwm/internal/registry"
)

// size is a plain (width, height) pair, used for the title/client sizes
// tracked across a frame resize.
type size struct{ W, H uint16 }

// activeDrag pairs the pure tag/anchor/origin state from internal/drag
// with the window ids and running frame/title/client geometry a frame
// resize needs to compute each motion's absolute ConfigureWindow call
// without an extra round trip to the server on every event.
type activeDrag struct {
	state  drag.State
	client xproto.Window
	frame  xproto.Window
	title  xproto.Window

	frameX, frameY int32
	frameSize      size
	titleSize      size
	clientSize     size
}

// OnButtonPress dispatches a left-button press. win is the event
// window (client, title or frame); evX/evY are window-relative;
// rootX/rootY are the press's root-relative pointer position.
func (wm *WM) OnButtonPress(win xproto.Window, evX, evY, rootX, rootY int32, time xproto.Timestamp) {
	if _, ok := wm.reg.LookupByClient(registry.WindowID(win)); ok {
		wm.conn.UngrabFocusTrap(win)
		wm.conn.AllowEvents(xproto.AllowReplayPointer, time)
		wm.FocusAndRaise(win)
		return
	}

	if t, ok := wm.reg.LookupByTitle(registry.WindowID(win)); ok {
		wm.FocusAndRaise(xproto.Window(t.Client))
		frameGeom, err := wm.conn.Geometry(xproto.Window(t.Frame))
		if err != nil {
			slog.Warn("could not read frame geometry for title drag", "error", err)
			return
		}
		wm.drag = &activeDrag{
			state: drag.State{
				Kind:    drag.TitleDrag,
				AnchorX: rootX, AnchorY: rootY,
				OriginX: int32(frameGeom.X), OriginY: int32(frameGeom.Y),
			},
			client: xproto.Window(t.Client),
			frame:  xproto.Window(t.Frame),
			title:  xproto.Window(t.Title),
		}
		return
	}

	if t, ok := wm.reg.LookupByFrame(registry.WindowID(win)); ok {
		frameGeom, err := wm.conn.Geometry(xproto.Window(t.Frame))
		if err != nil {
			slog.Warn("could not read frame geometry for resize", "error", err)
			return
		}
		titleGeom, _ := wm.conn.Geometry(xproto.Window(t.Title))
		clientGeom, _ := wm.conn.Geometry(xproto.Window(t.Client))
		kind := drag.HitTest(uint32(frameGeom.Width), uint32(frameGeom.Height), evX, evY)
		wm.drag = &activeDrag{
			state: drag.State{
				Kind:    kind,
				AnchorX: rootX, AnchorY: rootY,
				OriginX: int32(frameGeom.X), OriginY: int32(frameGeom.Y),
			},
			client:     xproto.Window(t.Client),
			frame:      xproto.Window(t.Frame),
			title:      xproto.Window(t.Title),
			frameX:     int32(frameGeom.X),
			frameY:     int32(frameGeom.Y),
			frameSize:  size{frameGeom.Width, frameGeom.Height},
			titleSize:  size{titleGeom.Width, titleGeom.Height},
			clientSize: size{clientGeom.Width, clientGeom.Height},
		}
		return
	}

	// Press outside any known decoration (root, or an orphaned window):
	// clear focus instead of leaving it dangling.
	wm.activeWin = 0
	if err := wm.conn.SetInputFocus(wm.conn.Root, time); err != nil {
		slog.Warn("could not clear focus on root click", "error", err)
	}
}

// OnMotion handles a (possibly coalesced) Button1Motion event at root
// position (rootX, rootY).
func (wm *WM) OnMotion(rootX, rootY int32) {
	if wm.drag == nil {
		return
	}
	switch wm.drag.state.Kind {
	case drag.TitleDrag:
		wm.onTitleMotion(rootX, rootY)
	default:
		wm.onFrameMotion(rootX, rootY)
	}
}

func (wm *WM) onTitleMotion(rootX, rootY int32) {
	d := wm.drag
	if res, ok := drag.EdgeSnap(rootX, rootY, uint32(wm.screen.Width), uint32(wm.screen.Height), uint32(d.titleSizeOrDefault(wm)), wm.geo.FrameBorder); ok {
		wm.conn.ConfigureMoveResize(d.frame, int32(res.Frame.X), int32(res.Frame.Y), res.Frame.W, res.Frame.H)
		wm.conn.ConfigureMoveResize(d.title, int32(res.Title.X), int32(res.Title.Y), res.Title.W, res.Title.H)
		wm.conn.ConfigureMoveResize(d.client, int32(res.Client.X), int32(res.Client.Y), res.Client.W, res.Client.H)
		return
	}
	x, y := drag.TitleMove(d.state, rootX, rootY)
	xproto.ConfigureWindow(wm.conn.X, d.frame, xproto.ConfigWindowX|xproto.ConfigWindowY, []uint32{uint32(x), uint32(y)})
}

// titleSizeOrDefault reads the title's current height for the
// edge-snap geometry, falling back to the configured titlebar height
// if the read fails so a momentary server hiccup doesn't abort the
// snap.
func (d *activeDrag) titleSizeOrDefault(wm *WM) uint16 {
	g, err := wm.conn.Geometry(d.title)
	if err != nil {
		return uint16(wm.geo.TitleBarHeight)
	}
	return g.Height
}

func (wm *WM) onFrameMotion(rootX, rootY int32) {
	d := wm.drag
	delta := drag.FrameResizeDelta(d.state.Kind, d.state.AnchorX, d.state.AnchorY, rootX, rootY)

	d.frameX += delta.DX
	d.frameY += delta.DY
	d.frameSize.W = addDelta(d.frameSize.W, delta.DW)
	d.frameSize.H = addDelta(d.frameSize.H, delta.DH)
	d.titleSize.W = addDelta(d.titleSize.W, delta.DW)
	d.clientSize.W = addDelta(d.clientSize.W, delta.DW)
	d.clientSize.H = addDelta(d.clientSize.H, delta.DH)

	wm.conn.ConfigureMoveResize(d.frame, d.frameX, d.frameY, uint32(d.frameSize.W), uint32(d.frameSize.H))
	wm.conn.ConfigureResize(d.title, uint32(d.titleSize.W), uint32(d.titleSize.H))
	wm.conn.ConfigureResize(d.client, uint32(d.clientSize.W), uint32(d.clientSize.H))

	d.state.AnchorX, d.state.AnchorY = rootX, rootY
}

// addDelta applies a signed delta to an unsigned pixel size, clamping
// at 1 so a fast resize motion can never shrink a window to zero or
// negative size.
func addDelta(v uint16, delta int32) uint16 {
	n := int32(v) + delta
	if n < 1 {
		return 1
	}
	return uint16(n)
}

// OnButtonRelease clears drag state unconditionally.
func (wm *WM) OnButtonRelease() {
	wm.drag = nil
}
