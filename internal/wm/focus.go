package wm

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/go-xwm/xwm/internal/registry"
)

// FocusAndRaise focuses client and raises its frame, if registered. An
// unregistered client (a root click, or an orphaned window) is a no-op
// rather than an error.
func (wm *WM) FocusAndRaise(client xproto.Window) {
	t, ok := wm.reg.LookupByClient(registry.WindowID(client))
	if !ok {
		return
	}
	if err := wm.conn.SetInputFocus(client, 0); err != nil {
		slog.Warn("could not set input focus", "client", client, "error", err)
	}
	wm.conn.Raise(xproto.Window(t.Frame))
	wm.activeWin = client
}

// OnFocusIn paints the frame/title in their active colors and redraws
// the title text.
func (wm *WM) OnFocusIn(frame xproto.Window) {
	t, ok := wm.reg.LookupByFrame(registry.WindowID(frame))
	if !ok {
		return
	}
	if err := wm.conn.SetBorderPixel(frame, wm.colors.ActiveFrame); err != nil {
		// The frame was destroyed asynchronously: abort the remaining
		// repaints.
		slog.Warn("frame border paint failed, assuming frame is gone", "frame", frame, "error", err)
		return
	}
	title := xproto.Window(t.Title)
	wm.conn.SetBackgroundPixel(title, wm.colors.ActiveTitle)
	if err := wm.conn.SetBorderPixel(title, wm.colors.ActiveTitleBorder); err != nil {
		slog.Warn("title border paint failed", "title", title, "error", err)
		return
	}
	wm.conn.ClearWindow(title)
	wm.redrawTitle(xproto.Window(t.Client), title)
}

// OnFocusOut paints with inactive colors and re-arms the focus trap so
// the next click on this now-unfocused client promotes it back to
// focus.
func (wm *WM) OnFocusOut(frame xproto.Window) {
	t, ok := wm.reg.LookupByFrame(registry.WindowID(frame))
	if !ok {
		return
	}
	if err := wm.conn.SetBorderPixel(frame, wm.colors.InactiveFrame); err != nil {
		slog.Warn("frame border paint failed, assuming frame is gone", "frame", frame, "error", err)
		return
	}
	title := xproto.Window(t.Title)
	wm.conn.SetBackgroundPixel(title, wm.colors.InactiveTitle)
	if err := wm.conn.SetBorderPixel(title, wm.colors.InactiveTitleBorder); err != nil {
		slog.Warn("title border paint failed", "title", title, "error", err)
		return
	}
	wm.conn.ClearWindow(title)
	wm.redrawTitle(xproto.Window(t.Client), title)
	wm.conn.GrabFocusTrap(xproto.Window(t.Client))
}

// OnExpose redraws the title text on Expose.
func (wm *WM) OnExpose(win xproto.Window) {
	t, ok := wm.reg.LookupByTitle(registry.WindowID(win))
	if !ok {
		return
	}
	wm.redrawTitle(xproto.Window(t.Client), win)
}

// redrawTitle draws the client's current name at (2, 13) inside the
// title window using the default graphics context. A name-fetch
// failure just paints nothing.
func (wm *WM) redrawTitle(client, title xproto.Window) {
	name := wm.conn.FetchName(client)
	if name == "" {
		return
	}
	if err := wm.conn.DrawString(title, 2, 13, name); err != nil {
		slog.Warn("could not draw title text", "title", title, "error", err)
	}
}
