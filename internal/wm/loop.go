package wm

import (
	"errors"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/go-xwm/xwm/internal/registry"
)

// Run is the single thread of control: it blocks for the next event
// and dispatches by type. All registry and drag-state mutation happens
// here or in functions it calls synchronously.
func (wm *WM) Run() error {
	for {
		ev, err := wm.conn.NextEvent()
		if ev == nil && err == nil {
			return errors.New("X connection closed")
		}
		if err != nil {
			wm.handleAsyncError(err)
			continue
		}
		wm.dispatch(ev)
	}
}

// handleAsyncError is where an asynchronously-delivered X error lands:
// a call against a window that's already been destroyed surfaces here
// instead of at its call site, and is logged at Warn rather than
// treated as fatal.
func (wm *WM) handleAsyncError(err error) {
	var winErr xproto.WindowError
	var drawErr xproto.DrawableError
	var matchErr xproto.MatchError
	switch {
	case errors.As(err, &winErr):
		slog.Warn("X request failed against a destroyed window", "error", winErr)
	case errors.As(err, &drawErr):
		slog.Warn("X request failed against a destroyed drawable", "error", drawErr)
	case errors.As(err, &matchErr):
		slog.Warn("X request failed: parameter mismatch, likely a torn-down window", "error", matchErr)
	default:
		slog.Warn("X server reported an error", "error", err)
	}
}

func (wm *WM) dispatch(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		wm.onMapRequest(e)
	case xproto.ConfigureRequestEvent:
		wm.onConfigureRequest(e)
	case xproto.UnmapNotifyEvent:
		wm.onUnmapNotify(e)
	case xproto.DestroyNotifyEvent:
		wm.reg.RemoveAsync(registry.WindowID(e.Window))
	case xproto.ButtonPressEvent:
		wm.OnButtonPress(e.Event, int32(e.EventX), int32(e.EventY), int32(e.RootX), int32(e.RootY), e.Time)
	case xproto.ButtonReleaseEvent:
		wm.OnButtonRelease()
	case xproto.MotionNotifyEvent:
		latest := wm.coalesceMotion(e)
		wm.OnMotion(int32(latest.RootX), int32(latest.RootY))
	case xproto.FocusInEvent:
		wm.OnFocusIn(e.Event)
	case xproto.FocusOutEvent:
		wm.OnFocusOut(e.Event)
	case xproto.ExposeEvent:
		wm.OnExpose(e.Window)
	case xproto.MapNotifyEvent:
		slog.Debug("MapNotify", "window", e.Window)
	case xproto.CreateNotifyEvent:
		slog.Debug("CreateNotify", "window", e.Window)
	case xproto.ReparentNotifyEvent:
		slog.Debug("ReparentNotify", "window", e.Window)
	case xproto.ConfigureNotifyEvent:
		slog.Debug("ConfigureNotify", "window", e.Window)
	default:
		slog.Debug("unhandled event", "event", e)
	}
}

// onMapRequest frames the window (if not already managed and not
// override-redirect) and maps the client.
func (wm *WM) onMapRequest(e xproto.MapRequestEvent) {
	if wm.conn.OverrideRedirect(e.Window) {
		return
	}
	if err := wm.Frame(e.Window); err != nil {
		slog.Warn("failed to manage window", "window", e.Window, "error", err)
		return
	}
	if err := wm.conn.Map(e.Window); err != nil {
		slog.Warn("failed to map client", "window", e.Window, "error", err)
	}
}

// onConfigureRequest copies the requested geometry to the frame (if
// framed) and always to the client, letting an application's own
// geometry requests propagate.
func (wm *WM) onConfigureRequest(e xproto.ConfigureRequestEvent) {
	if t, ok := wm.reg.LookupByClient(registry.WindowID(e.Window)); ok {
		wm.conn.ApplyConfigureRequest(xproto.Window(t.Frame), e.ValueMask, e.X, e.Y, e.Width, e.Height, e.BorderWidth, e.Sibling, e.StackMode)
	}
	wm.conn.ApplyConfigureRequest(e.Window, e.ValueMask, e.X, e.Y, e.Width, e.Height, e.BorderWidth, e.Sibling, e.StackMode)
}

// onUnmapNotify unframes a registered client when its owner unmaps it.
// An UnmapNotify naming the root itself is logged and ignored: it's
// informational, not a client going away.
func (wm *WM) onUnmapNotify(e xproto.UnmapNotifyEvent) {
	if e.Event == wm.conn.Root {
		slog.Debug("UnmapNotify for root, ignoring", "window", e.Window)
		return
	}
	if _, ok := wm.reg.LookupByClient(registry.WindowID(e.Window)); ok {
		wm.Unframe(e.Window)
	}
}

// coalesceMotion drains all further pending Button1Motion events with
// non-blocking checks and returns only the newest, avoiding input lag
// under a fast drag. Reordering a run of motion events down to the
// latest one is safe: the position is all that matters.
func (wm *WM) coalesceMotion(latest xproto.MotionNotifyEvent) xproto.MotionNotifyEvent {
	for {
		ev, err := wm.conn.PollEvent()
		if err != nil {
			wm.handleAsyncError(err)
			continue
		}
		if ev == nil {
			return latest
		}
		next, ok := ev.(xproto.MotionNotifyEvent)
		if !ok {
			// Not a motion event: handle it in order, then keep
			// draining for any further motion queued behind it.
			wm.dispatch(ev)
			continue
		}
		latest = next
	}
}
