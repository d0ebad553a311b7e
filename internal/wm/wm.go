// Package wm is the window-management state machine: the decoration
// builder, the drag/resize machine, the focus/expose controller and
// the event loop that drives all three, wired together around a
// single WM value.
package wm

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/go-xwm/xwm/internal/config"
	"github.com/go-xwm/xwm/internal/registry"
	"github.com/go-xwm/xwm/internal/x11"
)

// Geometry is the set of pixel constants that control decoration
// sizing: frame border width, titlebar height and inner border.
// Corner control extent is derived from a frame's own size, not
// stored here (see internal/drag.HitTest).
type Geometry struct {
	FrameBorder    uint32
	TitleBarHeight uint32
	InnerBorder    uint32
}

// DefaultGeometry is used until a config file overrides it.
var DefaultGeometry = Geometry{FrameBorder: 3, TitleBarHeight: 20, InnerBorder: 1}

// WM is the top-level manager: the X connection, the window registry,
// the current drag/resize state (at most one drag in flight) and the
// geometry/color configuration.
type WM struct {
	conn    *x11.Conn
	reg     *registry.Registry
	colors  x11.ColorSet
	cursors x11.Cursors
	geo     Geometry
	screen  x11.Rect

	drag      *activeDrag
	activeWin xproto.Window
}

// New opens the X connection. It does not yet claim the window-manager
// role; that happens in Init, so BadAccess (another WM running) can be
// reported distinctly from "no display available".
func New() (*WM, error) {
	conn, err := x11.Connect()
	if err != nil {
		return nil, err
	}
	return &WM{conn: conn, reg: registry.New(), geo: DefaultGeometry}, nil
}

// Init claims substructure redirection, allocates cursors/colors,
// paints the root background and reconciles any already-running
// clients. Returns a wrapped x11.IsBadAccess-detectable error if
// another window manager already owns the display.
func (wm *WM) Init() error {
	if err := wm.conn.BecomeWM(); err != nil {
		if x11.IsBadAccess(err) {
			return fmt.Errorf("another window manager is already running: %w", err)
		}
		return fmt.Errorf("could not claim substructure redirection: %w", err)
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		slog.Warn("using default configuration", "error", err)
		cfg = config.Default()
	}
	wm.geo = Geometry{
		FrameBorder:    uint32(cfg.Geometry.FrameBorder),
		TitleBarHeight: uint32(cfg.Geometry.TitleBarHeight),
		InnerBorder:    uint32(cfg.Geometry.InnerBorder),
	}

	wm.colors = wm.loadColorsFromConfig(cfg)

	cursors, err := wm.conn.LoadCursors()
	if err != nil {
		slog.Error("could not allocate cursors", "error", err)
	}
	wm.cursors = cursors
	wm.conn.DefineCursor(wm.conn.Root, wm.cursors.Default)

	wm.screen = wm.conn.ScreenRect()

	if err := wm.conn.SetRootBackground(wm.colors.Desktop); err != nil {
		slog.Error("could not paint root background", "error", err)
	}

	wm.reconcileExistingWindows()
	return nil
}

func (wm *WM) loadColorsFromConfig(cfg config.Config) x11.ColorSet {
	pick := func(configured, fallback string) uint32 {
		name := configured
		if name == "" {
			name = fallback
		}
		return wm.conn.AllocColor(name)
	}
	return x11.ColorSet{
		ActiveFrame:         pick(cfg.Colors.ActiveFrame, "dark goldenrod"),
		InactiveFrame:       pick(cfg.Colors.InactiveFrame, "slate grey"),
		ActiveTitle:         pick(cfg.Colors.ActiveTitle, "gold"),
		InactiveTitle:       pick(cfg.Colors.InactiveTitle, "light slate grey"),
		ActiveTitleBorder:   pick(cfg.Colors.ActiveTitleBorder, "saddle brown"),
		InactiveTitleBorder: pick(cfg.Colors.InactiveTitleBorder, "dark slate grey"),
		Desktop:             pick(cfg.Colors.Desktop, "black"),
		WindowBackground:    pick(cfg.Colors.WindowBackground, "white"),
	}
}

// Close releases the X connection.
func (wm *WM) Close() {
	wm.conn.Close()
}

// reconcileExistingWindows frames every pre-existing mapped,
// non-override-redirect child of the root, under a server grab so a
// client mapping mid-walk can't race the QueryTree.
func (wm *WM) reconcileExistingWindows() {
	if err := wm.conn.GrabServer(); err != nil {
		slog.Error("could not grab server for startup reconciliation", "error", err)
		return
	}
	defer func() {
		if err := wm.conn.UngrabServer(); err != nil {
			slog.Error("could not ungrab server", "error", err)
		}
	}()

	children, err := wm.conn.QueryChildren()
	if err != nil {
		slog.Error("could not query root children", "error", err)
		return
	}
	for _, child := range children {
		attr, err := xproto.GetWindowAttributes(wm.conn.X, child).Reply()
		if err != nil || attr.OverrideRedirect || attr.MapState == xproto.MapStateUnmapped {
			continue
		}
		if err := wm.Frame(child); err != nil {
			slog.Warn("could not frame pre-existing window", "window", child, "error", err)
			continue
		}
		if err := wm.conn.Map(child); err != nil {
			slog.Warn("could not map pre-existing window", "window", child, "error", err)
		}
	}
}
