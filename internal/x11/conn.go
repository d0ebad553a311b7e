// Package x11 owns the connection to the X server: the root window,
// atom interning, color and cursor allocation, and the request
// helpers the rest of the window manager drives.
package x11

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Conn bundles the wire connection with the pieces of server state the
// rest of the manager needs repeatedly: the default screen, the root
// window and an atom cache.
type Conn struct {
	X      *xgb.Conn
	Screen *xproto.ScreenInfo
	Root   xproto.Window
	atoms  map[string]xproto.Atom

	defaultGC xproto.Gcontext
}

// Connect opens the default display named by $DISPLAY.
func Connect() (*Conn, error) {
	if os.Getenv("DISPLAY") == "" {
		return nil, fmt.Errorf("x11: DISPLAY is not set")
	}
	xc, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: could not open display: %w", err)
	}
	setup := xproto.Setup(xc)
	if setup == nil || len(setup.Roots) == 0 {
		xc.Close()
		return nil, fmt.Errorf("x11: server returned no screens")
	}
	screen := setup.Roots[0]
	return &Conn{
		X:      xc,
		Screen: &screen,
		Root:   screen.Root,
		atoms:  make(map[string]xproto.Atom),
	}, nil
}

// Close releases the connection.
func (c *Conn) Close() {
	if c.X != nil {
		c.X.Close()
	}
}

// BecomeWM claims substructure redirection on the root window, the
// request that makes this process the window manager. It's a Checked
// request followed by a synchronous round trip, so a BadAccess from an
// already-running manager is observed immediately instead of showing
// up later against some unrelated request.
func (c *Conn) BecomeWM() error {
	mask := []uint32{
		xproto.EventMaskSubstructureRedirect |
			xproto.EventMaskSubstructureNotify |
			xproto.EventMaskButtonPress |
			xproto.EventMaskKeyPress,
	}
	err := xproto.ChangeWindowAttributesChecked(c.X, c.Root, xproto.CwEventMask, mask).Check()
	if err != nil {
		return err
	}
	return c.sync()
}

func (c *Conn) sync() error {
	_, err := xproto.GetInputFocus(c.X).Reply()
	return err
}

// IsBadAccess reports whether err is the X BadAccess error, the one
// that means another window manager is already running.
func IsBadAccess(err error) bool {
	var accessErr xproto.AccessError
	return errors.As(err, &accessErr)
}

// Atom interns and caches an atom by name.
func (c *Conn) Atom(name string) (xproto.Atom, error) {
	if a, ok := c.atoms[name]; ok {
		return a, nil
	}
	reply, err := xproto.InternAtom(c.X, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	c.atoms[name] = reply.Atom
	return reply.Atom, nil
}

// NextEvent blocks for the next event, merging xgb's two-return
// WaitForEvent into the shape the event loop wants: a decoded event,
// or a single error, never both.
func (c *Conn) NextEvent() (xgb.Event, error) {
	ev, xerr := c.X.WaitForEvent()
	if xerr != nil {
		return nil, xerr
	}
	return ev, nil
}

// PollEvent is the non-blocking counterpart, used to drain backlog
// during motion coalescing.
func (c *Conn) PollEvent() (xgb.Event, error) {
	ev, xerr := c.X.PollForEvent()
	if xerr != nil {
		return nil, xerr
	}
	return ev, nil
}
