package x11

import "github.com/BurntSushi/xgb/xproto"

// FetchName reads a client's WM_NAME property. A missing property, a
// non-STRING type or any request error are all treated identically:
// empty name, paint nothing. The title repaint this feeds is cosmetic
// only.
func (c *Conn) FetchName(win xproto.Window) string {
	atom, err := c.Atom("WM_NAME")
	if err != nil {
		return ""
	}
	reply, err := xproto.GetProperty(c.X, false, win, atom, xproto.GetPropertyTypeAny, 0, 1024).Reply()
	if err != nil || reply == nil || reply.Format != 8 || len(reply.Value) == 0 {
		return ""
	}
	return string(reply.Value)
}
