package x11

import "github.com/BurntSushi/xgb/xproto"

// gc lazily creates and caches a graphics context using the server's
// built-in "fixed" font. Custom font rendering is out of scope; this is
// the minimum needed to draw the title text with whatever font the
// server already has loaded.
func (c *Conn) gc() (xproto.Gcontext, error) {
	if c.defaultGC != 0 {
		return c.defaultGC, nil
	}
	fid, err := xproto.NewFontId(c.X)
	if err != nil {
		return 0, err
	}
	const fontName = "fixed"
	if err := xproto.OpenFontChecked(c.X, fid, uint16(len(fontName)), fontName).Check(); err != nil {
		return 0, err
	}
	gid, err := xproto.NewGcontextId(c.X)
	if err != nil {
		return 0, err
	}
	err = xproto.CreateGCChecked(c.X, gid, xproto.Drawable(c.Root),
		xproto.GcForeground|xproto.GcBackground|xproto.GcFont,
		[]uint32{c.Screen.BlackPixel, c.Screen.WhitePixel, uint32(fid)},
	).Check()
	xproto.CloseFont(c.X, fid)
	if err != nil {
		return 0, err
	}
	c.defaultGC = gid
	return gid, nil
}

// DrawString draws text at (x, y) inside win using the default
// graphics context.
func (c *Conn) DrawString(win xproto.Window, x, y int16, text string) error {
	gid, err := c.gc()
	if err != nil {
		return err
	}
	return xproto.ImageText8Checked(c.X, byte(len(text)), xproto.Drawable(win), gid, x, y, text).Check()
}
