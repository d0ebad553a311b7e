package x11

import "github.com/BurntSushi/xgb/xproto"

// Standard glyph indices into the server's built-in "cursor" font
// (X11's <X11/cursorfont.h>). Each cursor shape is two adjacent glyphs:
// the even index is the visible glyph, the odd index right after it is
// its mask.
const (
	glyphLeftPtr = 68  // XC_left_ptr: default pointer
	glyphFleur   = 52  // XC_fleur: four-way move, used for titlebar drag
	glyphSizing  = 120 // XC_sizing: resize, used over the frame border
)

// Cursors is the three cursor handles the window manager allocates at
// startup: the root's default pointer, the titlebar drag cursor and
// the frame resize cursor.
type Cursors struct {
	Default     xproto.Cursor
	TitleDrag   xproto.Cursor
	FrameResize xproto.Cursor
}

// LoadCursors allocates the three cursor shapes, all sourced from the
// server's built-in cursor font so no client-side font rendering is
// needed.
func (c *Conn) LoadCursors() (Cursors, error) {
	fid, err := xproto.NewFontId(c.X)
	if err != nil {
		return Cursors{}, err
	}
	const fontName = "cursor"
	if err := xproto.OpenFontChecked(c.X, fid, uint16(len(fontName)), fontName).Check(); err != nil {
		return Cursors{}, err
	}
	defer xproto.CloseFont(c.X, fid)

	def, err := c.glyphCursor(fid, glyphLeftPtr)
	if err != nil {
		return Cursors{}, err
	}
	title, err := c.glyphCursor(fid, glyphFleur)
	if err != nil {
		return Cursors{}, err
	}
	resize, err := c.glyphCursor(fid, glyphSizing)
	if err != nil {
		return Cursors{}, err
	}
	return Cursors{Default: def, TitleDrag: title, FrameResize: resize}, nil
}

func (c *Conn) glyphCursor(font xproto.Font, glyph uint16) (xproto.Cursor, error) {
	cid, err := xproto.NewCursorId(c.X)
	if err != nil {
		return 0, err
	}
	err = xproto.CreateGlyphCursorChecked(
		c.X, cid, font, font,
		glyph, glyph+1,
		0, 0, 0, // foreground: black
		0xffff, 0xffff, 0xffff, // background: white
	).Check()
	if err != nil {
		return 0, err
	}
	return cid, nil
}

// DefineCursor sets a window's cursor.
func (c *Conn) DefineCursor(win xproto.Window, cursor xproto.Cursor) {
	xproto.ChangeWindowAttributes(c.X, win, xproto.CwCursor, []uint32{uint32(cursor)})
}
