// Package drag implements the pointer-driven move/resize state
// machine. Everything here is pure arithmetic over plain integers; no
// X call is made from this package, so the hit regions, the two
// anchor-update rules and edge-snap can be tested without a display
// connection.
package drag

// Kind identifies what a press on a decoration started: a titlebar
// drag, one of the eight frame resize directions, or no drag at all.
// Represented as a tagged union (a Kind tag on State) rather than a
// bool-plus-enum: the zero Kind (None) doubles as "no drag in
// progress".
type Kind uint8

const (
	None Kind = iota
	TitleDrag
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	Left
	Right
	Top
	Bottom
)

// State is the optional drag/resize state for the window currently
// being moved or resized. Anchor is the pointer's root position at
// press time; for TitleDrag it stays fixed for the life of the drag
// (absolute-from-origin deltas), while for every resize Kind the
// caller updates it after each motion (incremental deltas). Origin is
// the frame's top-left at press time and never changes within a drag.
type State struct {
	Kind    Kind
	AnchorX int32
	AnchorY int32
	OriginX int32
	OriginY int32
}

// Active reports whether a drag is in progress.
func (s State) Active() bool { return s.Kind != None }

// HitTest classifies a press at (evX, evY), coordinates relative to
// the frame's own top-left, into one of the eight resize regions of a
// 3x3 grid.
//
// cw and ch are both derived from width, not height for ch. This is a
// known quirk, preserved here as observable behavior: the corner
// zone's vertical extent ends up bounded by half the width, not half
// the height.
func HitTest(width, height uint32, evX, evY int32) Kind {
	cw := cornerExtent(width)
	ch := cornerExtent(width)

	right := evX >= int32(width)-int32(cw)
	left := evX <= int32(cw)

	switch {
	case right:
		switch {
		case evY >= int32(height)-int32(ch):
			return BottomRight
		case evY <= int32(ch):
			return TopRight
		default:
			return Right
		}
	case left:
		switch {
		case evY >= int32(height)-int32(ch):
			return BottomLeft
		case evY <= int32(ch):
			return TopLeft
		default:
			return Left
		}
	case evY >= int32(height/2):
		return Bottom
	default:
		return Top
	}
}

func cornerExtent(side uint32) uint32 {
	half := side / 2
	if half < 40 {
		return half
	}
	return 40
}

// TitleMove computes the frame's new top-left during a title drag: the
// origin recorded at press time plus the cumulative delta between the
// current root pointer position and the anchor recorded at press time.
// The anchor is never updated during a title drag, so repeated calls
// with the same rootX/rootY always return the same point.
func TitleMove(s State, rootX, rootY int32) (x, y int32) {
	return s.OriginX + (rootX - s.AnchorX), s.OriginY + (rootY - s.AnchorY)
}

// Delta is the incremental size/position change produced by one frame
// resize motion event.
type Delta struct {
	DW, DH, DX, DY int32
}

// FrameResizeDelta computes the delta for one motion event during a
// frame resize. Unlike TitleMove, the caller is expected to update the
// anchor to (rootX, rootY) after applying the delta: frame resize
// deltas are incremental, not absolute-from-origin.
func FrameResizeDelta(kind Kind, anchorX, anchorY, rootX, rootY int32) Delta {
	var d Delta
	switch kind {
	case Right, TopRight, BottomRight:
		d.DW = rootX - anchorX
	case Left, TopLeft, BottomLeft:
		d.DW = anchorX - rootX
		d.DX = -d.DW
	}
	switch kind {
	case Bottom, BottomLeft, BottomRight:
		d.DH = rootY - anchorY
	case Top, TopLeft, TopRight:
		d.DH = anchorY - rootY
		d.DY = -d.DH
	}
	return d
}

// Geometry is an absolute window rectangle, used by the edge-snap
// result below. It intentionally mirrors x11.Rect's shape rather than
// importing internal/x11, so this package stays free of any X
// dependency.
type Geometry struct {
	X, Y, W, H uint32
}

// SnapResult is the three-window geometry produced by an edge snap:
// the frame, positioned at the half of the screen the pointer
// touched, and the title/client geometry inside it.
type SnapResult struct {
	Frame  Geometry
	Title  Geometry
	Client Geometry
}

// EdgeSnap checks whether the pointer at (x, y) touches a screen edge
// and, if so, returns the frame/title/client geometry for that half of
// the screen. screenW/screenH are the root window's geometry; titleH
// is the title window's current height; borderW is the frame's border
// width. The second return value is false when the pointer isn't on a
// screen edge, in which case the caller should fall through to the
// ordinary title-drag move.
func EdgeSnap(x, y int32, screenW, screenH, titleH, borderW uint32) (SnapResult, bool) {
	switch {
	case x == 0:
		return halfGeometry(0, 0, screenW/2, screenH, titleH, borderW), true
	case x == int32(screenW)-1:
		return halfGeometry(screenW/2, 0, screenW/2, screenH, titleH, borderW), true
	case y == 0:
		return halfGeometry(0, 0, screenW, screenH/2, titleH, borderW), true
	case y == int32(screenH)-1:
		return halfGeometry(0, screenH/2, screenW, screenH/2, titleH, borderW), true
	default:
		return SnapResult{}, false
	}
}

// halfGeometry builds the frame/title/client triple of rectangles for
// one screen half. fx/fy/fw/fh describe the half-screen region the
// frame should occupy before the border width is subtracted out of its
// height/width.
func halfGeometry(fx, fy, fw, fh, titleH, borderW uint32) SnapResult {
	frame := Geometry{X: fx, Y: fy, W: fw, H: fh - 2*borderW}
	title := Geometry{X: 0, Y: 0, W: fw, H: titleH}
	client := Geometry{X: 0, Y: titleH, W: fw, H: fh - titleH - 2*borderW}
	return SnapResult{Frame: frame, Title: title, Client: client}
}
