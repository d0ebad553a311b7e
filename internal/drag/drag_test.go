package drag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCornerHitTest(t *testing.T) {
	const w, h = uint32(200), uint32(160)

	require.Equal(t, BottomRight, HitTest(w, h, int32(w)-1, int32(h)-1))
	require.Equal(t, TopLeft, HitTest(w, h, 0, 0))
	require.Equal(t, Top, HitTest(w, h, int32(w)/2, int32(h)/4))
}

func TestCornerExtentClampedAtForty(t *testing.T) {
	// side/2 > 40 clamps to 40.
	require.Equal(t, uint32(40), cornerExtent(200))
	// side/2 <= 40 stays at half.
	require.Equal(t, uint32(30), cornerExtent(60))
}

func TestHitTestQuirkUsesWidthForVerticalCornerBound(t *testing.T) {
	// Width 60 (cw=ch=30) but height 400: a point at y=35 is below the
	// 30px corner band computed from width, so a click at x=10 (left
	// band) lands in the plain Left region, not TopLeft/BottomLeft,
	// even though it would be within a height-based top corner band.
	got := HitTest(60, 400, 10, 35)
	require.Equal(t, Left, got)
}

func TestTitleDragMonotonicity(t *testing.T) {
	s := State{Kind: TitleDrag, AnchorX: 150, AnchorY: 110, OriginX: 97, OriginY: 77}

	x, y := TitleMove(s, 160, 115)
	require.Equal(t, int32(107), x)
	require.Equal(t, int32(82), y)

	// Anchor is never updated for TitleDrag: repeating the same motion
	// position yields the same absolute frame position.
	x2, y2 := TitleMove(s, 160, 115)
	require.Equal(t, x, x2)
	require.Equal(t, y, y2)

	// A further motion computes its delta from the *original* anchor,
	// not from the previous motion's position (absolute-from-origin).
	x3, y3 := TitleMove(s, 170, 125)
	require.Equal(t, int32(117), x3)
	require.Equal(t, int32(92), y3)
}

func TestFrameDragMonotonicity(t *testing.T) {
	anchorX, anchorY := int32(500), int32(500)
	var totalDW, totalDH int32
	moves := [][2]int32{{510, 505}, {520, 520}, {530, 540}}
	for _, m := range moves {
		d := FrameResizeDelta(BottomRight, anchorX, anchorY, m[0], m[1])
		totalDW += d.DW
		totalDH += d.DH
		anchorX, anchorY = m[0], m[1]
	}
	require.Equal(t, int32(30), totalDW)
	require.Equal(t, int32(40), totalDH)
	require.Equal(t, int32(530), anchorX)
	require.Equal(t, int32(540), anchorY)
}

func TestFrameResizeDeltaBottomRight(t *testing.T) {
	d := FrameResizeDelta(BottomRight, 100, 100, 130, 140)
	require.Equal(t, Delta{DW: 30, DH: 40, DX: 0, DY: 0}, d)
}

func TestFrameResizeDeltaTopLeft(t *testing.T) {
	d := FrameResizeDelta(TopLeft, 100, 100, 90, 80)
	// Moving the pointer up-left while dragging the top-left corner
	// grows the frame and shifts its origin by -(delta).
	require.Equal(t, Delta{DW: 10, DH: 20, DX: -10, DY: -20}, d)
}

func TestEdgeSnapLeft(t *testing.T) {
	res, ok := EdgeSnap(0, 400, 1920, 1080, 18, 3)
	require.True(t, ok)
	require.Equal(t, Geometry{X: 0, Y: 0, W: 960, H: 1074}, res.Frame)
	require.Equal(t, Geometry{X: 0, Y: 0, W: 960, H: 18}, res.Title)
	require.Equal(t, Geometry{X: 0, Y: 18, W: 960, H: 1056}, res.Client)
}

func TestEdgeSnapNoneInMiddle(t *testing.T) {
	_, ok := EdgeSnap(960, 540, 1920, 1080, 18, 3)
	require.False(t, ok)
}

func TestEdgeSnapRightAndBottom(t *testing.T) {
	res, ok := EdgeSnap(1919, 400, 1920, 1080, 18, 3)
	require.True(t, ok)
	require.Equal(t, uint32(960), res.Frame.X)

	res, ok = EdgeSnap(400, 1079, 1920, 1080, 18, 3)
	require.True(t, ok)
	require.Equal(t, uint32(540), res.Frame.Y)
}
