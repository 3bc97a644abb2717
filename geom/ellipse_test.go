package geom

import (
	"math"
	"testing"
)

func TestEllipseDegenerate(t *testing.T) {
	for _, e := range []Ellipse{
		{A: 0, B: 3},
		{A: 3, B: -1},
	} {
		if !e.IsDegenerate() {
			t.Errorf("%+v not reported degenerate", e)
		}
		if !e.BBox().IsEmpty() {
			t.Errorf("degenerate BBox not empty: %v", e.BBox())
		}
		if _, _, ok := e.RowExtent(0); ok {
			t.Errorf("degenerate RowExtent returned a range")
		}
	}
}

func TestEllipseCircleBBox(t *testing.T) {
	e := Ellipse{Center: Point2D{X: 10, Y: 10}, A: 3, B: 3}
	if got := e.BBox(); got != b(7, 7, 13, 13) {
		t.Errorf("BBox: got %v, want (7,7)-(13,13)", got)
	}
}

func TestEllipseRotatedBBox(t *testing.T) {
	// A 4x1 ellipse rotated a quarter turn extends along y instead of x.
	e := Ellipse{Center: Point2D{}, A: 4, B: 1, Theta: math.Pi / 2}
	got := e.BBox()
	if got.MinY() != -4 || got.MaxY() != 4 {
		t.Errorf("rotated y extent: %d..%d, want -4..4", got.MinY(), got.MaxY())
	}
	if got.MinX() < -2 || got.MaxX() > 2 {
		t.Errorf("rotated x extent too wide: %d..%d", got.MinX(), got.MaxX())
	}
}

func TestEllipseRowExtent(t *testing.T) {
	e := Ellipse{Center: Point2D{X: 5, Y: 5}, A: 3, B: 3}

	x0, x1, ok := e.RowExtent(5)
	if !ok || x0 != 2 || x1 != 8 {
		t.Errorf("central row: got %d..%d ok=%v, want 2..8", x0, x1, ok)
	}

	// dy = 3: the boundary touches exactly one pixel.
	x0, x1, ok = e.RowExtent(8)
	if !ok || x0 != 5 || x1 != 5 {
		t.Errorf("tangent row: got %d..%d ok=%v, want 5..5", x0, x1, ok)
	}

	if _, _, ok := e.RowExtent(9); ok {
		t.Error("row beyond the ellipse returned a range")
	}

	// Symmetry about the center row.
	a0, a1, _ := e.RowExtent(4)
	c0, c1, _ := e.RowExtent(6)
	if a0 != c0 || a1 != c1 {
		t.Errorf("rows 4 and 6 differ: %d..%d vs %d..%d", a0, a1, c0, c1)
	}
}
