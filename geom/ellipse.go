package geom

import "math"

// Ellipse is a filled ellipse in pixel coordinates: center, semi-major axis
// A, semi-minor axis B, and position angle Theta in radians measured from
// the +x axis toward +y.
type Ellipse struct {
	Center Point2D
	A, B   float64
	Theta  float64
}

// IsDegenerate reports whether the ellipse encloses no area.
func (e Ellipse) IsDegenerate() bool {
	return e.A <= 0 || e.B <= 0
}

// BBox returns the inclusive integer bounding box of the ellipse, computed
// from the exact axis-aligned extents of the rotated ellipse. Degenerate
// ellipses yield the empty box.
func (e Ellipse) BBox() Box2I {
	if e.IsDegenerate() {
		return Box2I{}
	}
	c, s := math.Cos(e.Theta), math.Sin(e.Theta)
	// Extreme offsets of a rotated ellipse along each axis.
	ex := math.Sqrt(e.A*e.A*c*c + e.B*e.B*s*s)
	ey := math.Sqrt(e.A*e.A*s*s + e.B*e.B*c*c)
	return NewBox2I(
		Point2I{X: int(math.Ceil(e.Center.X - ex)), Y: int(math.Ceil(e.Center.Y - ey))},
		Point2I{X: int(math.Floor(e.Center.X + ex)), Y: int(math.Floor(e.Center.Y + ey))},
	)
}

// RowExtent returns the inclusive column range [x0, x1] of the ellipse's
// intersection with row y, solving the rotated-ellipse quadratic for that
// row. ok is false when the row misses the ellipse or the clamped integer
// range is empty.
func (e Ellipse) RowExtent(y int) (x0, x1 int, ok bool) {
	if e.IsDegenerate() {
		return 0, 0, false
	}
	c, s := math.Cos(e.Theta), math.Sin(e.Theta)
	dy := float64(y) - e.Center.Y

	// With u = dx*cos + dy*sin, v = -dx*sin + dy*cos, the boundary is
	// u^2/A^2 + v^2/B^2 = 1, a quadratic a*dx^2 + b*dx + cc = 0.
	ia, ib := 1/(e.A*e.A), 1/(e.B*e.B)
	a := c*c*ia + s*s*ib
	b := 2 * dy * s * c * (ia - ib)
	cc := dy*dy*(s*s*ia+c*c*ib) - 1

	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, 0, false
	}
	r := math.Sqrt(disc)
	lo := e.Center.X + (-b-r)/(2*a)
	hi := e.Center.X + (-b+r)/(2*a)

	x0 = int(math.Ceil(lo))
	x1 = int(math.Floor(hi))
	if x1 < x0 {
		return 0, 0, false
	}
	return x0, x1, true
}
