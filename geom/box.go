package geom

import (
	"encoding/json"
	"fmt"
	"image"
)

// Box2I is an axis-aligned integer bounding box with inclusive corners.
//
// A box with Min() == Max() covers exactly one pixel. The zero value is the
// empty box, which contains no points. All operations treat the empty box
// consistently: it is the identity for Union, the absorbing element for
// Intersect, and contains nothing.
type Box2I struct {
	minX, minY int
	w, h       int
}

// NewBox2I returns the box with the given inclusive corners. If max is less
// than min on either axis, the result is the empty box.
func NewBox2I(min, max Point2I) Box2I {
	if max.X < min.X || max.Y < min.Y {
		return Box2I{}
	}
	return Box2I{minX: min.X, minY: min.Y, w: max.X - min.X + 1, h: max.Y - min.Y + 1}
}

// NewBox2IFromDims returns the box with the given minimum corner, width and
// height. Non-positive dimensions yield the empty box.
func NewBox2IFromDims(min Point2I, width, height int) Box2I {
	if width <= 0 || height <= 0 {
		return Box2I{}
	}
	return Box2I{minX: min.X, minY: min.Y, w: width, h: height}
}

// FromImageRect converts a half-open image.Rectangle to an inclusive Box2I.
func FromImageRect(r image.Rectangle) Box2I {
	return NewBox2IFromDims(Point2I{X: r.Min.X, Y: r.Min.Y}, r.Dx(), r.Dy())
}

// ToImageRect converts to the half-open image.Rectangle convention.
// The empty box converts to the zero rectangle.
func (b Box2I) ToImageRect() image.Rectangle {
	if b.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(b.minX, b.minY, b.minX+b.w, b.minY+b.h)
}

// IsEmpty reports whether the box contains no pixels.
func (b Box2I) IsEmpty() bool { return b.w <= 0 || b.h <= 0 }

// Min returns the inclusive minimum corner. Meaningless for the empty box.
func (b Box2I) Min() Point2I { return Point2I{X: b.minX, Y: b.minY} }

// Max returns the inclusive maximum corner. Meaningless for the empty box.
func (b Box2I) Max() Point2I { return Point2I{X: b.minX + b.w - 1, Y: b.minY + b.h - 1} }

// MinX returns the inclusive minimum x coordinate.
func (b Box2I) MinX() int { return b.minX }

// MinY returns the inclusive minimum y coordinate.
func (b Box2I) MinY() int { return b.minY }

// MaxX returns the inclusive maximum x coordinate.
func (b Box2I) MaxX() int { return b.minX + b.w - 1 }

// MaxY returns the inclusive maximum y coordinate.
func (b Box2I) MaxY() int { return b.minY + b.h - 1 }

// Width returns the number of columns covered (0 for the empty box).
func (b Box2I) Width() int {
	if b.IsEmpty() {
		return 0
	}
	return b.w
}

// Height returns the number of rows covered (0 for the empty box).
func (b Box2I) Height() int {
	if b.IsEmpty() {
		return 0
	}
	return b.h
}

// Area returns the number of pixels covered.
func (b Box2I) Area() int { return b.Width() * b.Height() }

// ContainsPoint reports whether p lies inside the box.
func (b Box2I) ContainsPoint(p Point2I) bool {
	return !b.IsEmpty() &&
		p.X >= b.minX && p.X < b.minX+b.w &&
		p.Y >= b.minY && p.Y < b.minY+b.h
}

// ContainsBox reports whether other lies entirely inside the box.
// The empty box is contained in every box, including itself.
func (b Box2I) ContainsBox(other Box2I) bool {
	if other.IsEmpty() {
		return true
	}
	return b.ContainsPoint(other.Min()) && b.ContainsPoint(other.Max())
}

// Include returns the smallest box covering both b and the point p.
func (b Box2I) Include(p Point2I) Box2I {
	if b.IsEmpty() {
		return NewBox2IFromDims(p, 1, 1)
	}
	min, max := b.Min(), b.Max()
	if p.X < min.X {
		min.X = p.X
	}
	if p.Y < min.Y {
		min.Y = p.Y
	}
	if p.X > max.X {
		max.X = p.X
	}
	if p.Y > max.Y {
		max.Y = p.Y
	}
	return NewBox2I(min, max)
}

// Union returns the smallest box covering both boxes.
func (b Box2I) Union(other Box2I) Box2I {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return b.Include(other.Min()).Include(other.Max())
}

// Intersect returns the overlap of the two boxes, empty if they are disjoint.
func (b Box2I) Intersect(other Box2I) Box2I {
	if b.IsEmpty() || other.IsEmpty() {
		return Box2I{}
	}
	lo := Point2I{X: max(b.minX, other.minX), Y: max(b.minY, other.minY)}
	hi := Point2I{X: min(b.MaxX(), other.MaxX()), Y: min(b.MaxY(), other.MaxY())}
	return NewBox2I(lo, hi)
}

// Overlaps reports whether the two boxes share at least one pixel.
func (b Box2I) Overlaps(other Box2I) bool {
	return !b.Intersect(other).IsEmpty()
}

// Shifted returns the box translated by (dx, dy). The empty box stays empty.
func (b Box2I) Shifted(dx, dy int) Box2I {
	if b.IsEmpty() {
		return Box2I{}
	}
	return Box2I{minX: b.minX + dx, minY: b.minY + dy, w: b.w, h: b.h}
}

// Grown returns the box expanded by n pixels on every side. Negative n
// shrinks the box, possibly to empty.
func (b Box2I) Grown(n int) Box2I {
	if b.IsEmpty() {
		return Box2I{}
	}
	return NewBox2I(
		Point2I{X: b.minX - n, Y: b.minY - n},
		Point2I{X: b.MaxX() + n, Y: b.MaxY() + n},
	)
}

func (b Box2I) String() string {
	if b.IsEmpty() {
		return "(empty)"
	}
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.minX, b.minY, b.MaxX(), b.MaxY())
}

// boxJSON is the wire form of Box2I. Inclusive corners; an empty box is
// encoded with x1 < x0 so that it round-trips without a separate flag.
type boxJSON struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// MarshalJSON implements json.Marshaler.
func (b Box2I) MarshalJSON() ([]byte, error) {
	if b.IsEmpty() {
		return json.Marshal(boxJSON{X0: 0, Y0: 0, X1: -1, Y1: -1})
	}
	return json.Marshal(boxJSON{X0: b.minX, Y0: b.minY, X1: b.MaxX(), Y1: b.MaxY()})
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Box2I) UnmarshalJSON(data []byte) error {
	var w boxJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*b = NewBox2I(Point2I{X: w.X0, Y: w.Y0}, Point2I{X: w.X1, Y: w.Y1})
	return nil
}
