package footprint

import "fmt"

// Span is an inclusive run of pixels [X0, X1] on row Y.
//
// A span with X1 < X0 is structurally tolerated but covers no pixels; the
// geometric constructors never emit one, and Normalize drops them.
type Span struct {
	Y  int `json:"y"`
	X0 int `json:"x0"`
	X1 int `json:"x1"`
}

// Width returns the number of pixels covered, 0 for an inverted span.
func (s Span) Width() int {
	if s.X1 < s.X0 {
		return 0
	}
	return s.X1 - s.X0 + 1
}

// Contains reports whether column x lies inside the span.
func (s Span) Contains(x int) bool { return x >= s.X0 && x <= s.X1 }

// ContainsPoint reports whether pixel (x, y) lies inside the span.
func (s Span) ContainsPoint(x, y int) bool { return y == s.Y && s.Contains(x) }

// Shifted returns the span translated by (dx, dy).
func (s Span) Shifted(dx, dy int) Span {
	return Span{Y: s.Y + dy, X0: s.X0 + dx, X1: s.X1 + dx}
}

// Less orders spans by row, then start column, then end column. This is the
// total order used by Normalize and by the binary searches in Contains.
func (s Span) Less(other Span) bool {
	if s.Y != other.Y {
		return s.Y < other.Y
	}
	if s.X0 != other.X0 {
		return s.X0 < other.X0
	}
	return s.X1 < other.X1
}

func (s Span) String() string {
	return fmt.Sprintf("%d: %d..%d", s.Y, s.X0, s.X1)
}
