package geom

import "fmt"

// Point2I is an integer pixel position.
type Point2I struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by the extent e.
func (p Point2I) Add(e Extent2I) Point2I {
	return Point2I{X: p.X + e.X, Y: p.Y + e.Y}
}

// Shifted returns p translated by (dx, dy).
func (p Point2I) Shifted(dx, dy int) Point2I {
	return Point2I{X: p.X + dx, Y: p.Y + dy}
}

func (p Point2I) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Extent2I is an integer offset or size in pixels.
type Extent2I struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Point2D is a floating-point pixel position, used for peak centroids and
// coordinate transforms. Integer pixel (x, y) has its center at the
// floating-point position (x, y) exactly.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
