package pixels

import (
	"fmt"

	"github.com/astrokit/footprint/geom"
)

// Real is the constraint for image and variance pixel types.
type Real interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Bits is the constraint for mask pixel types: unsigned bit fields.
type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Pixel is the union of all supported plane element types.
type Pixel interface {
	Real | Bits
}

// Image is a dense 2-D plane of T addressed by absolute pixel coordinates.
type Image[T Pixel] struct {
	region geom.Box2I
	pix    []T
}

// NewImage allocates a zero-filled plane covering region. An empty region
// yields a zero-size plane that contains no pixels.
func NewImage[T Pixel](region geom.Box2I) *Image[T] {
	return &Image[T]{
		region: region,
		pix:    make([]T, region.Area()),
	}
}

// Region returns the plane's valid extent.
func (im *Image[T]) Region() geom.Box2I { return im.region }

// Contains reports whether (x, y) lies inside the plane.
func (im *Image[T]) Contains(x, y int) bool {
	return im.region.ContainsPoint(geom.Point2I{X: x, Y: y})
}

func (im *Image[T]) index(x, y int) int {
	if !im.Contains(x, y) {
		panic(fmt.Sprintf("pixels: access at (%d,%d) outside plane region %v", x, y, im.region))
	}
	return (y-im.region.MinY())*im.region.Width() + (x - im.region.MinX())
}

// At returns the pixel at absolute coordinates (x, y).
// Panics if (x, y) is outside the plane.
func (im *Image[T]) At(x, y int) T { return im.pix[im.index(x, y)] }

// Set writes the pixel at absolute coordinates (x, y).
// Panics if (x, y) is outside the plane.
func (im *Image[T]) Set(x, y int, v T) { im.pix[im.index(x, y)] = v }

// Fill sets every pixel to v.
func (im *Image[T]) Fill(v T) {
	for i := range im.pix {
		im.pix[i] = v
	}
}

// Pix exposes the backing slice in row-major order, rows from MinY up.
// Mutating it mutates the plane.
func (im *Image[T]) Pix() []T { return im.pix }

// ShiftOrigin translates the plane's region by (dx, dy) without touching
// pixel data, re-homing the same pixels at new absolute coordinates.
func (im *Image[T]) ShiftOrigin(dx, dy int) {
	im.region = im.region.Shifted(dx, dy)
}

// Clone returns a deep copy of the plane.
func (im *Image[T]) Clone() *Image[T] {
	out := &Image[T]{region: im.region, pix: make([]T, len(im.pix))}
	copy(out.pix, im.pix)
	return out
}
