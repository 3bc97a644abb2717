package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// PointTransform maps floating-point pixel positions from one coordinate
// frame to another. Implementations must be pure functions of their input.
//
// This is the only contact the footprint library has with world coordinate
// systems: transforming a footprint applies the mapping pointwise to pixel
// centers, so any nonlinear mapping satisfying this interface works.
type PointTransform interface {
	Apply(p Point2D) Point2D
}

// TransformFunc adapts an ordinary function to the PointTransform interface.
type TransformFunc func(p Point2D) Point2D

// Apply implements PointTransform.
func (f TransformFunc) Apply(p Point2D) Point2D { return f(p) }

// AffineTransform is a PointTransform backed by a homogeneous 3x3 matrix:
//
//	| xx  xy  dx |   | x |
//	| yx  yy  dy | * | y |
//	| 0   0   1  |   | 1 |
//
// Construct with NewAffineTransform or one of the named constructors, then
// compose with Compose or invert with Invert.
type AffineTransform struct {
	m *mat.Dense
}

// NewAffineTransform builds an affine transform from its linear part
// (xx, xy, yx, yy) and translation (dx, dy).
func NewAffineTransform(xx, xy, yx, yy, dx, dy float64) AffineTransform {
	return AffineTransform{m: mat.NewDense(3, 3, []float64{
		xx, xy, dx,
		yx, yy, dy,
		0, 0, 1,
	})}
}

// IdentityTransform returns the identity mapping.
func IdentityTransform() AffineTransform {
	return NewAffineTransform(1, 0, 0, 1, 0, 0)
}

// Translation returns the transform that shifts every point by (dx, dy).
func Translation(dx, dy float64) AffineTransform {
	return NewAffineTransform(1, 0, 0, 1, dx, dy)
}

// Rotation returns the transform that rotates about the origin by theta
// radians, +x toward +y.
func Rotation(theta float64) AffineTransform {
	c, s := math.Cos(theta), math.Sin(theta)
	return NewAffineTransform(c, -s, s, c, 0, 0)
}

// Scaling returns the transform that scales x by sx and y by sy about the
// origin.
func Scaling(sx, sy float64) AffineTransform {
	return NewAffineTransform(sx, 0, 0, sy, 0, 0)
}

// Apply implements PointTransform.
func (t AffineTransform) Apply(p Point2D) Point2D {
	var out mat.VecDense
	out.MulVec(t.m, mat.NewVecDense(3, []float64{p.X, p.Y, 1}))
	return Point2D{X: out.AtVec(0), Y: out.AtVec(1)}
}

// Compose returns the transform equivalent to applying other first, then t.
func (t AffineTransform) Compose(other AffineTransform) AffineTransform {
	var out mat.Dense
	out.Mul(t.m, other.m)
	return AffineTransform{m: &out}
}

// Invert returns the inverse transform, or an error if the linear part is
// singular.
func (t AffineTransform) Invert() (AffineTransform, error) {
	var inv mat.Dense
	if err := inv.Inverse(t.m); err != nil {
		return AffineTransform{}, fmt.Errorf("affine transform is not invertible: %w", err)
	}
	return AffineTransform{m: &inv}, nil
}

func (t AffineTransform) String() string {
	return fmt.Sprintf("affine[%g %g %g; %g %g %g]",
		t.m.At(0, 0), t.m.At(0, 1), t.m.At(0, 2),
		t.m.At(1, 0), t.m.At(1, 1), t.m.At(1, 2))
}
