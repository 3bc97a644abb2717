// Package geom provides the integer pixel geometry used throughout the
// footprint library: points, extents, inclusive bounding boxes, ellipse
// row intersection, and point-to-point coordinate transforms.
//
// # Coordinate System
//
// All pixel coordinates follow the standard image convention:
//   - Origin (0, 0) at top-left
//   - X increases rightward
//   - Y increases downward (rows)
//
// # Box Convention
//
// Unlike image.Rectangle, Box2I is inclusive on both corners: a box with
// Min == Max covers exactly one pixel. This matches the inclusive column
// bounds of a footprint Span. ToImageRect and FromImageRect convert to and
// from the half-open standard library convention.
//
// The zero value of Box2I is the empty box: it contains no points, unions
// as the identity, and intersects as the absorbing element.
//
// # Transforms
//
// PointTransform is the abstraction consumed by footprint.Transform: a
// forward mapping of floating-point pixel positions between two frames.
// AffineTransform implements it on a homogeneous 3x3 matrix; TransformFunc
// adapts an arbitrary function. Implementations must be pure: the same
// input always maps to the same output.
package geom
