// Package pixels provides the dense raster planes that footprints are
// measured against: a generic single-plane Image and the three-plane
// MaskedImage (image, mask, variance) addressed by absolute integer
// coordinates with an origin offset.
//
// # Addressing
//
// Planes are addressed by absolute (x, y) pixel coordinates, not by
// zero-based indices: a plane whose region is (100,200)-(149,249) answers
// At(100, 200) for its first pixel. This matches the footprint convention
// where spans carry absolute row and column positions.
//
// At and Set panic on out-of-bounds access; callers that may run past the
// edge (footprint rasterization, heavy sampling) bounds-check with Contains
// first. Out-of-bounds pixels are a caller decision, not an error the plane
// can answer.
//
// # Pixel Types
//
// Image is generic over its element type. Image and variance planes use
// signed or floating-point types (the Real constraint); mask planes use
// unsigned bit-field types (the Bits constraint). The mask bit operations
// Or, AndNot and Any are free functions constrained to Bits.
package pixels
