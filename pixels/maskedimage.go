package pixels

import (
	"errors"
	"fmt"

	"github.com/astrokit/footprint/geom"
)

// ErrDimensionMismatch reports planes or buffers whose sizes disagree where
// the contract requires them to match. Wrapped errors carry the offending
// dimensions; test with errors.Is.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// MaskedImage bundles the three parallel planes of an observed image: the
// science pixels, a bit-field mask, and a per-pixel variance. All three
// planes share one region.
type MaskedImage[P Real, M Bits, V Real] struct {
	Image    *Image[P]
	Mask     *Image[M]
	Variance *Image[V]
}

// NewMaskedImage allocates three zero-filled planes covering region.
func NewMaskedImage[P Real, M Bits, V Real](region geom.Box2I) *MaskedImage[P, M, V] {
	return &MaskedImage[P, M, V]{
		Image:    NewImage[P](region),
		Mask:     NewImage[M](region),
		Variance: NewImage[V](region),
	}
}

// WrapMaskedImage bundles existing planes, failing with ErrDimensionMismatch
// if their regions differ.
func WrapMaskedImage[P Real, M Bits, V Real](img *Image[P], mask *Image[M], variance *Image[V]) (*MaskedImage[P, M, V], error) {
	if img.Region() != mask.Region() || img.Region() != variance.Region() {
		return nil, fmt.Errorf("%w: image %v, mask %v, variance %v",
			ErrDimensionMismatch, img.Region(), mask.Region(), variance.Region())
	}
	return &MaskedImage[P, M, V]{Image: img, Mask: mask, Variance: variance}, nil
}

// Region returns the shared extent of the three planes.
func (mi *MaskedImage[P, M, V]) Region() geom.Box2I { return mi.Image.Region() }
