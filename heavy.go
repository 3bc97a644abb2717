package footprint

import (
	"errors"
	"fmt"

	"github.com/astrokit/footprint/pixels"
)

// ErrInvalidRegion reports a footprint that does not lie within the region
// an operation requires it to, with no fallback policy configured. Wrapped
// errors carry the offending boxes; test with errors.Is.
var ErrInvalidRegion = errors.New("footprint outside valid region")

// OutOfRegionPolicy selects how MakeHeavy treats a footprint whose bounding
// box extends past the source image's region.
type OutOfRegionPolicy int

const (
	// PolicyError fails construction with ErrInvalidRegion. This is the
	// zero value: the policy choice is always explicit, never silent.
	PolicyError OutOfRegionPolicy = iota
	// PolicyClip clips the footprint to the image region before sampling.
	PolicyClip
	// PolicyFill keeps the full footprint and substitutes the configured
	// fill values for pixels outside the image.
	PolicyFill
)

// HeavyCtrl configures HeavyFootprint construction. The zero value uses
// PolicyError. Fill values apply only under PolicyFill and are converted
// to the destination pixel types.
type HeavyCtrl struct {
	Policy       OutOfRegionPolicy
	ImageFill    float64
	MaskFill     uint64
	VarianceFill float64
}

// Heavy is a footprint that additionally carries the image, mask, and
// variance values sampled under every covered pixel, one entry per pixel
// in normalized span order. The three buffers are owned exclusively and
// never alias the source image.
type Heavy[P pixels.Real, M pixels.Bits, V pixels.Real] struct {
	*Footprint
	image    []P
	mask     []M
	variance []V
}

// HasValues reports whether per-pixel values are attached. On a plain
// Footprint this is false; on a Heavy it is true. Capability checks go
// through this method rather than type assertions.
func (f *Footprint) HasValues() bool { return false }

// HasValues implements the value-carrying capability; always true for a
// constructed Heavy.
func (h *Heavy[P, M, V]) HasValues() bool { return true }

// ImageValues returns the sampled image values in span order.
// The slice is the heavy footprint's own storage.
func (h *Heavy[P, M, V]) ImageValues() []P { return h.image }

// MaskValues returns the sampled mask values in span order.
func (h *Heavy[P, M, V]) MaskValues() []M { return h.mask }

// VarianceValues returns the sampled variance values in span order.
func (h *Heavy[P, M, V]) VarianceValues() []V { return h.variance }

// MakeHeavy samples the image, mask, and variance values of mi under every
// pixel of f, in normalized span order, into a new Heavy. The input
// footprint is not modified; the heavy's embedded footprint is a
// normalized copy with a fresh id.
//
// If f's bounding box extends outside mi's region, ctrl.Policy decides:
// PolicyError fails with ErrInvalidRegion, PolicyClip samples only the
// in-region pixels, PolicyFill substitutes the ctrl fill values outside.
// A nil ctrl means the zero policy, PolicyError.
func MakeHeavy[P pixels.Real, M pixels.Bits, V pixels.Real](
	f *Footprint,
	mi *pixels.MaskedImage[P, M, V],
	ctrl *HeavyCtrl,
) (*Heavy[P, M, V], error) {
	if ctrl == nil {
		ctrl = &HeavyCtrl{}
	}
	fp := f.Clone()
	fp.Normalize()

	region := mi.Region()
	if !region.ContainsBox(fp.BBox()) {
		switch ctrl.Policy {
		case PolicyError:
			return nil, fmt.Errorf("%w: footprint bbox %v extends outside image region %v",
				ErrInvalidRegion, fp.BBox(), region)
		case PolicyClip:
			fp.ClipTo(region)
		case PolicyFill:
			// Sampled below with fill values for the outside pixels.
		default:
			return nil, fmt.Errorf("unknown out-of-region policy %d", ctrl.Policy)
		}
	}

	h := &Heavy[P, M, V]{
		Footprint: fp,
		image:     make([]P, 0, fp.Area()),
		mask:      make([]M, 0, fp.Area()),
		variance:  make([]V, 0, fp.Area()),
	}
	for _, s := range fp.Spans() {
		for x := s.X0; x <= s.X1; x++ {
			if mi.Image.Contains(x, s.Y) {
				h.image = append(h.image, mi.Image.At(x, s.Y))
				h.mask = append(h.mask, mi.Mask.At(x, s.Y))
				h.variance = append(h.variance, mi.Variance.At(x, s.Y))
			} else {
				h.image = append(h.image, P(ctrl.ImageFill))
				h.mask = append(h.mask, M(ctrl.MaskFill))
				h.variance = append(h.variance, V(ctrl.VarianceFill))
			}
		}
	}
	return h, nil
}

// Insert writes the stored image, mask, and variance values back into mi at
// the footprint's span locations, in capture order. Writes overwrite
// unconditionally; pixels outside mi are silently skipped, their stored
// values left unused.
func (h *Heavy[P, M, V]) Insert(mi *pixels.MaskedImage[P, M, V]) {
	i := 0
	for _, s := range h.Spans() {
		for x := s.X0; x <= s.X1; x++ {
			if mi.Image.Contains(x, s.Y) {
				mi.Image.Set(x, s.Y, h.image[i])
				mi.Mask.Set(x, s.Y, h.mask[i])
				mi.Variance.Set(x, s.Y, h.variance[i])
			}
			i++
		}
	}
}

// InsertImage writes only the stored image values back into a single plane.
func (h *Heavy[P, M, V]) InsertImage(im *pixels.Image[P]) {
	i := 0
	for _, s := range h.Spans() {
		for x := s.X0; x <= s.X1; x++ {
			if im.Contains(x, s.Y) {
				im.Set(x, s.Y, h.image[i])
			}
			i++
		}
	}
}
