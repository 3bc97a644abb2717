package footprint

import (
	"github.com/astrokit/footprint/geom"
	"github.com/astrokit/footprint/pixels"
)

// SetImage writes value into every pixel of im covered by the footprint.
// Pixels outside the plane are silently skipped. Returns value, so calls
// can be chained into accounting code the way the mask setters are.
func SetImage[T pixels.Pixel](im *pixels.Image[T], f *Footprint, value T) T {
	for _, s := range f.spans {
		for x := s.X0; x <= s.X1; x++ {
			if im.Contains(x, s.Y) {
				im.Set(x, s.Y, value)
			}
		}
	}
	return value
}

// SetImageList writes value into every pixel covered by any footprint in
// the list.
func SetImageList[T pixels.Pixel](im *pixels.Image[T], fps []*Footprint, value T) T {
	for _, f := range fps {
		SetImage(im, f, value)
	}
	return value
}

// SetMask ORs bitmask into every mask pixel covered by the footprint.
// Pixels outside the plane are silently skipped. Returns bitmask.
func SetMask[M pixels.Bits](mask *pixels.Image[M], f *Footprint, bitmask M) M {
	for _, s := range f.spans {
		for x := s.X0; x <= s.X1; x++ {
			if mask.Contains(x, s.Y) {
				pixels.Or(mask, x, s.Y, bitmask)
			}
		}
	}
	return bitmask
}

// SetMaskList ORs bitmask under every footprint in the list.
func SetMaskList[M pixels.Bits](mask *pixels.Image[M], fps []*Footprint, bitmask M) M {
	for _, f := range fps {
		SetMask(mask, f, bitmask)
	}
	return bitmask
}

// ClearMask clears bitmask from every mask pixel covered by the footprint.
// Pixels outside the plane are silently skipped. Returns bitmask.
func ClearMask[M pixels.Bits](mask *pixels.Image[M], f *Footprint, bitmask M) M {
	for _, s := range f.spans {
		for x := s.X0; x <= s.X1; x++ {
			if mask.Contains(x, s.Y) {
				pixels.AndNot(mask, x, s.Y, bitmask)
			}
		}
	}
	return bitmask
}

// IntersectMask removes, in place, every pixel of f whose mask value has
// any bit of bitmask set, along with every pixel outside the mask plane
// (an unreadable pixel cannot be shown to be unmasked). Spans are split
// around removed pixels, the result is normalized, and peaks that lost
// their pixel are dropped.
func IntersectMask[M pixels.Bits](f *Footprint, mask *pixels.Image[M], bitmask M) {
	kept := make([]Span, 0, len(f.spans))
	for _, s := range f.spans {
		x0 := -1
		for x := s.X0; x <= s.X1; x++ {
			bad := !mask.Contains(x, s.Y) || pixels.Any(mask, x, s.Y, bitmask)
			if bad {
				if x0 >= 0 {
					kept = append(kept, Span{Y: s.Y, X0: x0, X1: x - 1})
					x0 = -1
				}
				continue
			}
			if x0 < 0 {
				x0 = x
			}
		}
		if x0 >= 0 {
			kept = append(kept, Span{Y: s.Y, X0: x0, X1: s.X1})
		}
	}
	f.spans = kept
	f.normalized = false
	f.Normalize()

	peaks := f.peaks[:0]
	for _, p := range f.peaks {
		if f.Contains(geom.Point2I{X: p.IX, Y: p.IY}) {
			peaks = append(peaks, p)
		}
	}
	f.peaks = peaks
}

// AndMask returns a new footprint holding only the pixels of f that are NOT
// masked by bitmask, leaving f unmodified. The result has a fresh id and
// carries the surviving peaks.
func AndMask[M pixels.Bits](f *Footprint, mask *pixels.Image[M], bitmask M) *Footprint {
	out := f.Clone()
	IntersectMask(out, mask, bitmask)
	return out
}
