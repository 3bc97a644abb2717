package footprint

import "math"

// Grow returns a new footprint dilated by n pixels. The result is always
// normalized, always a superset of the input's pixel set, and carries the
// input's peaks and region. n <= 0 returns a normalized copy.
//
// Isotropic growth is a Minkowski sum with the discretized disk of radius n
// (pixels at Euclidean distance <= n): every span is smeared up and down by
// the disk's row chords. Plain growth uses Chebyshev distance <= n (a
// square structuring element): every span widens by n and is replicated to
// the n rows above and below.
//
// If the input carries a non-empty region, the grown result is clipped to
// it, so growth never escapes the parent image.
func Grow(f *Footprint, n int, isotropic bool) *Footprint {
	if n <= 0 {
		out := f.Clone()
		out.Normalize()
		return out
	}

	grown := New(len(f.spans) * (2*n + 1))
	grown.region = f.region
	grown.peaks = append(grown.peaks, f.peaks...)

	for _, s := range f.spans {
		if s.Width() <= 0 {
			continue
		}
		for dy := -n; dy <= n; dy++ {
			dx := n
			if isotropic {
				dx = int(math.Floor(math.Sqrt(float64(n*n - dy*dy))))
			}
			grown.appendSpan(Span{Y: s.Y + dy, X0: s.X0 - dx, X1: s.X1 + dx})
		}
	}

	grown.normalized = false
	grown.Normalize()
	if !grown.region.IsEmpty() {
		grown.ClipTo(grown.region)
	}
	return grown
}
