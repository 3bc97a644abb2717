package footprint

import (
	"math"

	"github.com/astrokit/footprint/geom"
)

// roundToInt snaps a transformed position to its nearest pixel, half away
// from zero, matching Peak's integer-position snapping.
func roundToInt(v float64) int { return int(math.Round(v)) }

// Transform maps every pixel of f through t, producing a new footprint in
// the target frame. The mapping is applied pointwise to pixel centers with
// nearest-integer snapping, so a contiguous source span may land as a
// scattered or reordered set of target pixels under a nonlinear mapping;
// the result is renormalized before return. When bbox is non-empty the
// result is clipped to it and bbox becomes the result's region.
//
// Peaks are mapped through the same transform. Peaks that land outside
// bbox are dropped with their pixels.
func Transform(f *Footprint, t geom.PointTransform, bbox geom.Box2I) *Footprint {
	out := New(len(f.spans))
	out.region = bbox

	for _, s := range f.spans {
		for x := s.X0; x <= s.X1; x++ {
			p := t.Apply(geom.Point2D{X: float64(x), Y: float64(s.Y)})
			ix, iy := roundToInt(p.X), roundToInt(p.Y)
			if !bbox.IsEmpty() && !bbox.ContainsPoint(geom.Point2I{X: ix, Y: iy}) {
				continue
			}
			out.appendSpan(Span{Y: iy, X0: ix, X1: ix})
		}
	}
	out.normalized = false
	out.Normalize()

	for _, pk := range f.peaks {
		p := t.Apply(geom.Point2D{X: pk.FX, Y: pk.FY})
		ix, iy := roundToInt(p.X), roundToInt(p.Y)
		if !bbox.IsEmpty() && !bbox.ContainsPoint(geom.Point2I{X: ix, Y: iy}) {
			continue
		}
		out.peaks = append(out.peaks, Peak{
			ID: nextID(), FX: p.X, FY: p.Y, IX: ix, IY: iy, Value: pk.Value,
		})
	}
	return out
}
