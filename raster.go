package footprint

import (
	"github.com/astrokit/footprint/geom"
	"github.com/astrokit/footprint/pixels"
)

// InsertIntoImage rasterizes the footprint into an id image, writing id at
// every covered pixel. Pixels outside region (when region is non-empty) or
// outside the plane are silently skipped.
func InsertIntoImage[T pixels.Bits](im *pixels.Image[T], f *Footprint, id T, region geom.Box2I) {
	for _, s := range f.spans {
		for x := s.X0; x <= s.X1; x++ {
			if !region.IsEmpty() && !region.ContainsPoint(geom.Point2I{X: x, Y: s.Y}) {
				continue
			}
			if im.Contains(x, s.Y) {
				im.Set(x, s.Y, id)
			}
		}
	}
}

// InsertIntoImageOverwrite rasterizes the footprint into an id image that
// may already hold other footprints' ids, collecting collisions.
//
// At every covered pixel the previous id-like value old = pixel &^ idMask
// is examined; a non-zero old is recorded into oldIDs (when oldIDs is not
// nil). If overwrite is true the pixel becomes (pixel & idMask) | id;
// otherwise id is written only where old was zero, so earlier footprints
// win. Bits under idMask are always preserved. Pixels outside region (when
// non-empty) or outside the plane are silently skipped.
//
// This supports footprint-merging workflows: after inserting each member,
// oldIDs names exactly the already-inserted footprints it collided with.
func InsertIntoImageOverwrite[T pixels.Bits](
	im *pixels.Image[T],
	f *Footprint,
	id T,
	overwrite bool,
	idMask T,
	oldIDs map[T]struct{},
	region geom.Box2I,
) {
	for _, s := range f.spans {
		for x := s.X0; x <= s.X1; x++ {
			if !region.IsEmpty() && !region.ContainsPoint(geom.Point2I{X: x, Y: s.Y}) {
				continue
			}
			if !im.Contains(x, s.Y) {
				continue
			}
			pix := im.At(x, s.Y)
			old := pix &^ idMask
			if old != 0 {
				if oldIDs != nil {
					oldIDs[old] = struct{}{}
				}
				if !overwrite {
					continue
				}
			}
			im.Set(x, s.Y, (pix&idMask)|id)
		}
	}
}
