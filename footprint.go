package footprint

import (
	"fmt"
	"math"
	"sort"

	"github.com/astrokit/footprint/geom"
)

// Footprint is a set of pixels represented as a list of Spans, with a cached
// bounding box and area, an attached peak list, and an advisory region box
// naming the parent image's valid extent.
//
// The span list is kept in insertion order until Normalize sorts and merges
// it. Every footprint carries a process-unique id drawn from the package
// IDSource; ids are never shared, even between a footprint and its clones.
type Footprint struct {
	id         int64
	spans      []Span
	area       int
	bbox       geom.Box2I
	peaks      []Peak
	region     geom.Box2I
	normalized bool
}

// New returns an empty footprint with capacity for nspan spans and an
// unconstrained (empty) region.
func New(nspan int) *Footprint {
	return &Footprint{
		id:         nextID(),
		spans:      make([]Span, 0, nspan),
		normalized: true,
	}
}

// FromBox returns a footprint covering every pixel of bbox, one span per
// row, already normalized. Pass the empty box as region to leave the
// footprint unconstrained.
func FromBox(bbox, region geom.Box2I) *Footprint {
	f := New(bbox.Height())
	f.region = region
	for y := bbox.MinY(); y <= bbox.MaxY(); y++ {
		f.appendSpan(Span{Y: y, X0: bbox.MinX(), X1: bbox.MaxX()})
	}
	f.normalized = true
	return f
}

// FromDisk returns a footprint covering the filled disk of the given center
// and radius, discretized per row as x in [cx-dx, cx+dx] with
// dx = floor(sqrt(radius^2 - dy^2)). A non-positive radius yields an empty
// footprint.
func FromDisk(center geom.Point2I, radius float64, region geom.Box2I) *Footprint {
	f := New(0)
	f.region = region
	if radius <= 0 {
		return f
	}
	r := int(radius)
	for dy := -r; dy <= r; dy++ {
		chord := radius*radius - float64(dy)*float64(dy)
		if chord < 0 {
			continue
		}
		dx := int(math.Floor(math.Sqrt(chord)))
		f.appendSpan(Span{Y: center.Y + dy, X0: center.X - dx, X1: center.X + dx})
	}
	f.normalized = true
	return f
}

// FromEllipse returns a footprint covering the filled ellipse, solving the
// row-intersection quadratic for every row of the ellipse's bounding box.
// A degenerate ellipse yields an empty footprint.
func FromEllipse(e geom.Ellipse, region geom.Box2I) *Footprint {
	f := New(0)
	f.region = region
	bbox := e.BBox()
	for y := bbox.MinY(); y <= bbox.MaxY(); y++ {
		if x0, x1, ok := e.RowExtent(y); ok {
			f.appendSpan(Span{Y: y, X0: x0, X1: x1})
		}
	}
	f.normalized = true
	return f
}

// FromSpans returns a footprint holding a copy of the given spans verbatim:
// insertion order is preserved and the result is NOT normalized. Call
// Normalize before operations that want sorted spans.
func FromSpans(spans []Span, region geom.Box2I) *Footprint {
	f := New(len(spans))
	f.region = region
	for _, s := range spans {
		f.appendSpan(s)
	}
	f.normalized = len(f.spans) <= 1
	return f
}

// Clone returns a deep copy with a fresh id. Spans, peaks, region, and the
// normalized state all carry over; only the id differs.
func (f *Footprint) Clone() *Footprint {
	out := &Footprint{
		id:         nextID(),
		spans:      append([]Span(nil), f.spans...),
		area:       f.area,
		bbox:       f.bbox,
		peaks:      append([]Peak(nil), f.peaks...),
		region:     f.region,
		normalized: f.normalized,
	}
	return out
}

// ID returns the footprint's process-unique id.
func (f *Footprint) ID() int64 { return f.id }

// Spans returns the footprint's span list in its current order. The slice
// is the footprint's own storage; callers must not modify it.
func (f *Footprint) Spans() []Span { return f.spans }

// NumSpans returns the number of spans in the list.
func (f *Footprint) NumSpans() int { return len(f.spans) }

// Area returns the number of pixels covered, the sum of all span widths.
func (f *Footprint) Area() int { return f.area }

// BBox returns the smallest box containing all spans, empty if there are
// none.
func (f *Footprint) BBox() geom.Box2I { return f.bbox }

// Region returns the valid extent of the parent image, or the empty box if
// the footprint is unconstrained. Advisory only: spans may lie outside it
// until ClipTo is called.
func (f *Footprint) Region() geom.Box2I { return f.region }

// SetRegion replaces the advisory region box.
func (f *Footprint) SetRegion(region geom.Box2I) { f.region = region }

// IsNormalized reports whether the span list is in canonical sorted, merged
// form.
func (f *Footprint) IsNormalized() bool { return f.normalized }

// Peaks returns the footprint's peak list. The slice is the footprint's own
// storage; callers must not modify it.
func (f *Footprint) Peaks() []Peak { return f.peaks }

// AddPeak records a peak at (fx, fy) with the given value and returns it.
func (f *Footprint) AddPeak(fx, fy, value float64) Peak {
	p := NewPeak(fx, fy, value)
	f.peaks = append(f.peaks, p)
	return p
}

// SortPeaks sorts the peak list brightest first.
func (f *Footprint) SortPeaks() {
	sort.Slice(f.peaks, func(i, j int) bool { return f.peaks[i].Less(f.peaks[j]) })
}

// appendSpan appends without touching the normalized flag, maintaining the
// cached bbox and area incrementally.
func (f *Footprint) appendSpan(s Span) {
	f.spans = append(f.spans, s)
	if s.Width() > 0 {
		f.area += s.Width()
		f.bbox = f.bbox.
			Include(geom.Point2I{X: s.X0, Y: s.Y}).
			Include(geom.Point2I{X: s.X1, Y: s.Y})
	}
}

// AddSpan appends the run [x0, x1] on row y and returns it. The bounding
// box and area update incrementally; the normalized flag clears.
func (f *Footprint) AddSpan(y, x0, x1 int) Span {
	s := Span{Y: y, X0: x0, X1: x1}
	f.appendSpan(s)
	f.normalized = false
	return s
}

// AddSpanShifted appends a copy of span translated by (dx, dy) and returns
// the copy. AddSpanShifted(s, 0, 0) appends an exact copy.
func (f *Footprint) AddSpanShifted(span Span, dx, dy int) Span {
	return f.AddSpan(span.Y+dy, span.X0+dx, span.X1+dx)
}

// Shift translates every span and peak by (dx, dy). The bounding box shifts
// with them; the region box does not move, since it describes the parent
// image rather than the footprint.
func (f *Footprint) Shift(dx, dy int) {
	for i := range f.spans {
		f.spans[i] = f.spans[i].Shifted(dx, dy)
	}
	for i := range f.peaks {
		f.peaks[i].FX += float64(dx)
		f.peaks[i].FY += float64(dy)
		f.peaks[i].IX += dx
		f.peaks[i].IY += dy
	}
	f.bbox = f.bbox.Shifted(dx, dy)
}

// ClipTo removes every pixel outside box, truncating spans that straddle
// the edge and dropping rows entirely outside. Peaks whose pixel position
// falls outside the clipped set are dropped with them. A footprint that was
// normalized stays normalized: clipping shrinks spans in place without
// reordering.
func (f *Footprint) ClipTo(box geom.Box2I) {
	out := f.spans[:0]
	if !box.IsEmpty() {
		for _, s := range f.spans {
			if s.Y < box.MinY() || s.Y > box.MaxY() {
				continue
			}
			x0 := max(s.X0, box.MinX())
			x1 := min(s.X1, box.MaxX())
			if x1 < x0 {
				continue
			}
			out = append(out, Span{Y: s.Y, X0: x0, X1: x1})
		}
	}
	f.spans = out
	f.recompute()

	peaks := f.peaks[:0]
	for _, p := range f.peaks {
		if f.Contains(geom.Point2I{X: p.IX, Y: p.IY}) {
			peaks = append(peaks, p)
		}
	}
	f.peaks = peaks
}

// Normalize sorts the span list by (y, x0, x1) and merges overlapping or
// touching spans on the same row into single runs, dropping empty spans.
// Idempotent: a normalized footprint is returned untouched.
func (f *Footprint) Normalize() {
	if f.normalized {
		return
	}

	spans := f.spans[:0]
	for _, s := range f.spans {
		if s.Width() > 0 {
			spans = append(spans, s)
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Less(spans[j]) })

	merged := spans[:0]
	for _, s := range spans {
		if n := len(merged); n > 0 && merged[n-1].Y == s.Y && s.X0 <= merged[n-1].X1+1 {
			if s.X1 > merged[n-1].X1 {
				merged[n-1].X1 = s.X1
			}
			continue
		}
		merged = append(merged, s)
	}

	f.spans = merged
	f.recompute()
	f.normalized = true
}

// recompute rebuilds the cached area and bounding box from the span list.
func (f *Footprint) recompute() {
	f.area = 0
	f.bbox = geom.Box2I{}
	for _, s := range f.spans {
		if s.Width() <= 0 {
			continue
		}
		f.area += s.Width()
		f.bbox = f.bbox.
			Include(geom.Point2I{X: s.X0, Y: s.Y}).
			Include(geom.Point2I{X: s.X1, Y: s.Y})
	}
}

// Contains reports whether pixel p is covered by any span. Correct in every
// normalization state: normalized footprints are binary searched, others
// scanned linearly.
func (f *Footprint) Contains(p geom.Point2I) bool {
	if !f.bbox.ContainsPoint(p) {
		return false
	}
	if !f.normalized {
		for _, s := range f.spans {
			if s.ContainsPoint(p.X, p.Y) {
				return true
			}
		}
		return false
	}
	// Spans are sorted by (y, x0) with disjoint runs per row, so x1 is
	// monotone within a row and the predicate below is monotone overall.
	i := sort.Search(len(f.spans), func(i int) bool {
		s := f.spans[i]
		return s.Y > p.Y || (s.Y == p.Y && s.X1 >= p.X)
	})
	return i < len(f.spans) && f.spans[i].ContainsPoint(p.X, p.Y)
}

// Equals reports whether two footprints cover the same spans in the same
// order, carry equal peaks (position and value; peak ids are per-process
// and ignored), and share the same region. Footprint ids are ignored.
func (f *Footprint) Equals(other *Footprint) bool {
	if len(f.spans) != len(other.spans) || len(f.peaks) != len(other.peaks) || f.region != other.region {
		return false
	}
	for i := range f.spans {
		if f.spans[i] != other.spans[i] {
			return false
		}
	}
	for i := range f.peaks {
		a, b := f.peaks[i], other.peaks[i]
		if a.FX != b.FX || a.FY != b.FY || a.IX != b.IX || a.IY != b.IY || a.Value != b.Value {
			return false
		}
	}
	return true
}

func (f *Footprint) String() string {
	return fmt.Sprintf("footprint %d: %d spans, area %d, bbox %v", f.id, len(f.spans), f.area, f.bbox)
}
