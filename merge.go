package footprint

// Merge returns a new footprint covering the union of the two pixel sets,
// carrying both peak lists (brightest first) and the union of the two
// regions. Neither input is modified.
func Merge(a, b *Footprint) *Footprint {
	out := New(len(a.spans) + len(b.spans))
	out.region = a.region.Union(b.region)
	for _, s := range a.spans {
		out.appendSpan(s)
	}
	for _, s := range b.spans {
		out.appendSpan(s)
	}
	out.normalized = false
	out.Normalize()
	out.peaks = append(out.peaks, a.peaks...)
	out.peaks = append(out.peaks, b.peaks...)
	out.SortPeaks()
	return out
}

// MergeList folds a list of footprints into one union footprint. An empty
// list yields an empty footprint.
func MergeList(fps []*Footprint) *Footprint {
	if len(fps) == 0 {
		return New(0)
	}
	out := fps[0].Clone()
	for _, f := range fps[1:] {
		out = Merge(out, f)
	}
	return out
}

// Overlaps reports whether the two footprints share at least one pixel.
// Runs in one pass over both span lists when both are normalized; falls
// back to normalized copies otherwise. Neither input is modified.
func Overlaps(a, b *Footprint) bool {
	if !a.bbox.Overlaps(b.bbox) {
		return false
	}
	as, bs := a.spans, b.spans
	if !a.normalized {
		c := a.Clone()
		c.Normalize()
		as = c.spans
	}
	if !b.normalized {
		c := b.Clone()
		c.Normalize()
		bs = c.spans
	}

	i, j := 0, 0
	for i < len(as) && j < len(bs) {
		sa, sb := as[i], bs[j]
		switch {
		case sa.Y < sb.Y:
			i++
		case sb.Y < sa.Y:
			j++
		case sa.X1 < sb.X0:
			i++
		case sb.X1 < sa.X0:
			j++
		default:
			return true
		}
	}
	return false
}
