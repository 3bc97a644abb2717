package footprint

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/astrokit/footprint/geom"
	"github.com/astrokit/footprint/pixels"
)

// DetectConfig controls the detection scanner.
type DetectConfig struct {
	// Threshold selects which pixels belong to a source. Bitmask
	// thresholds are for mask planes; use DetectMask for those.
	Threshold Threshold

	// MinPixels drops footprints smaller than this many pixels.
	// Values below 1 mean 1.
	MinPixels int

	// EightConnected joins diagonally touching runs into one footprint.
	// When false, only runs sharing a column range on adjacent rows
	// connect (4-connectivity).
	EightConnected bool
}

// Detect scans an image plane for connected regions of above-threshold
// pixels and returns them as normalized footprints, each with its region
// set to the plane's extent and its local maxima recorded as peaks
// (brightest first). Footprints come back ordered by their first span.
//
// Stdev and variance thresholds resolve against statistics computed from
// the plane itself. An empty plane or a level no pixel reaches yields an
// empty list, not an error.
//
// The scanner is single-pass: above-threshold runs are collected per row
// and joined to touching runs on the previous row through a union-find,
// so cost is proportional to image size plus region size.
func Detect[P pixels.Real](im *pixels.Image[P], cfg DetectConfig) ([]*Footprint, error) {
	if cfg.Threshold.Type() == ThresholdBitmask {
		return nil, fmt.Errorf("bitmask threshold applies to mask planes; use DetectMask")
	}
	actual, err := resolveLevel(im, cfg.Threshold)
	if err != nil {
		return nil, err
	}
	pass := func(x, y int) bool {
		return cfg.Threshold.Passes(float64(im.At(x, y)), actual)
	}
	fps := scanRuns(im.Region(), pass, cfg)

	better := func(a, b float64) bool { return a > b }
	if !cfg.Threshold.Positive() {
		better = func(a, b float64) bool { return a < b }
	}
	for _, f := range fps {
		findPeaks(f, func(x, y int) float64 { return float64(im.At(x, y)) }, better)
	}
	return fps, nil
}

// DetectMask scans a mask plane for connected regions where any bit of
// bitmask is set, returning them as normalized footprints without peaks.
func DetectMask[M pixels.Bits](mask *pixels.Image[M], bitmask M, cfg DetectConfig) []*Footprint {
	pass := func(x, y int) bool { return pixels.Any(mask, x, y, bitmask) }
	return scanRuns(mask.Region(), pass, cfg)
}

// resolveLevel turns a threshold into a concrete pixel level, computing
// plane statistics when the threshold type needs them.
func resolveLevel[P pixels.Real](im *pixels.Image[P], t Threshold) (float64, error) {
	switch t.Type() {
	case ThresholdStdev, ThresholdVariance:
		pix := im.Pix()
		vals := make([]float64, len(pix))
		for i, v := range pix {
			vals[i] = float64(v)
		}
		variance := stat.Variance(vals, nil)
		if t.Type() == ThresholdStdev {
			return t.ActualValue(stat.StdDev(vals, nil))
		}
		return t.ActualValue(variance)
	default:
		return t.ActualValue(0)
	}
}

// scanRuns is the shared run-based connected-component pass.
func scanRuns(region geom.Box2I, pass func(x, y int) bool, cfg DetectConfig) []*Footprint {
	minPix := max(cfg.MinPixels, 1)
	reach := 0
	if cfg.EightConnected {
		reach = 1
	}

	type run struct {
		span   Span
		parent int
	}
	var runs []run
	find := func(i int) int {
		for runs[i].parent != i {
			runs[i].parent = runs[runs[i].parent].parent
			i = runs[i].parent
		}
		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			runs[rb].parent = ra
		}
	}

	prevStart, prevEnd := 0, 0
	for y := region.MinY(); y <= region.MaxY(); y++ {
		rowStart := len(runs)
		x0 := -1
		flush := func(x1 int) {
			i := len(runs)
			runs = append(runs, run{span: Span{Y: y, X0: x0, X1: x1}, parent: i})
			for j := prevStart; j < prevEnd; j++ {
				p := runs[j].span
				if p.X0-reach <= x1 && p.X1+reach >= x0 {
					union(i, j)
				}
			}
			x0 = -1
		}
		for x := region.MinX(); x <= region.MaxX(); x++ {
			if pass(x, y) {
				if x0 < 0 {
					x0 = x
				}
				continue
			}
			if x0 >= 0 {
				flush(x - 1)
			}
		}
		if x0 >= 0 {
			flush(region.MaxX())
		}
		prevStart, prevEnd = rowStart, len(runs)
	}

	groups := make(map[int][]Span)
	for i := range runs {
		root := find(i)
		groups[root] = append(groups[root], runs[i].span)
	}

	var fps []*Footprint
	for _, spans := range groups {
		f := FromSpans(spans, region)
		f.Normalize()
		if f.Area() < minPix {
			continue
		}
		fps = append(fps, f)
	}
	sort.Slice(fps, func(i, j int) bool {
		return fps[i].Spans()[0].Less(fps[j].Spans()[0])
	})
	return fps
}

// findPeaks records the local extrema of a footprint's pixel set as peaks,
// brightest first. A pixel is a peak when no in-footprint 8-neighbor is
// better, with plateau ties broken toward the first pixel in row order. A
// footprint whose pixels are all equal gets its first pixel as the peak.
func findPeaks(f *Footprint, value func(x, y int) float64, better func(a, b float64) bool) {
	for _, s := range f.Spans() {
		for x := s.X0; x <= s.X1; x++ {
			v := value(x, s.Y)
			isPeak := true
			for dy := -1; dy <= 1 && isPeak; dy++ {
				for dx := -1; dx <= 1 && isPeak; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, s.Y+dy
					if !f.Contains(geom.Point2I{X: nx, Y: ny}) {
						continue
					}
					nv := value(nx, ny)
					if better(nv, v) {
						isPeak = false
					} else if nv == v && (ny < s.Y || (ny == s.Y && nx < x)) {
						// Plateau: only its first pixel counts.
						isPeak = false
					}
				}
			}
			if isPeak {
				f.AddPeak(float64(x), float64(s.Y), v)
			}
		}
	}
	f.SortPeaks()
}
