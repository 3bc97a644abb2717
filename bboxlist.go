package footprint

import "github.com/astrokit/footprint/geom"

// ToBBoxList decomposes a footprint's pixel set into non-overlapping
// axis-aligned boxes whose union is exactly the pixel set. Consecutive rows
// with identical column ranges merge into taller boxes; the decomposition
// is greedy, not guaranteed minimal. The input is not modified; a
// non-normalized footprint is normalized on a copy first.
func ToBBoxList(f *Footprint) []geom.Box2I {
	spans := f.spans
	if !f.normalized {
		c := f.Clone()
		c.Normalize()
		spans = c.spans
	}

	type column struct {
		x0, x1 int
		y0, y1 int
	}

	var boxes []geom.Box2I
	var open []column
	closeBox := func(c column) {
		boxes = append(boxes, geom.NewBox2I(
			geom.Point2I{X: c.x0, Y: c.y0},
			geom.Point2I{X: c.x1, Y: c.y1},
		))
	}

	for i := 0; i < len(spans); {
		y := spans[i].Y
		var next []column
		for ; i < len(spans) && spans[i].Y == y; i++ {
			s := spans[i]
			extended := false
			for j, c := range open {
				if c.y1 == y-1 && c.x0 == s.X0 && c.x1 == s.X1 {
					c.y1 = y
					next = append(next, c)
					open = append(open[:j], open[j+1:]...)
					extended = true
					break
				}
			}
			if !extended {
				next = append(next, column{x0: s.X0, x1: s.X1, y0: y, y1: y})
			}
		}
		// Whatever was not continued onto this row is finished.
		for _, c := range open {
			closeBox(c)
		}
		open = next
	}
	for _, c := range open {
		closeBox(c)
	}
	return boxes
}
