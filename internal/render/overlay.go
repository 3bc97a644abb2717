// Package render draws detected footprints over images for the CLI.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/astrokit/footprint"
	"github.com/astrokit/footprint/geom"
)

// golden-angle hue step keeps consecutive footprint colors far apart.
const hueStep = 137.50776405003785

// FootprintColor returns the overlay color for the i-th footprint:
// saturated hues stepped around the wheel by the golden angle, so
// neighboring detections never share a similar color.
func FootprintColor(i int) color.NRGBA {
	h := math.Mod(float64(i)*hueStep, 360)
	c := colorful.Hsv(h, 0.85, 1)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Overlay paints each footprint's pixels over base with a distinct color at
// the given opacity (0..1), and marks every peak with a small cross in the
// footprint's full-strength color. Footprint pixels outside base are
// skipped.
func Overlay(base image.Image, fps []*footprint.Footprint, opacity float64) *image.NRGBA {
	out := imaging.Clone(base)
	b := out.Bounds()
	opacity = math.Max(0, math.Min(1, opacity))

	inside := func(x, y int) bool {
		return x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y
	}

	for i, f := range fps {
		tint := FootprintColor(i)
		for _, s := range f.Spans() {
			for x := s.X0; x <= s.X1; x++ {
				if !inside(x, s.Y) {
					continue
				}
				out.SetNRGBA(x, s.Y, blend(out.NRGBAAt(x, s.Y), tint, opacity))
			}
		}
		for _, p := range f.Peaks() {
			drawCross(out, p.IX, p.IY, tint, inside)
		}
	}
	return out
}

// Outline paints only the boundary pixels of each footprint: covered pixels
// with at least one uncovered 4-neighbor.
func Outline(base image.Image, fps []*footprint.Footprint) *image.NRGBA {
	out := imaging.Clone(base)
	b := out.Bounds()

	for i, f := range fps {
		tint := FootprintColor(i)
		for _, s := range f.Spans() {
			for x := s.X0; x <= s.X1; x++ {
				if x < b.Min.X || x >= b.Max.X || s.Y < b.Min.Y || s.Y >= b.Max.Y {
					continue
				}
				edge := !f.Contains(geom.Point2I{X: x - 1, Y: s.Y}) ||
					!f.Contains(geom.Point2I{X: x + 1, Y: s.Y}) ||
					!f.Contains(geom.Point2I{X: x, Y: s.Y - 1}) ||
					!f.Contains(geom.Point2I{X: x, Y: s.Y + 1})
				if edge {
					out.SetNRGBA(x, s.Y, tint)
				}
			}
		}
	}
	return out
}

func blend(under, over color.NRGBA, opacity float64) color.NRGBA {
	mix := func(u, o uint8) uint8 {
		return uint8(float64(u)*(1-opacity) + float64(o)*opacity)
	}
	return color.NRGBA{
		R: mix(under.R, over.R),
		G: mix(under.G, over.G),
		B: mix(under.B, over.B),
		A: 255,
	}
}

func drawCross(out *image.NRGBA, x, y int, c color.NRGBA, inside func(x, y int) bool) {
	for d := -2; d <= 2; d++ {
		if inside(x+d, y) {
			out.SetNRGBA(x+d, y, c)
		}
		if inside(x, y+d) {
			out.SetNRGBA(x, y+d, c)
		}
	}
}
