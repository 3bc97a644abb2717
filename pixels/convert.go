package pixels

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/astrokit/footprint/geom"
)

// FromImage converts a standard library image into a float64 plane of
// luminance values in [0, 255], preserving the source's origin offset.
// Color images are converted to grayscale first.
func FromImage(src image.Image) *Image[float64] {
	gray := imaging.Grayscale(src)
	b := src.Bounds()
	out := NewImage[float64](geom.FromImageRect(b))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// Grayscale output is NRGBA with R==G==B.
			out.Set(x, y, float64(gray.NRGBAAt(x-b.Min.X, y-b.Min.Y).R))
		}
	}
	return out
}

// ToGray renders a plane as an 8-bit grayscale image, linearly scaling the
// plane's value range onto [0, 255]. A constant plane renders as black.
// The result uses zero-based coordinates regardless of the plane's origin.
func ToGray[T Real](im *Image[T]) *image.Gray {
	r := im.Region()
	out := image.NewGray(image.Rect(0, 0, r.Width(), r.Height()))
	if r.IsEmpty() {
		return out
	}

	pix := im.Pix()
	lo, hi := pix[0], pix[0]
	for _, v := range pix {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	scale := 0.0
	if hi > lo {
		scale = 255 / (float64(hi) - float64(lo))
	}
	for i, v := range pix {
		out.Pix[i] = uint8((float64(v) - float64(lo)) * scale)
	}
	return out
}
