package footprint

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/astrokit/footprint/geom"
	"github.com/astrokit/footprint/pixels"
)

// newTestMaskedImage fills a masked image with position-dependent values so
// sampling mistakes show up as mismatched pixels, not coincidences.
func newTestMaskedImage(region geom.Box2I) *pixels.MaskedImage[float64, uint16, float32] {
	mi := pixels.NewMaskedImage[float64, uint16, float32](region)
	for y := region.MinY(); y <= region.MaxY(); y++ {
		for x := region.MinX(); x <= region.MaxX(); x++ {
			mi.Image.Set(x, y, float64(100*y+x))
			mi.Mask.Set(x, y, uint16(x%4))
			mi.Variance.Set(x, y, float32(y)+0.5)
		}
	}
	return mi
}

func TestMakeHeavyBufferInvariant(t *testing.T) {
	mi := newTestMaskedImage(box(0, 0, 9, 9))
	f := FromDisk(geom.Point2I{X: 5, Y: 5}, 3, mi.Region())

	h, err := MakeHeavy(f, mi, nil)
	require.NoError(t, err)

	require.Len(t, h.ImageValues(), h.Area())
	require.Len(t, h.MaskValues(), h.Area())
	require.Len(t, h.VarianceValues(), h.Area())
	require.True(t, h.HasValues())
	require.False(t, f.HasValues())
	require.NotEqual(t, f.ID(), h.ID(), "heavy must not share the source footprint's id")

	// Values follow span order.
	i := 0
	for _, s := range h.Spans() {
		for x := s.X0; x <= s.X1; x++ {
			require.Equal(t, float64(100*s.Y+x), h.ImageValues()[i], "image value at ordinal %d", i)
			require.Equal(t, uint16(x%4), h.MaskValues()[i])
			require.Equal(t, float32(s.Y)+0.5, h.VarianceValues()[i])
			i++
		}
	}
}

func TestHeavyInsertInverse(t *testing.T) {
	mi := newTestMaskedImage(box(0, 0, 9, 9))
	f := FromDisk(geom.Point2I{X: 4, Y: 4}, 2.5, mi.Region())

	h, err := MakeHeavy(f, mi, nil)
	require.NoError(t, err)

	blank := pixels.NewMaskedImage[float64, uint16, float32](mi.Region())
	h.Insert(blank)

	for _, s := range h.Spans() {
		for x := s.X0; x <= s.X1; x++ {
			require.Equal(t, mi.Image.At(x, s.Y), blank.Image.At(x, s.Y))
			require.Equal(t, mi.Mask.At(x, s.Y), blank.Mask.At(x, s.Y))
			require.Equal(t, mi.Variance.At(x, s.Y), blank.Variance.At(x, s.Y))
		}
	}
	// Uncovered pixels stay zero.
	require.Zero(t, blank.Image.At(0, 0))
}

func TestHeavyInsertImageOnly(t *testing.T) {
	mi := newTestMaskedImage(box(0, 0, 5, 5))
	f := FromBox(box(1, 1, 3, 3), mi.Region())

	h, err := MakeHeavy(f, mi, nil)
	require.NoError(t, err)

	out := pixels.NewImage[float64](mi.Region())
	h.InsertImage(out)

	if diff := cmp.Diff(mi.Image.At(2, 2), out.At(2, 2)); diff != "" {
		t.Errorf("image value mismatch (-want +got):\n%s", diff)
	}
	require.Zero(t, out.At(0, 0))
}

func TestMakeHeavyOutOfRegionPolicies(t *testing.T) {
	mi := newTestMaskedImage(box(0, 0, 4, 4))
	straddling := FromBox(box(3, 3, 6, 6), geom.Box2I{})

	t.Run("default errors", func(t *testing.T) {
		_, err := MakeHeavy(straddling, mi, nil)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidRegion), "want ErrInvalidRegion, got %v", err)
	})

	t.Run("clip samples the overlap", func(t *testing.T) {
		h, err := MakeHeavy(straddling, mi, &HeavyCtrl{Policy: PolicyClip})
		require.NoError(t, err)
		require.Equal(t, 4, h.Area(), "3..4 x 3..4 overlap")
		require.Len(t, h.ImageValues(), 4)
	})

	t.Run("fill substitutes sentinels", func(t *testing.T) {
		ctrl := &HeavyCtrl{Policy: PolicyFill, ImageFill: -1, MaskFill: 0x8000, VarianceFill: -1}
		h, err := MakeHeavy(straddling, mi, ctrl)
		require.NoError(t, err)
		require.Equal(t, 16, h.Area(), "full footprint retained")

		i := 0
		for _, s := range h.Spans() {
			for x := s.X0; x <= s.X1; x++ {
				if mi.Image.Contains(x, s.Y) {
					require.Equal(t, mi.Image.At(x, s.Y), h.ImageValues()[i])
				} else {
					require.Equal(t, float64(-1), h.ImageValues()[i])
					require.Equal(t, uint16(0x8000), h.MaskValues()[i])
					require.Equal(t, float32(-1), h.VarianceValues()[i])
				}
				i++
			}
		}
	})
}

func TestWrapMaskedImageMismatch(t *testing.T) {
	img := pixels.NewImage[float64](box(0, 0, 4, 4))
	mask := pixels.NewImage[uint16](box(0, 0, 5, 5))
	variance := pixels.NewImage[float32](box(0, 0, 4, 4))

	_, err := pixels.WrapMaskedImage(img, mask, variance)
	require.Error(t, err)
	require.True(t, errors.Is(err, pixels.ErrDimensionMismatch))
}
