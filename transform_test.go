package footprint

import (
	"math"
	"testing"

	"github.com/astrokit/footprint/geom"
)

func TestTransformTranslationMatchesShift(t *testing.T) {
	f := FromDisk(geom.Point2I{X: 5, Y: 5}, 3, geom.Box2I{})
	f.AddPeak(5, 5, 20)

	got := Transform(f, geom.Translation(10, -4), geom.Box2I{})

	want := f.Clone()
	want.Shift(10, -4)
	want.Normalize()

	if got.Area() != want.Area() {
		t.Fatalf("Area: got %d, want %d", got.Area(), want.Area())
	}
	for p := range pixelSet(want) {
		if !got.Contains(p) {
			t.Errorf("translated footprint missing pixel %v", p)
		}
	}
	if len(got.Peaks()) != 1 {
		t.Fatalf("got %d peaks, want 1", len(got.Peaks()))
	}
	if pk := got.Peaks()[0]; pk.FX != 15 || pk.FY != 1 {
		t.Errorf("peak mapped to (%g,%g), want (15,1)", pk.FX, pk.FY)
	}
}

func TestTransformRotation(t *testing.T) {
	// 90-degree rotation about the origin maps (x, y) -> (-y, x).
	f := New(0)
	f.AddSpan(0, 1, 3)

	got := Transform(f, geom.Rotation(math.Pi/2), geom.Box2I{})

	if got.Area() != 3 {
		t.Fatalf("Area: got %d, want 3", got.Area())
	}
	for _, p := range []geom.Point2I{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}} {
		if !got.Contains(p) {
			t.Errorf("rotated footprint missing %v", p)
		}
	}
	if !got.IsNormalized() {
		t.Error("transform result not normalized")
	}
}

func TestTransformClipsToBBox(t *testing.T) {
	f := FromBox(box(0, 0, 9, 0), geom.Box2I{})
	clip := box(3, 0, 5, 0)

	got := Transform(f, geom.IdentityTransform(), clip)

	if got.Area() != 3 {
		t.Errorf("Area: got %d, want 3", got.Area())
	}
	if got.Region() != clip {
		t.Errorf("Region: got %v, want %v", got.Region(), clip)
	}
}

func TestTransformScatteredPixelsRenormalize(t *testing.T) {
	// Scaling by 2 tears one span into isolated pixels; the result must
	// still be a well-formed normalized footprint.
	f := New(0)
	f.AddSpan(0, 0, 4)

	got := Transform(f, geom.Scaling(2, 1), geom.Box2I{})

	if got.Area() != 5 {
		t.Fatalf("Area: got %d, want 5", got.Area())
	}
	for x := 0; x <= 8; x += 2 {
		if !got.Contains(geom.Point2I{X: x, Y: 0}) {
			t.Errorf("missing scaled pixel (%d,0)", x)
		}
	}
	if got.Contains(geom.Point2I{X: 1, Y: 0}) {
		t.Error("scaled footprint contains a gap pixel")
	}
}
