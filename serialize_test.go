package footprint

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/astrokit/footprint/geom"
)

func TestFootprintRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Footprint
	}{
		{"empty", func() *Footprint { return New(0) }},
		{"normalized box with peaks", func() *Footprint {
			f := FromBox(box(10, 10, 12, 12), box(0, 0, 99, 99))
			f.AddPeak(11.25, 10.75, 42.5)
			f.AddPeak(10, 12, 7)
			return f
		}},
		{"unsorted spans keep their order", func() *Footprint {
			f := New(0)
			f.AddSpan(5, 4, 6)
			f.AddSpan(2, 0, 3)
			f.AddSpan(5, 0, 3)
			return f
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.build()
			data, err := Marshal(f)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			got, err := Unmarshal(data)
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}

			if !got.Equals(f) {
				t.Errorf("round trip not equal:\n  in:  %v %v\n  out: %v %v", f, f.Spans(), got, got.Spans())
			}
			if diff := cmp.Diff(f.Spans(), got.Spans()); diff != "" {
				t.Errorf("span mismatch (-want +got):\n%s", diff)
			}
			if got.Region() != f.Region() {
				t.Errorf("region: got %v, want %v", got.Region(), f.Region())
			}
			if got.Area() != f.Area() {
				t.Errorf("area: got %d, want %d", got.Area(), f.Area())
			}
		})
	}
}

func TestRoundTripAssignsFreshID(t *testing.T) {
	f := FromBox(box(0, 0, 1, 1), geom.Box2I{})
	data, err := Marshal(f)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.ID() == f.ID() {
		t.Error("deserialized footprint reused the serialized id")
	}
}

func TestSerializedFormIsSpanTriples(t *testing.T) {
	f := New(0)
	f.AddSpan(5, 0, 3)

	data, err := Marshal(f)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var wire struct {
		Spans []map[string]int `json:"spans"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("wire decode failed: %v", err)
	}
	if len(wire.Spans) != 1 {
		t.Fatalf("got %d wire spans, want 1", len(wire.Spans))
	}
	want := map[string]int{"y": 5, "x0": 0, "x1": 3}
	if diff := cmp.Diff(want, wire.Spans[0]); diff != "" {
		t.Errorf("wire span (-want +got):\n%s", diff)
	}
}

func TestRoundTripPreservesNormalizationState(t *testing.T) {
	f := FromBox(box(0, 0, 3, 3), geom.Box2I{})
	data, _ := Marshal(f)
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !got.IsNormalized() {
		t.Error("canonical span list not recognized as normalized")
	}

	u := New(0)
	u.AddSpan(1, 0, 1)
	u.AddSpan(0, 0, 1)
	data, _ = Marshal(u)
	got, err = Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.IsNormalized() {
		t.Error("out-of-order span list wrongly marked normalized")
	}
}

func TestBoxJSONRoundTrip(t *testing.T) {
	for _, b := range []geom.Box2I{{}, box(-3, 2, 7, 9)} {
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", b, err)
		}
		var got geom.Box2I
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if got != b {
			t.Errorf("box round trip: got %v, want %v", got, b)
		}
	}
}
