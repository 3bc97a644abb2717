package footprint

import (
	"encoding/json"

	"github.com/astrokit/footprint/geom"
)

// footprintJSON is the wire form of a Footprint: region box, ordered span
// list as (y, x0, x1) triples, and peak list. Ids are per-process and do
// not round-trip; deserialization draws fresh ones.
type footprintJSON struct {
	Region geom.Box2I `json:"region"`
	Spans  []Span     `json:"spans"`
	Peaks  []peakJSON `json:"peaks"`
}

type peakJSON struct {
	FX    float64 `json:"fx"`
	FY    float64 `json:"fy"`
	IX    int     `json:"ix"`
	IY    int     `json:"iy"`
	Value float64 `json:"value"`
}

// MarshalJSON implements json.Marshaler. Span order is preserved exactly;
// the footprint id is omitted.
func (f *Footprint) MarshalJSON() ([]byte, error) {
	w := footprintJSON{
		Region: f.region,
		Spans:  f.spans,
		Peaks:  make([]peakJSON, len(f.peaks)),
	}
	if w.Spans == nil {
		w.Spans = []Span{}
	}
	for i, p := range f.peaks {
		w.Peaks[i] = peakJSON{FX: p.FX, FY: p.FY, IX: p.IX, IY: p.IY, Value: p.Value}
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. The reconstructed footprint
// has the serialized spans in their serialized order, equal peaks, and the
// serialized region, but a fresh id. Normalization state is rediscovered
// from the span order.
func (f *Footprint) UnmarshalJSON(data []byte) error {
	var w footprintJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	out := FromSpans(w.Spans, w.Region)
	out.normalized = isCanonical(w.Spans)
	for _, p := range w.Peaks {
		out.peaks = append(out.peaks, Peak{
			ID: nextID(), FX: p.FX, FY: p.FY, IX: p.IX, IY: p.IY, Value: p.Value,
		})
	}
	*f = *out
	return nil
}

// isCanonical reports whether spans are already in normalized form: sorted,
// non-empty, and with no touching or overlapping runs on a row.
func isCanonical(spans []Span) bool {
	for i, s := range spans {
		if s.Width() <= 0 {
			return false
		}
		if i == 0 {
			continue
		}
		prev := spans[i-1]
		if !prev.Less(s) {
			return false
		}
		if prev.Y == s.Y && s.X0 <= prev.X1+1 {
			return false
		}
	}
	return true
}

// Marshal serializes a footprint to JSON bytes.
func Marshal(f *Footprint) ([]byte, error) { return json.Marshal(f) }

// Unmarshal reconstructs a footprint from JSON bytes produced by Marshal.
func Unmarshal(data []byte) (*Footprint, error) {
	f := New(0)
	if err := json.Unmarshal(data, f); err != nil {
		return nil, err
	}
	return f, nil
}
