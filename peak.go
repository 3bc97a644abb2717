package footprint

import (
	"fmt"
	"math"
)

// Peak records a local maximum inside a footprint: the floating-point
// centroid position, the integer pixel it snaps to, and the pixel value
// there. Peaks are owned by exactly one footprint and copied with it.
type Peak struct {
	ID    int64   `json:"id"`
	FX    float64 `json:"fx"`
	FY    float64 `json:"fy"`
	IX    int     `json:"ix"`
	IY    int     `json:"iy"`
	Value float64 `json:"value"`
}

// NewPeak builds a peak at the floating-point position (fx, fy) with the
// given value, snapping the integer position to the nearest pixel. The id
// comes from the package IDSource.
func NewPeak(fx, fy, value float64) Peak {
	return Peak{
		ID:    nextID(),
		FX:    fx,
		FY:    fy,
		IX:    int(math.Round(fx)),
		IY:    int(math.Round(fy)),
		Value: value,
	}
}

// Less orders peaks brightest first, breaking value ties by id so sorts are
// deterministic.
func (p Peak) Less(other Peak) bool {
	if p.Value != other.Value {
		return p.Value > other.Value
	}
	return p.ID < other.ID
}

func (p Peak) String() string {
	return fmt.Sprintf("peak (%g,%g) value %g", p.FX, p.FY, p.Value)
}
