package footprint

import (
	"fmt"
	"math"
	"strings"
)

// ThresholdType says how a Threshold's number is interpreted when resolving
// the actual detection level for an image.
type ThresholdType int

const (
	// ThresholdValue uses the number directly as a pixel value.
	ThresholdValue ThresholdType = iota
	// ThresholdBitmask treats the number as a mask bit pattern; a pixel
	// passes when any of the bits is set in the mask plane.
	ThresholdBitmask
	// ThresholdStdev multiplies the number by the image's standard
	// deviation.
	ThresholdStdev
	// ThresholdVariance multiplies the number by the square root of the
	// image's variance (equivalent to ThresholdStdev given consistent
	// statistics, but resolved from a variance estimate).
	ThresholdVariance
)

func (t ThresholdType) String() string {
	switch t {
	case ThresholdValue:
		return "value"
	case ThresholdBitmask:
		return "bitmask"
	case ThresholdStdev:
		return "stdev"
	case ThresholdVariance:
		return "variance"
	}
	return fmt.Sprintf("ThresholdType(%d)", int(t))
}

// ParseThresholdType converts a string name ("value", "bitmask", "stdev",
// "variance") to its ThresholdType.
func ParseThresholdType(s string) (ThresholdType, error) {
	switch strings.ToLower(s) {
	case "value":
		return ThresholdValue, nil
	case "bitmask":
		return ThresholdBitmask, nil
	case "stdev":
		return ThresholdStdev, nil
	case "variance":
		return ThresholdVariance, nil
	}
	return 0, fmt.Errorf("unknown threshold type %q", s)
}

// Threshold is a detection level: a number, how to interpret it, and the
// polarity of the sources it selects. Positive polarity detects pixels at
// or above the resolved level; negative polarity detects pixels at or
// below its negation.
type Threshold struct {
	value    float64
	typ      ThresholdType
	positive bool
}

// NewThreshold builds a threshold. The value must be finite.
func NewThreshold(value float64, typ ThresholdType, positive bool) (Threshold, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Threshold{}, fmt.Errorf("threshold value must be finite, got %g", value)
	}
	return Threshold{value: value, typ: typ, positive: positive}, nil
}

// Value returns the raw threshold number as supplied.
func (t Threshold) Value() float64 { return t.value }

// Type returns the interpretation of the threshold number.
func (t Threshold) Type() ThresholdType { return t.typ }

// Positive reports the polarity: true selects bright sources.
func (t Threshold) Positive() bool { return t.positive }

// ActualValue resolves the detection level against an image statistic:
// param is ignored for value and bitmask thresholds, is the standard
// deviation for stdev thresholds, and the variance for variance
// thresholds. A negative param for a variance threshold is an error.
func (t Threshold) ActualValue(param float64) (float64, error) {
	switch t.typ {
	case ThresholdValue, ThresholdBitmask:
		return t.value, nil
	case ThresholdStdev:
		return t.value * param, nil
	case ThresholdVariance:
		if param < 0 {
			return 0, fmt.Errorf("variance threshold needs a non-negative variance, got %g", param)
		}
		return t.value * math.Sqrt(param), nil
	}
	return 0, fmt.Errorf("unknown threshold type %v", t.typ)
}

// Passes reports whether pixel value v is selected under the resolved
// detection level actual, honoring polarity.
func (t Threshold) Passes(v, actual float64) bool {
	if t.positive {
		return v >= actual
	}
	return v <= -actual
}

func (t Threshold) String() string {
	pol := "positive"
	if !t.positive {
		pol = "negative"
	}
	return fmt.Sprintf("threshold %g (%v, %s)", t.value, t.typ, pol)
}
