package entropy

import (
	"fmt"
	"strings"
)

// IndicatorType tags how a column's raw values map to "goodness".
type IndicatorType uint8

const (
	// Max: larger is better.
	Max IndicatorType = iota
	// Min: smaller is better.
	Min
	// Range: values inside [Lower, Upper] are ideal, distance outside is penalized.
	Range
)

// String returns "max", "min" or "range".
func (t IndicatorType) String() string {
	switch t {
	case Max:
		return "max"
	case Min:
		return "min"
	case Range:
		return "range"
	default:
		return fmt.Sprintf("IndicatorType(%d)", uint8(t))
	}
}

// ParseIndicatorType maps "max", "min" or "range" (case-insensitive).
func ParseIndicatorType(s string) (IndicatorType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	case "range":
		return Range, nil
	default:
		return Max, fmt.Errorf("%w: %q", ErrUnknownIndicatorType, s)
	}
}

// Indicator describes one column of the indicator matrix.
// Lower and Upper are only consulted for Range indicators.
type Indicator struct {
	Name  string
	Type  IndicatorType
	Lower *float64
	Upper *float64
}

// MaxIndicator returns a larger-is-better indicator.
func MaxIndicator(name string) Indicator { return Indicator{Name: name, Type: Max} }

// MinIndicator returns a smaller-is-better indicator.
func MinIndicator(name string) Indicator { return Indicator{Name: name, Type: Min} }

// RangeIndicator returns a moderate indicator with target interval [a, b].
func RangeIndicator(name string, a, b float64) Indicator {
	return Indicator{Name: name, Type: Range, Lower: &a, Upper: &b}
}

// Bounds returns the target interval of a Range indicator with a ≤ b;
// reversed bounds are swapped.
// Errors: ErrMissingRange when either bound is nil.
func (ind Indicator) Bounds() (a, b float64, err error) {
	if ind.Lower == nil || ind.Upper == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMissingRange, ind.label())
	}
	a, b = *ind.Lower, *ind.Upper
	if a > b {
		a, b = b, a
	}

	return a, b, nil
}

func (ind Indicator) label() string {
	if ind.Name == "" {
		return "<unnamed>"
	}

	return ind.Name
}

// Method selects the optional second normalization pass.
type Method uint8

const (
	// MinMax keeps the per-type [0,1] rescaling only.
	MinMax Method = iota
	// SumOfSquares additionally divides every column by its Euclidean norm.
	SumOfSquares
)

// String returns the name accepted by ParseMethod.
func (m Method) String() string {
	if m == SumOfSquares {
		return "sum_of_squares"
	}

	return "minmax"
}

// ParseMethod maps "minmax" / "range" or "sum_of_squares" / "vector"; "" yields MinMax.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "minmax", "min_max", "range":
		return MinMax, nil
	case "sum_of_squares", "sumofsquares", "vector":
		return SumOfSquares, nil
	default:
		return MinMax, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// WeightUsage controls where TOPSIS applies the weights.
type WeightUsage uint8

const (
	// Both bakes weights into the matrix and multiplies each distance term.
	Both WeightUsage = iota
	// WeightedValuesOnly bakes weights into the matrix only.
	WeightedValuesOnly
	// WeightedDistanceOnly multiplies each distance term only.
	WeightedDistanceOnly
)

// String returns the name accepted by ParseWeightUsage.
func (u WeightUsage) String() string {
	switch u {
	case WeightedValuesOnly:
		return "values"
	case WeightedDistanceOnly:
		return "distance"
	default:
		return "both"
	}
}

func (u WeightUsage) weightsValues() bool   { return u == Both || u == WeightedValuesOnly }
func (u WeightUsage) weightsDistance() bool { return u == Both || u == WeightedDistanceOnly }

// ParseWeightUsage maps "both", "values" or "distance"; "" yields Both.
func ParseWeightUsage(s string) (WeightUsage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return Both, nil
	case "values", "weighted_values":
		return WeightedValuesOnly, nil
	case "distance", "weighted_distance":
		return WeightedDistanceOnly, nil
	default:
		return Both, fmt.Errorf("%w: %q", ErrUnknownWeightUsage, s)
	}
}
