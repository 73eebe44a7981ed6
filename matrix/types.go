// SPDX-License-Identifier: MIT

package matrix

// Orientation records which axis of a Dense holds alternatives and which
// holds indicators. The tag travels with the matrix through every transform
// and is flipped only by Transpose.
type Orientation uint8

const (
	// AlternativesByIndicators: rows are alternatives, columns are indicators.
	// This is the layout of raw input, standardization, entropy and TOPSIS.
	AlternativesByIndicators Orientation = iota

	// IndicatorsByAlternatives: rows are indicators, columns are alternatives.
	// This is the layout consumed by composite scoring.
	IndicatorsByAlternatives
)

// String returns a short, stable name used in error messages and JSON.
func (o Orientation) String() string {
	switch o {
	case AlternativesByIndicators:
		return "alternatives×indicators"
	case IndicatorsByAlternatives:
		return "indicators×alternatives"
	default:
		return "unknown"
	}
}

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == AlternativesByIndicators {
		return IndicatorsByAlternatives
	}

	return AlternativesByIndicators
}
