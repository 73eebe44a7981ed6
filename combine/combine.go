package combine

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ecoeval/matrix"
)

// SumTolerance bounds |Σ combined − 1|.
const SumTolerance = 1e-5

var (
	// ErrNoVectors: nothing to combine, or an empty vector.
	ErrNoVectors = errors.New("combine: at least one non-empty weight vector is required")

	// ErrNonPositiveWeight: some entry is ≤ 0 or not finite.
	ErrNonPositiveWeight = errors.New("combine: weights must be strictly positive")

	// ErrInternal: the normalized product failed its sum check. It signals a
	// numeric defect (for example an underflowing product), not bad input.
	ErrInternal = errors.New("combine: internal error")
)

// Combine multiplies vectors elementwise and normalizes the product.
// Inputs are not modified.
//
// Errors: ErrNoVectors, matrix.ErrDimensionMismatch, ErrNonPositiveWeight,
// ErrInternal.
// Complexity: O(k·m) for k vectors of length m.
func Combine(vectors ...[]float64) ([]float64, error) {
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, ErrNoVectors
	}
	m := len(vectors[0])
	for k, v := range vectors {
		if len(v) != m {
			return nil, fmt.Errorf("combine: vector %d has length %d, want %d: %w", k, len(v), m, matrix.ErrDimensionMismatch)
		}
		for j, x := range v {
			if !(x > 0) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("%w: vector %d entry %d is %g", ErrNonPositiveWeight, k, j, x)
			}
		}
	}

	product := make([]float64, m)
	for j := range product {
		product[j] = 1
		for _, v := range vectors {
			product[j] *= v[j]
		}
	}

	out, err := Normalize(product)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	var s float64
	for _, x := range out {
		s += x
	}
	if math.Abs(s-1) > SumTolerance {
		return nil, fmt.Errorf("%w: combined weights sum to %g", ErrInternal, s)
	}

	return out, nil
}

// ErrZeroSum is returned by Normalize when the vector has no positive mass.
var ErrZeroSum = errors.New("combine: weight sum must be positive and finite")

// Normalize returns w / Σw as a new slice.
// Errors: ErrNoVectors (empty w), ErrZeroSum.
func Normalize(w []float64) ([]float64, error) {
	if len(w) == 0 {
		return nil, ErrNoVectors
	}
	var s float64
	for _, x := range w {
		s += x
	}
	if !(s > 0) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrZeroSum, s)
	}

	out := make([]float64, len(w))
	for i, x := range w {
		out[i] = x / s
	}

	return out, nil
}
