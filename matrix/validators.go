// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/orientation checks here.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks NotNil and Rows()==Cols().
// Returns ErrNilMatrix or ErrNonSquare. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has length n.
// Returns ErrDimensionMismatch otherwise. Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil || len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFiniteVec rejects NaN/±Inf in x with ErrNaNInf. Complexity: O(n).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFiniteVec", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}

// ValidateOrientation checks NotNil and that m is tagged with want.
// Returns ErrNilMatrix or ErrOrientation. Complexity: O(1).
func ValidateOrientation(m *Dense, want Orientation) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.orient != want {
		return validatorErrorf("ValidateOrientation", fmt.Errorf("got %s, want %s: %w", m.orient, want, ErrOrientation))
	}

	return nil
}

// FirstNonPositive scans m in i→j order and returns the coordinates of the
// first entry that is not strictly positive. found is false when every entry
// is > 0. Complexity: O(r*c).
func FirstNonPositive(m *Dense) (row, col int, found bool) {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if !(m.data[base+j] > 0) {
				return i, j, true
			}
		}
	}

	return -1, -1, false
}
