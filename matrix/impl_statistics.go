// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics needed by indicator standardization and
//     entropy weighting as deterministic single-pass kernels.
//
// Exposed API:
//   - ColumnSums(X)    -> sums        // Σ_i X[i,j]
//   - ColumnMinMax(X)  -> mins, maxs  // per-column extremes
//   - ColumnNormsL2(X) -> norms       // sqrt(Σ_i X[i,j]²)
//   - Min(X)           -> v           // matrix-wide minimum
//
// Determinism & Performance:
//   - Fixed i→j traversal over the flat row-major buffer.
//   - Each kernel allocates only its O(c) result slice.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opColumnSums    = "ColumnSums"
	opColumnMinMax  = "ColumnMinMax"
	opColumnNormsL2 = "ColumnNormsL2"
	opMin           = "Min"
)

// ColumnSums returns Σ_i X[i,j] for every column j.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(c).
func ColumnSums(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnSums, err)
	}

	sums := make([]float64, X.c)
	var i, j, base int
	for i = 0; i < X.r; i++ { // deterministic row order
		base = i * X.c
		for j = 0; j < X.c; j++ {
			sums[j] += X.data[base+j]
		}
	}

	return sums, nil
}

// ColumnMinMax returns the per-column minimum and maximum.
// Implementation:
//   - Stage 1: seed mins/maxs with row 0.
//   - Stage 2: sweep rows 1..r-1 updating extremes.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(c).
func ColumnMinMax(X *Dense) (mins, maxs []float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnMinMax, err)
	}

	// Stage 1: seed with the first row.
	mins = make([]float64, X.c)
	maxs = make([]float64, X.c)
	copy(mins, X.data[:X.c])
	copy(maxs, X.data[:X.c])

	// Stage 2: sweep remaining rows.
	var i, j, base int
	var v float64
	for i = 1; i < X.r; i++ {
		base = i * X.c
		for j = 0; j < X.c; j++ {
			v = X.data[base+j]
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	return mins, maxs, nil
}

// ColumnNormsL2 returns the Euclidean norm of every column.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(c).
func ColumnNormsL2(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnNormsL2, err)
	}

	norms := make([]float64, X.c)
	var i, j, base int
	var v float64
	for i = 0; i < X.r; i++ {
		base = i * X.c
		for j = 0; j < X.c; j++ {
			v = X.data[base+j]
			norms[j] += v * v // accumulate squares first, sqrt once per column
		}
	}
	for j = 0; j < X.c; j++ {
		norms[j] = math.Sqrt(norms[j])
	}

	return norms, nil
}

// Min returns the smallest entry of X.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func Min(X *Dense) (float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf(opMin, err)
	}

	lo := X.data[0]
	for _, v := range X.data[1:] {
		if v < lo {
			lo = v
		}
	}

	return lo, nil
}
