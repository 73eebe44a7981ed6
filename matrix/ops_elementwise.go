// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small element-wise and broadcast kernels used by standardization,
//     TOPSIS weighting and composite scoring.
//   - Every kernel returns a new Dense with the input's orientation; inputs
//     are never mutated.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1) over a single flat buffer.
//   - Exactly one O(r*c) allocation per call.

package matrix

const (
	opScaleCols = "ScaleCols"
	opScaleRows = "ScaleRows"
	opAddScalar = "AddScalar"
)

// ScaleCols computes out[i,j] = X[i,j] * scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Cols).
// Complexity: Time O(r*c), Space O(r*c).
func ScaleCols(X *Dense, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(scale, X.c); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}

	out := X.copyDense()
	var i, j, base int
	for i = 0; i < X.r; i++ {
		base = i * X.c // row base offset
		for j = 0; j < X.c; j++ {
			out.data[base+j] *= scale[j]
		}
	}

	return out, nil
}

// ScaleRows computes out[i,j] = X[i,j] * scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Rows).
// Complexity: Time O(r*c), Space O(r*c).
func ScaleRows(X *Dense, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	if err := ValidateVecLen(scale, X.r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}

	out := X.copyDense()
	var i, j, base int
	var s float64
	for i = 0; i < X.r; i++ {
		base = i * X.c
		s = scale[i] // hoist the row factor
		for j = 0; j < X.c; j++ {
			out.data[base+j] *= s
		}
	}

	return out, nil
}

// AddScalar computes out[i,j] = X[i,j] + alpha.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func AddScalar(X *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opAddScalar, err)
	}

	out := X.copyDense()
	for k := range out.data { // flat pass
		out.data[k] += alpha
	}

	return out, nil
}
