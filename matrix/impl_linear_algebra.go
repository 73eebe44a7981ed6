// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Linear algebra kernels needed by the weighting engines: y = A·x (AHP
//     consistency) and Aᵀ (orientation switch before composite scoring).
//
// Determinism:
//   - Fixed i→j loop orders; results are bit-identical across runs.

package matrix

import "fmt"

const (
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
// The result still matches the wrapped sentinel via errors.Is.
// Callers must not pass a nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j] // accumulate a(i,j)*x(j)
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns mᵀ as a new Dense with the orientation tag flipped.
// This is the only operation that changes a matrix's Orientation together
// with its layout.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res, err := NewDense(m.c, m.r) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res.orient = m.orient.Flip()

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}
