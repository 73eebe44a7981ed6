// SPDX-License-Identifier: MIT

// Package matrix provides the numeric table type shared by every stage of
// the ecoeval pipeline.
//
// What it offers:
//
//   - Dense: a row-major float64 table with bounds-checked At/Set and an
//     explicit Orientation tag (alternatives×indicators or the transpose).
//   - Validators: a single source of truth for shape, finiteness and
//     orientation checks (validators.go).
//   - Column statistics used by standardization and entropy weighting:
//     sums, min/max, L2 norms, global minimum (impl_statistics.go).
//   - Element-wise kernels: column/row scaling and scalar shift
//     (ops_elementwise.go).
//   - Linear algebra: MatVec and Transpose (impl_linear_algebra.go).
//
// Determinism:
//
//	All loops run in fixed i→j order; no map iteration, no randomness.
//	Every transform allocates a fresh Dense and never mutates its input,
//	so callers can share a matrix between goroutines as long as nobody
//	calls Set on it.
//
// Orientation:
//
//	Entropy weighting and TOPSIS read rows as alternatives and columns as
//	indicators (AlternativesByIndicators). Composite scoring reads rows as
//	indicators (IndicatorsByAlternatives). Transpose flips the tag so the
//	switch between stages is explicit and checked with ValidateOrientation.
//
//	import "github.com/katalvlaran/ecoeval/matrix"
//
//	x, err := matrix.NewFromRows([][]float64{{1, 10}, {2, 20}}, matrix.AlternativesByIndicators)
//	xt, err := matrix.Transpose(x) // xt.Orientation() == matrix.IndicatorsByAlternatives
package matrix
