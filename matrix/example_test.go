// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/ecoeval/matrix"
)

// ExampleTranspose switches an alternatives × indicators table to the
// indicator-major layout used for composite scoring.
func ExampleTranspose() {
	X, _ := matrix.NewFromRows([][]float64{
		{0.2, 0.9},
		{0.7, 0.3},
		{0.5, 0.5},
	}, matrix.AlternativesByIndicators)

	T, _ := matrix.Transpose(X)
	fmt.Println(T.Rows(), "x", T.Cols(), T.Orientation() == matrix.IndicatorsByAlternatives)
	fmt.Print(T)
	// Output:
	// 2 x 3 true
	// [0.2, 0.7, 0.5]
	// [0.9, 0.3, 0.5]
}
