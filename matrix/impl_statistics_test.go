// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecoeval/matrix"
)

func TestColumnStatistics(t *testing.T) {
	X := mustRows(t, [][]float64{
		{3, -1, 0},
		{4, 2, 0},
		{0, 5, 0},
	}, matrix.AlternativesByIndicators)

	sums, err := matrix.ColumnSums(X)
	require.NoError(t, err)
	require.Equal(t, []float64{7, 6, 0}, sums)

	mins, maxs, err := matrix.ColumnMinMax(X)
	require.NoError(t, err)
	require.Equal(t, []float64{0, -1, 0}, mins)
	require.Equal(t, []float64{4, 5, 0}, maxs)

	norms, err := matrix.ColumnNormsL2(X)
	require.NoError(t, err)
	require.Equal(t, 5.0, norms[0])                   // 3-4-5 triangle
	require.InDelta(t, math.Sqrt(30), norms[1], 1e-12) // 1 + 4 + 25
	require.Equal(t, 0.0, norms[2])

	lo, err := matrix.Min(X)
	require.NoError(t, err)
	require.Equal(t, -1.0, lo)
}

func TestColumnStatisticsNil(t *testing.T) {
	_, err := matrix.ColumnSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = matrix.ColumnMinMax(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.ColumnNormsL2(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Min(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
