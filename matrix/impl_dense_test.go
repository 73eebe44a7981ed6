// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecoeval/matrix"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64, o matrix.Orientation) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, o)
	require.NoError(t, err)

	return m
}

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewFromRows covers copying, ragged input, empty input and NaN rejection.
func TestNewFromRows(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := mustRows(t, src, matrix.IndicatorsByAlternatives)

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, matrix.IndicatorsByAlternatives, m.Orientation())

	src[0][0] = 99 // the input slices are not retained
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}}, matrix.AlternativesByIndicators)
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewFromRows(nil, matrix.AlternativesByIndicators)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{}}, matrix.AlternativesByIndicators)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}}, matrix.AlternativesByIndicators)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewFromRows([][]float64{{math.Inf(-1)}}, matrix.AlternativesByIndicators)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At(), and NaN rejection in Set().
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	val, _ = m.At(0, 0)
	require.Equal(t, 0.0, val) // rejected write leaves the cell untouched
}

// TestRowColCopies verifies Row/Col/ToRows return independent copies.
func TestRowColCopies(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, matrix.AlternativesByIndicators)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, col)

	rows := m.ToRows()
	rows[2][1] = -1
	row[0] = -1
	col[0] = -1
	require.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, m.ToRows())
}

// TestCloneAndOrientation checks deep copies keep orientation.
func TestCloneAndOrientation(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}}, matrix.IndicatorsByAlternatives)

	c := m.Clone()
	require.Equal(t, matrix.IndicatorsByAlternatives, c.Orientation())
	require.NoError(t, c.Set(0, 0, 10))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	row, err := c.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 2}, row)
	require.Equal(t, matrix.IndicatorsByAlternatives, m.Orientation())
}

// TestInduced takes leading blocks and rejects impossible shapes.
func TestInduced(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, matrix.AlternativesByIndicators)

	sub, err := m.Induced(2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {4, 5}}, sub.ToRows())

	_, err = m.Induced(4, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Induced(0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestString renders one bracketed line per row.
func TestString(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 0.5}, {2, 3}}, matrix.AlternativesByIndicators)
	require.Equal(t, "[1, 0.5]\n[2, 3]\n", m.String())
}
