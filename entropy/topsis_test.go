package entropy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecoeval/entropy"
	"github.com/katalvlaran/ecoeval/matrix"
)

var twoMax = []entropy.Indicator{entropy.MaxIndicator("yield"), entropy.MaxIndicator("income")}

func TestTOPSIS_Both(t *testing.T) {
	std := mustMatrix(t, [][]float64{{0.01, 0.01}, {0.51, 0.51}, {1.01, 1.01}})
	res, err := entropy.TOPSIS(std, []float64{0.5, 0.5}, twoMax, entropy.Both)
	require.NoError(t, err)

	assertVec(t, []float64{0.505, 0.505}, res.Positive, eps)
	assertVec(t, []float64{0.005, 0.005}, res.Negative, eps)

	// values are halved and each distance term is halved again
	d := math.Sqrt(2 * 0.25 * 0.25 * 0.25)
	assertVec(t, []float64{2 * d, d, 0}, res.DistPos, eps)
	assertVec(t, []float64{0, d, 2 * d}, res.DistNeg, eps)
	assertVec(t, []float64{0, 0.5, 1}, res.Closeness, eps)
	assert.Equal(t, []int{3, 2, 1}, res.Rank)
}

func TestTOPSIS_MinIndicatorIdeals(t *testing.T) {
	std := mustMatrix(t, [][]float64{{1}, {2}})
	res, err := entropy.TOPSIS(std, []float64{1}, []entropy.Indicator{entropy.MinIndicator("cost")}, entropy.WeightedValuesOnly)
	require.NoError(t, err)

	assert.Equal(t, []float64{1}, res.Positive)
	assert.Equal(t, []float64{2}, res.Negative)
	assert.Equal(t, []float64{1, 0}, res.Closeness)
	assert.Equal(t, []int{1, 2}, res.Rank)
}

func TestTOPSIS_WeightUsage(t *testing.T) {
	std := mustMatrix(t, [][]float64{{0.2, 0.9}, {0.7, 0.3}, {0.5, 0.5}})
	w := []float64{0.8, 0.2}

	for _, u := range []entropy.WeightUsage{entropy.Both, entropy.WeightedValuesOnly, entropy.WeightedDistanceOnly} {
		res, err := entropy.TOPSIS(std, w, twoMax, u)
		require.NoError(t, err, u.String())
		assert.Equal(t, u, res.Usage)
		for i, c := range res.Closeness {
			assert.GreaterOrEqual(t, c, 0.0, "%s row %d", u, i)
			assert.LessOrEqual(t, c, 1.0, "%s row %d", u, i)
		}
		// the second indicator is light, so row 1 wins under any usage
		assert.Equal(t, 1, res.Rank[1], u.String())
	}

	res, err := entropy.TOPSIS(std, w, twoMax, entropy.WeightedDistanceOnly)
	require.NoError(t, err)
	assert.Equal(t, std.ToRows(), res.Weighted.ToRows(), "distance-only usage leaves values unweighted")
}

func TestTOPSIS_IdenticalRowsCloseToZero(t *testing.T) {
	res, err := entropy.TOPSIS(mustMatrix(t, [][]float64{{1, 1}, {1, 1}}), []float64{0.5, 0.5}, twoMax, entropy.Both)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, res.Closeness)
	assert.Equal(t, []int{1, 2}, res.Rank)
}

func TestTOPSIS_Errors(t *testing.T) {
	std := mustMatrix(t, [][]float64{{1, 1}, {2, 2}})

	_, err := entropy.TOPSIS(std, []float64{1}, twoMax, entropy.Both)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = entropy.TOPSIS(std, []float64{0.5, math.NaN()}, twoMax, entropy.Both)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = entropy.TOPSIS(std, []float64{0.5, 0.5}, twoMax[:1], entropy.Both)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
