package entropy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecoeval/entropy"
)

func TestWeights_Computed(t *testing.T) {
	// Column 0 is uniform (no information), column 1 is 1:3.
	res, err := entropy.Weights(mustMatrix(t, [][]float64{{1, 1}, {1, 3}}))
	require.NoError(t, err)

	h := -(0.25*math.Log(0.25) + 0.75*math.Log(0.75))
	assertVec(t, []float64{1, h / math.Log(2)}, res.Entropy, eps)
	assertVec(t, []float64{0, 1 - h/math.Log(2)}, res.Diversity, eps)
	assertVec(t, []float64{0, 1}, res.Weights, eps)
	assert.Equal(t, []int{2, 1}, res.Rank)
	assert.False(t, res.Fallback)
}

func TestWeights_SumToOneAndNonNegative(t *testing.T) {
	res, err := entropy.Weights(mustMatrix(t, [][]float64{
		{0.2, 3.1, 0.9},
		{0.4, 2.7, 0.1},
		{0.9, 3.0, 0.5},
		{0.3, 2.9, 0.7},
	}))
	require.NoError(t, err)

	var s float64
	for j, w := range res.Weights {
		assert.GreaterOrEqual(t, w, 0.0)
		assert.GreaterOrEqual(t, res.Entropy[j], 0.0)
		assert.LessOrEqual(t, res.Entropy[j], 1.0+eps)
		s += w
	}
	assert.InDelta(t, 1.0, s, 1e-12)
	assert.ElementsMatch(t, []int{1, 2, 3}, res.Rank)
}

func TestWeights_UniformColumnsFallBackToEqual(t *testing.T) {
	res, err := entropy.Weights(mustMatrix(t, [][]float64{{1, 2, 7}, {1, 2, 7}, {1, 2, 7}}))
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	for _, w := range res.Weights {
		assert.Equal(t, 1.0/3.0, w)
	}
	// equal weights keep column order
	assert.Equal(t, []int{1, 2, 3}, res.Rank)
}

func TestWeights_SingleAlternative(t *testing.T) {
	res, err := entropy.Weights(mustMatrix(t, [][]float64{{0.3, 0.7}}))
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, []float64{1, 1}, res.Entropy)
	assert.Equal(t, []float64{0.5, 0.5}, res.Weights)
}

func TestWeights_ZeroColumnSum(t *testing.T) {
	_, err := entropy.Weights(mustMatrix(t, [][]float64{{0, 1}, {0, 2}}))
	assert.ErrorIs(t, err, entropy.ErrZeroColumnSum)

	_, err = entropy.Weights(mustMatrix(t, [][]float64{{-1, 1}, {0.5, 2}}))
	assert.ErrorIs(t, err, entropy.ErrZeroColumnSum)
}
