package combine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecoeval/combine"
	"github.com/katalvlaran/ecoeval/matrix"
)

func TestCombine(t *testing.T) {
	ahpW := []float64{0.5714, 0.2857, 0.1429}
	entW := []float64{0.2, 0.3, 0.5}

	got, err := combine.Combine(ahpW, entW)
	require.NoError(t, err)

	p := []float64{0.5714 * 0.2, 0.2857 * 0.3, 0.1429 * 0.5}
	s := p[0] + p[1] + p[2]
	for j := range p {
		assert.InDelta(t, p[j]/s, got[j], 1e-12)
	}
	assert.InDelta(t, 1.0, got[0]+got[1]+got[2], combine.SumTolerance)

	// inputs untouched
	assert.Equal(t, []float64{0.2, 0.3, 0.5}, entW)
}

func TestCombine_OrderInvariant(t *testing.T) {
	w1 := []float64{0.1, 0.6, 0.3}
	w2 := []float64{0.25, 0.25, 0.5}
	w3 := []float64{0.7, 0.2, 0.1}

	a, err := combine.Combine(w1, w2)
	require.NoError(t, err)
	b, err := combine.Combine(w2, w1)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := combine.Combine(w1, w2, w3)
	require.NoError(t, err)
	d, err := combine.Combine(w3, w1, w2)
	require.NoError(t, err)
	for j := range c {
		assert.InDelta(t, c[j], d[j], 1e-15)
	}
}

func TestCombine_SingleVectorIsNormalized(t *testing.T) {
	got, err := combine.Combine([]float64{2, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.5}, got)
}

func TestCombine_Errors(t *testing.T) {
	tests := []struct {
		name    string
		vectors [][]float64
		want    error
	}{
		{"none", nil, combine.ErrNoVectors},
		{"empty", [][]float64{{}}, combine.ErrNoVectors},
		{"length mismatch", [][]float64{{0.5, 0.5}, {1}}, matrix.ErrDimensionMismatch},
		{"zero", [][]float64{{0.5, 0.5}, {0, 1}}, combine.ErrNonPositiveWeight},
		{"negative", [][]float64{{-0.5, 1.5}}, combine.ErrNonPositiveWeight},
		{"nan", [][]float64{{math.NaN(), 1}}, combine.ErrNonPositiveWeight},
		{"inf", [][]float64{{math.Inf(1), 1}}, combine.ErrNonPositiveWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := combine.Combine(tc.vectors...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCombine_UnderflowIsInternal(t *testing.T) {
	tiny := []float64{1e-200, 1e-200}
	_, err := combine.Combine(tiny, tiny)
	assert.ErrorIs(t, err, combine.ErrInternal)
}

func TestNormalize(t *testing.T) {
	got, err := combine.Normalize([]float64{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.75}, got)

	_, err = combine.Normalize([]float64{0, 0})
	assert.ErrorIs(t, err, combine.ErrZeroSum)
	_, err = combine.Normalize(nil)
	assert.ErrorIs(t, err, combine.ErrNoVectors)
}
