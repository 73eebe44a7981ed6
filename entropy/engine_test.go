package entropy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecoeval/entropy"
	"github.com/katalvlaran/ecoeval/matrix"
)

func TestEngine_StageOrder(t *testing.T) {
	eng, err := entropy.NewEngine(mustMatrix(t, yieldAndIncome), twoMax)
	require.NoError(t, err)
	assert.Equal(t, entropy.StageRaw, eng.Stage())

	_, err = eng.ComputeWeights()
	assert.ErrorIs(t, err, entropy.ErrStage)
	_, err = eng.ComputeTOPSIS()
	assert.ErrorIs(t, err, entropy.ErrStage)

	std, err := eng.Standardize()
	require.NoError(t, err)
	assert.Equal(t, entropy.StageStandardized, eng.Stage())

	_, err = eng.ComputeTOPSIS()
	assert.ErrorIs(t, err, entropy.ErrStage)

	wr, err := eng.ComputeWeights()
	require.NoError(t, err)
	tr, err := eng.ComputeTOPSIS()
	require.NoError(t, err)
	assert.Equal(t, entropy.StageTOPSISComputed, eng.Stage())

	// Stages are cached.
	again, err := eng.Standardize()
	require.NoError(t, err)
	assert.NotSame(t, std, again)
	assert.Equal(t, std.ToRows(), again.ToRows())
	rep, err := eng.Run()
	require.NoError(t, err)
	assert.Same(t, wr, rep.Weights)
	assert.Same(t, tr, rep.TOPSIS)
}

func TestEngine_Run(t *testing.T) {
	raw := mustMatrix(t, yieldAndIncome)
	eng, err := entropy.NewEngine(raw, twoMax)
	require.NoError(t, err)

	rep, err := eng.Run()
	require.NoError(t, err)
	assertVec(t, []float64{0.5, 0.5}, rep.Weights.Weights, eps)
	assertVec(t, []float64{0, 0.5, 1}, rep.TOPSIS.Closeness, eps)
	assert.Equal(t, []int{3, 2, 1}, rep.TOPSIS.Rank)
	assert.False(t, rep.Weights.Fallback)

	// The engine works on its own copy.
	require.NoError(t, raw.Set(0, 0, 100))
	v, err := rep.Standardized.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, v, eps)
}

func TestEngine_StandardizedIsACopy(t *testing.T) {
	eng, err := entropy.NewEngine(mustMatrix(t, [][]float64{{1, 10}, {2, 20}, {3, 30}}), twoMax)
	require.NoError(t, err)

	std, err := eng.Standardize()
	require.NoError(t, err)
	require.NoError(t, std.Set(0, 0, 100))

	cached, err := eng.Standardize()
	require.NoError(t, err)
	v, err := cached.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, v, eps)

	wr, err := eng.ComputeWeights()
	require.NoError(t, err)
	assertVec(t, []float64{0.5, 0.5}, wr.Weights, eps)

	rep, err := eng.Run()
	require.NoError(t, err)
	require.NoError(t, rep.Standardized.Set(1, 1, 100))
	again, err := eng.Run()
	require.NoError(t, err)
	v, err = again.Standardized.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.51, v, eps)
}

func TestEngine_RunWrapsStageErrors(t *testing.T) {
	// Both observations sit one unit outside the point interval [5, 5], so the
	// range column standardizes to zeros and shift 0 leaves it that way.
	eng, err := entropy.NewEngine(mustMatrix(t, [][]float64{{4, 3}, {6, 5}}),
		[]entropy.Indicator{entropy.RangeIndicator("ph", 5, 5), entropy.MaxIndicator("b")}, entropy.WithShift(0))
	require.NoError(t, err)

	_, err = eng.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, entropy.ErrZeroColumnSum)
	assert.Contains(t, err.Error(), "weights")
	assert.Equal(t, entropy.StageStandardized, eng.Stage())
}

func TestNewEngine_Validation(t *testing.T) {
	raw := mustMatrix(t, yieldAndIncome)

	_, err := entropy.NewEngine(raw, []entropy.Indicator{twoMax[0], {Name: "ph", Type: entropy.Range}})
	assert.ErrorIs(t, err, entropy.ErrMissingRange)

	_, err = entropy.NewEngine(raw, twoMax, entropy.WithShift(2))
	assert.ErrorIs(t, err, entropy.ErrBadShift)

	_, err = entropy.NewEngine(raw, twoMax[:1])
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	eng, err := entropy.NewEngine(raw, twoMax)
	require.NoError(t, err)
	inds := eng.Indicators()
	inds[0].Name = "changed"
	assert.Equal(t, "yield", eng.Indicators()[0].Name)
}
