package rank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecoeval/rank"
)

func TestDescending_TieRules(t *testing.T) {
	scores := []float64{0.5, 0.9, 0.5, 0.1, 0.9}

	cases := []struct {
		rule rank.TieRule
		want []int
	}{
		{rank.Competition, []int{3, 1, 3, 5, 1}},
		{rank.Dense, []int{2, 1, 2, 3, 1}},
		{rank.Ordinal, []int{3, 1, 4, 5, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.rule.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, rank.Descending(scores, tc.rule))
		})
	}
}

func TestDescending_DoesNotMutateInput(t *testing.T) {
	scores := []float64{3, 1, 2}
	_ = rank.Descending(scores, rank.Competition)
	assert.Equal(t, []float64{3, 1, 2}, scores)
}

func TestDescending_Empty(t *testing.T) {
	assert.Empty(t, rank.Descending(nil, rank.Dense))
}

func TestOrder_StableOnTies(t *testing.T) {
	assert.Equal(t, []int{1, 0, 2, 3}, rank.Order([]float64{1, 2, 1, 0}))
}

func TestParseTieRule(t *testing.T) {
	for in, want := range map[string]rank.TieRule{
		"":            rank.Competition,
		"Competition": rank.Competition,
		"dense":       rank.Dense,
		" ordinal ":   rank.Ordinal,
	} {
		got, err := rank.ParseTieRule(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := rank.ParseTieRule("fractional")
	assert.ErrorIs(t, err, rank.ErrUnknownTieRule)
}
