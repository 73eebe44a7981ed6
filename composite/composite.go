package composite

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/ecoeval/combine"
	"github.com/katalvlaran/ecoeval/matrix"
	"github.com/katalvlaran/ecoeval/rank"
)

// ErrZeroWeightSum: the weights cannot be renormalized.
var ErrZeroWeightSum = errors.New("composite: weight sum must be positive")

// ErrNegativeWeight: a weight is negative or not finite.
var ErrNegativeWeight = errors.New("composite: weights must be non-negative and finite")

// Option configures Score.
type Option func(*options)

type options struct {
	tie rank.TieRule
}

// WithTieRule selects the ranking rule (default rank.Competition).
func WithTieRule(r rank.TieRule) Option {
	return func(o *options) { o.tie = r }
}

// Alternative is the composite outcome of one column.
type Alternative struct {
	Index int     // column in the input matrix
	Score float64 // Σ of weighted indicator values
	Rank  int     // 1 = best
}

// Result holds the scoring artifacts. Alternatives keep input column order.
type Result struct {
	Weights      []float64     // renormalized weights, sum 1
	Weighted     *matrix.Dense // IndicatorsByAlternatives
	Alternatives []Alternative
	TieRule      rank.TieRule
}

// Ordered returns the alternatives sorted by rank; equal ranks keep column order.
func (r *Result) Ordered() []Alternative {
	out := make([]Alternative, len(r.Alternatives))
	copy(out, r.Alternatives)
	sort.SliceStable(out, func(a, b int) bool { return out[a].Rank < out[b].Rank })

	return out
}

// Scores returns the composite score per alternative in column order.
func (r *Result) Scores() []float64 {
	out := make([]float64, len(r.Alternatives))
	for i, a := range r.Alternatives {
		out[i] = a.Score
	}

	return out
}

// Score weights each indicator row of std and sums per alternative column.
// The weights are renormalized to sum 1 first; already-normalized input is
// unchanged by this step.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOrientation,
// matrix.ErrDimensionMismatch, ErrNegativeWeight, ErrZeroWeightSum.
// Complexity: O(n·m + m log m).
func Score(std *matrix.Dense, weights []float64, opts ...Option) (*Result, error) {
	o := options{tie: rank.Competition}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	if err := matrix.ValidateOrientation(std, matrix.IndicatorsByAlternatives); err != nil {
		return nil, err
	}
	if err := matrix.ValidateVecLen(weights, std.Rows()); err != nil {
		return nil, fmt.Errorf("composite: one weight per indicator row: %w", err)
	}
	if err := matrix.ValidateFiniteVec(weights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNegativeWeight, err)
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: weight %d is %g", ErrNegativeWeight, i, w)
		}
	}
	w, err := combine.Normalize(weights)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrZeroWeightSum, err)
	}

	weighted, err := matrix.ScaleRows(std, w)
	if err != nil {
		return nil, err
	}
	rows := weighted.ToRows()
	scores := make([]float64, weighted.Cols())
	for _, row := range rows {
		for j, v := range row {
			scores[j] += v
		}
	}

	ranks := rank.Descending(scores, o.tie)
	res := &Result{
		Weights:      w,
		Weighted:     weighted,
		Alternatives: make([]Alternative, len(scores)),
		TieRule:      o.tie,
	}
	for j, s := range scores {
		res.Alternatives[j] = Alternative{Index: j, Score: s, Rank: ranks[j]}
	}

	return res, nil
}
