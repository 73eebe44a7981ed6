package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ecoeval/ahp"
	"github.com/katalvlaran/ecoeval/combine"
	"github.com/katalvlaran/ecoeval/composite"
	"github.com/katalvlaran/ecoeval/entropy"
	"github.com/katalvlaran/ecoeval/matrix"
	"github.com/katalvlaran/ecoeval/rank"
)

// ErrJudgmentOrder: the judgment matrix does not cover every indicator.
var ErrJudgmentOrder = errors.New("pipeline: judgment order must equal the indicator count")

// Input describes one evaluation.
type Input struct {
	// Alternatives optionally labels the rows of Raw.
	Alternatives []string
	// Raw is the alternatives × indicators matrix.
	Raw        *matrix.Dense
	Indicators []entropy.Indicator
	// Judgment is an optional pairwise comparison matrix over Indicators.
	Judgment *matrix.Dense
	// ExtraWeights are further vectors folded into the combination.
	ExtraWeights [][]float64

	EntropyOptions []entropy.Option
	AHPOptions     []ahp.Option
	TieRule        rank.TieRule
}

// Output carries every intermediate artifact.
type Output struct {
	AHP       *ahp.Result // nil when no judgment was supplied
	Entropy   *entropy.Report
	Combined  []float64
	Composite *composite.Result
	Warnings  []error
}

// Ranking is one row of the final table.
type Ranking struct {
	Label string
	composite.Alternative
}

// Ranking returns the alternatives best-first with their labels; unlabeled
// alternatives are named by their 1-based position.
func (o *Output) Ranking(labels []string) []Ranking {
	ordered := o.Composite.Ordered()
	out := make([]Ranking, len(ordered))
	for i, a := range ordered {
		label := fmt.Sprintf("#%d", a.Index+1)
		if a.Index < len(labels) && labels[a.Index] != "" {
			label = labels[a.Index]
		}
		out[i] = Ranking{Label: label, Alternative: a}
	}

	return out
}

// Run executes the stages in order and stops at the first fatal error.
// Non-fatal findings (AHP reciprocity and consistency warnings, the entropy
// equal-weight fallback) are collected in Output.Warnings.
func Run(in Input) (*Output, error) {
	if in.Raw == nil {
		return nil, fmt.Errorf("pipeline: raw matrix: %w", matrix.ErrNilMatrix)
	}
	if len(in.Alternatives) > 0 && len(in.Alternatives) != in.Raw.Rows() {
		return nil, fmt.Errorf("pipeline: %d labels for %d alternatives: %w",
			len(in.Alternatives), in.Raw.Rows(), matrix.ErrDimensionMismatch)
	}
	out := &Output{}
	vectors := make([][]float64, 0, 2+len(in.ExtraWeights))

	if in.Judgment != nil {
		res, err := ahp.Evaluate(in.Judgment, in.AHPOptions...)
		if err != nil {
			return nil, fmt.Errorf("pipeline: ahp: %w", err)
		}
		if res.Order != len(in.Indicators) {
			return nil, fmt.Errorf("%w: order %d, indicators %d", ErrJudgmentOrder, res.Order, len(in.Indicators))
		}
		out.AHP = res
		out.Warnings = append(out.Warnings, res.Warnings...)
		vectors = append(vectors, res.Weights)
	}

	eng, err := entropy.NewEngine(in.Raw, in.Indicators, in.EntropyOptions...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: entropy: %w", err)
	}
	if out.Entropy, err = eng.Run(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if out.Entropy.Weights.Fallback {
		out.Warnings = append(out.Warnings, entropy.ErrEqualWeightFallback)
	}
	vectors = append(vectors, out.Entropy.Weights.Weights)
	vectors = append(vectors, in.ExtraWeights...)

	if out.Combined, err = combine.Combine(vectors...); err != nil {
		return nil, fmt.Errorf("pipeline: combine: %w", err)
	}

	byIndicator, err := matrix.Transpose(out.Entropy.Standardized)
	if err != nil {
		return nil, fmt.Errorf("pipeline: composite: %w", err)
	}
	if out.Composite, err = composite.Score(byIndicator, out.Combined, composite.WithTieRule(in.TieRule)); err != nil {
		return nil, fmt.Errorf("pipeline: composite: %w", err)
	}

	return out, nil
}
