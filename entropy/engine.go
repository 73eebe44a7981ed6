package entropy

import (
	"fmt"

	"github.com/katalvlaran/ecoeval/matrix"
)

// Stage is the position of an Engine in its pipeline.
type Stage uint8

const (
	// StageRaw: only the validated raw matrix is held.
	StageRaw Stage = iota
	// StageStandardized: the standardized matrix is cached.
	StageStandardized
	// StageWeightsComputed: entropy weights are cached.
	StageWeightsComputed
	// StageTOPSISComputed: TOPSIS closeness is cached.
	StageTOPSISComputed
)

// String returns a lower-case stage name.
func (s Stage) String() string {
	switch s {
	case StageRaw:
		return "raw"
	case StageStandardized:
		return "standardized"
	case StageWeightsComputed:
		return "weights_computed"
	case StageTOPSISComputed:
		return "topsis_computed"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// Report bundles the artifacts of a full Engine run. Standardized is a copy
// of the engine's matrix.
type Report struct {
	Standardized *matrix.Dense
	Weights      *WeightResult
	TOPSIS       *TOPSISResult
}

// Engine walks Raw → Standardized → WeightsComputed → TOPSISComputed.
// Each stage is computed once and cached; calling a stage again returns the
// cached artifact. An Engine is not safe for concurrent use.
type Engine struct {
	raw   *matrix.Dense
	inds  []Indicator
	opts  Options
	stage Stage

	std     *matrix.Dense
	weights *WeightResult
	topsis  *TOPSISResult
}

// NewEngine validates the raw matrix, indicators and options and returns an
// Engine in StageRaw. raw and inds are copied.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOrientation,
// matrix.ErrDimensionMismatch, ErrMissingRange, ErrBadShift.
func NewEngine(raw *matrix.Dense, inds []Indicator, opts ...Option) (*Engine, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if err = validateShape(raw, inds); err != nil {
		return nil, err
	}
	for _, ind := range inds {
		if ind.Type == Range {
			if _, _, err = ind.Bounds(); err != nil {
				return nil, err
			}
		}
	}

	cp := make([]Indicator, len(inds))
	copy(cp, inds)

	return &Engine{raw: raw.Clone(), inds: cp, opts: o}, nil
}

// Stage reports the furthest stage reached.
func (e *Engine) Stage() Stage { return e.stage }

// Indicators returns a copy of the indicator descriptors.
func (e *Engine) Indicators() []Indicator {
	out := make([]Indicator, len(e.inds))
	copy(out, e.inds)

	return out
}

// Standardize runs (or reuses the cached) standardization and returns a copy
// of the result; writes to it never reach later stages.
func (e *Engine) Standardize() (*matrix.Dense, error) {
	if e.stage < StageStandardized {
		std, err := standardize(e.raw, e.inds, e.opts)
		if err != nil {
			return nil, err
		}
		e.std, e.stage = std, StageStandardized
	}

	return e.std.Clone(), nil
}

// ComputeWeights requires StageStandardized.
// Errors: ErrStage, ErrZeroColumnSum.
func (e *Engine) ComputeWeights() (*WeightResult, error) {
	if e.stage >= StageWeightsComputed {
		return e.weights, nil
	}
	if e.stage < StageStandardized {
		return nil, fmt.Errorf("%w: weights need %s, engine is %s", ErrStage, StageStandardized, e.stage)
	}
	wr, err := Weights(e.std)
	if err != nil {
		return nil, err
	}
	e.weights, e.stage = wr, StageWeightsComputed

	return e.weights, nil
}

// ComputeTOPSIS requires StageWeightsComputed and uses the entropy weights.
// Errors: ErrStage.
func (e *Engine) ComputeTOPSIS() (*TOPSISResult, error) {
	if e.stage >= StageTOPSISComputed {
		return e.topsis, nil
	}
	if e.stage < StageWeightsComputed {
		return nil, fmt.Errorf("%w: TOPSIS needs %s, engine is %s", ErrStage, StageWeightsComputed, e.stage)
	}
	tr, err := TOPSIS(e.std, e.weights.Weights, e.inds, e.opts.usage)
	if err != nil {
		return nil, err
	}
	e.topsis, e.stage = tr, StageTOPSISComputed

	return e.topsis, nil
}

// Run executes every remaining stage in order.
func (e *Engine) Run() (*Report, error) {
	std, err := e.Standardize()
	if err != nil {
		return nil, fmt.Errorf("entropy: standardize: %w", err)
	}
	if _, err = e.ComputeWeights(); err != nil {
		return nil, fmt.Errorf("entropy: weights: %w", err)
	}
	if _, err = e.ComputeTOPSIS(); err != nil {
		return nil, fmt.Errorf("entropy: topsis: %w", err)
	}

	return &Report{Standardized: std, Weights: e.weights, TOPSIS: e.topsis}, nil
}
