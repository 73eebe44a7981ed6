package ahp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ecoeval/matrix"
)

// Result is the full outcome of the AHP stage.
type Result struct {
	Weights     []float64   // priority vector, sums to 1
	Consistency Consistency // λmax, CI, RI, CR; Accepted honours the configured threshold
	Method      Method      // estimator used
	Order       int         // n actually evaluated (after truncation)
	Truncated   bool        // true when the oversize policy kept the leading block
	Warnings    []error     // non-fatal findings; match with errors.Is
}

// HasWarning reports whether any warning matches target.
func (r *Result) HasWarning(target error) bool {
	for _, w := range r.Warnings {
		if errors.Is(w, target) {
			return true
		}
	}

	return false
}

// Evaluate runs the whole pairwise-weighting stage on A.
//
// Implementation:
//   - Stage 1: shape policy. Non-square fails; n > max order aborts or
//     truncates to the leading block per WithOversize.
//   - Stage 2: entry policy. Every entry must be > 0.
//   - Stage 3: reciprocity. A failure is a warning, or fatal under
//     WithStrictReciprocity.
//   - Stage 4: weights via the selected estimator.
//   - Stage 5: consistency. CR ≥ threshold adds a warning; the result is
//     still returned.
//
// A is never mutated; truncation works on a copy.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrOrderTooLarge,
// ErrNonPositiveEntry, ErrReciprocalInconsistency (strict only),
// ErrDivisionUndefined (n = 1), ErrNotConverged.
func Evaluate(A *matrix.Dense, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: shape policy.
	if err := matrix.ValidateSquare(A); err != nil {
		return nil, err
	}
	res := &Result{Method: o.method}
	if A.Rows() > o.maxOrder {
		if o.oversize != OversizeTruncate {
			return nil, fmt.Errorf("%w: n=%d, max=%d", ErrOrderTooLarge, A.Rows(), o.maxOrder)
		}
		var err error
		if A, err = A.Induced(o.maxOrder, o.maxOrder); err != nil {
			return nil, err
		}
		res.Truncated = true
	}
	res.Order = A.Rows()

	// Stage 2: entry policy.
	if err := validateJudgment(A); err != nil {
		return nil, err
	}

	// Stage 3: reciprocity.
	ok, err := CheckReciprocal(A)
	if err != nil {
		return nil, err
	}
	if !ok {
		if o.strictReciprocity {
			return nil, ErrReciprocalInconsistency
		}
		res.Warnings = append(res.Warnings, fmt.Errorf("%w (tolerance %g)", ErrReciprocalInconsistency, ReciprocalTolerance))
	}

	// Stage 4: weights.
	if res.Weights, err = Weights(A, o.method); err != nil {
		return nil, err
	}

	// Stage 5: consistency.
	if res.Consistency, err = ComputeConsistency(A, res.Weights); err != nil {
		return nil, err
	}
	res.Consistency.Accepted = res.Consistency.CR < o.threshold
	if !res.Consistency.Accepted {
		res.Warnings = append(res.Warnings,
			fmt.Errorf("%w: CR=%.5f ≥ %g", ErrConsistencyThresholdExceeded, res.Consistency.CR, o.threshold))
	}

	return res, nil
}
