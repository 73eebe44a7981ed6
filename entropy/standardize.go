package entropy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ecoeval/matrix"
)

// Standardize rescales every column of X to "larger is better" values.
//
// Per column j with observed min/max:
//
//	Max:   (x − min)/(max − min), or 1.0 for a constant column
//	Min:   (max − x)/(max − min), or 1.0 for a constant column
//	Range: d = max(a − min, max − b); 1.0 when d ≤ 0, else
//	       x < a → 1 − (a − x)/d, x > b → 1 − (x − b)/d, inside → 1.0
//
// With SumOfSquares every column is then divided by its Euclidean norm
// (zero-norm columns are left as they are). Finally, when the global
// minimum is ≤ 0, |min| + shift is added to every entry so the matrix is
// strictly positive.
//
// X is never mutated; the result is a new AlternativesByIndicators matrix.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOrientation,
// matrix.ErrDimensionMismatch (len(inds) ≠ X.Cols()), ErrMissingRange,
// ErrBadShift.
// Complexity: O(n·m).
func Standardize(X *matrix.Dense, inds []Indicator, opts ...Option) (*matrix.Dense, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	return standardize(X, inds, o)
}

func standardize(X *matrix.Dense, inds []Indicator, o Options) (*matrix.Dense, error) {
	if err := validateShape(X, inds); err != nil {
		return nil, err
	}
	mins, maxs, err := matrix.ColumnMinMax(X)
	if err != nil {
		return nil, err
	}

	rows := X.ToRows()
	for j, ind := range inds {
		lo, hi := mins[j], maxs[j]
		switch ind.Type {
		case Max, Min:
			span := hi - lo
			for i := range rows {
				switch {
				case span == 0:
					rows[i][j] = 1.0
				case ind.Type == Max:
					rows[i][j] = (rows[i][j] - lo) / span
				default:
					rows[i][j] = (hi - rows[i][j]) / span
				}
			}
		case Range:
			a, b, err := ind.Bounds()
			if err != nil {
				return nil, err
			}
			d := math.Max(a-lo, hi-b)
			for i := range rows {
				x := rows[i][j]
				switch {
				case d <= 0:
					// every observation already lies inside [a, b]
					rows[i][j] = 1.0
				case x < a:
					rows[i][j] = 1 - (a-x)/d
				case x > b:
					rows[i][j] = 1 - (x-b)/d
				default:
					rows[i][j] = 1.0
				}
			}
		default:
			return nil, fmt.Errorf("%w: column %d (%s)", ErrUnknownIndicatorType, j, ind.Type)
		}
	}

	std, err := matrix.NewFromRows(rows, matrix.AlternativesByIndicators)
	if err != nil {
		return nil, err
	}

	if o.method == SumOfSquares {
		norms, err := matrix.ColumnNormsL2(std)
		if err != nil {
			return nil, err
		}
		scale := make([]float64, len(norms))
		for j, nv := range norms {
			scale[j] = 1
			if nv != 0 {
				scale[j] = 1 / nv
			}
		}
		if std, err = matrix.ScaleCols(std, scale); err != nil {
			return nil, err
		}
	}

	low, err := matrix.Min(std)
	if err != nil {
		return nil, err
	}
	if low <= 0 {
		return matrix.AddScalar(std, math.Abs(low)+o.shift)
	}

	return std, nil
}

// validateShape checks orientation and indicator count against X.
func validateShape(X *matrix.Dense, inds []Indicator) error {
	if err := matrix.ValidateOrientation(X, matrix.AlternativesByIndicators); err != nil {
		return err
	}
	if len(inds) != X.Cols() {
		return fmt.Errorf("entropy: %d indicators for %d columns: %w", len(inds), X.Cols(), matrix.ErrDimensionMismatch)
	}

	return nil
}
