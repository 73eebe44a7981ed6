package entropy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ecoeval/matrix"
	"github.com/katalvlaran/ecoeval/rank"
)

// TOPSISResult holds the ideal-solution distances of every alternative.
// Slices indexed by alternative are aligned with the matrix rows.
type TOPSISResult struct {
	Weighted  *matrix.Dense // matrix the ideals were taken from
	Positive  []float64     // positive ideal per indicator
	Negative  []float64     // negative ideal per indicator
	DistPos   []float64     // D+
	DistNeg   []float64     // D−
	Closeness []float64     // C = D−/(D+ + D−), 0 when both are 0
	Rank      []int         // 1 = best; ties keep row order
	Usage     WeightUsage
}

// TOPSIS ranks the alternatives of std by relative closeness to the ideal.
//
// Steps:
//   - V = std·diag(w) when usage bakes weights into values, else V = std.
//   - Ideals per column of V: for Min indicators the positive ideal is the
//     column min and the negative ideal the column max; every other type
//     (Max and Range, which Standardize already turned larger-is-better)
//     uses max / min.
//   - D±[i] = sqrt(Σ_j (k[j]·(V[i][j] − ideal±[j]))²) with k = w when usage
//     weights the distance, else k = 1.
//   - C[i] = D−/(D+ + D−), C = 0 when the denominator is 0.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOrientation,
// matrix.ErrDimensionMismatch, matrix.ErrNaNInf (weights).
// Complexity: O(n·m + n log n).
func TOPSIS(std *matrix.Dense, w []float64, inds []Indicator, usage WeightUsage) (*TOPSISResult, error) {
	if err := validateShape(std, inds); err != nil {
		return nil, err
	}
	if err := matrix.ValidateVecLen(w, std.Cols()); err != nil {
		return nil, fmt.Errorf("entropy: TOPSIS weights: %w", err)
	}
	if err := matrix.ValidateFiniteVec(w); err != nil {
		return nil, fmt.Errorf("entropy: TOPSIS weights: %w", err)
	}

	V := std
	if usage.weightsValues() {
		var err error
		if V, err = matrix.ScaleCols(std, w); err != nil {
			return nil, err
		}
	} else {
		V = std.Clone()
	}
	mins, maxs, err := matrix.ColumnMinMax(V)
	if err != nil {
		return nil, err
	}

	m := V.Cols()
	res := &TOPSISResult{
		Weighted: V,
		Positive: make([]float64, m),
		Negative: make([]float64, m),
		Usage:    usage,
	}
	for j, ind := range inds {
		if ind.Type == Min {
			res.Positive[j], res.Negative[j] = mins[j], maxs[j]
		} else {
			res.Positive[j], res.Negative[j] = maxs[j], mins[j]
		}
	}

	k := make([]float64, m)
	for j := range k {
		k[j] = 1
		if usage.weightsDistance() {
			k[j] = w[j]
		}
	}

	n := V.Rows()
	res.DistPos = make([]float64, n)
	res.DistNeg = make([]float64, n)
	res.Closeness = make([]float64, n)
	for i := 0; i < n; i++ {
		row, err := V.Row(i)
		if err != nil {
			return nil, err
		}
		var sp, sn float64
		for j, v := range row {
			dp := k[j] * (v - res.Positive[j])
			dn := k[j] * (v - res.Negative[j])
			sp += dp * dp
			sn += dn * dn
		}
		res.DistPos[i] = math.Sqrt(sp)
		res.DistNeg[i] = math.Sqrt(sn)
		if den := res.DistPos[i] + res.DistNeg[i]; den > 0 {
			res.Closeness[i] = res.DistNeg[i] / den
		}
	}
	res.Rank = rank.Descending(res.Closeness, rank.Ordinal)

	return res, nil
}
