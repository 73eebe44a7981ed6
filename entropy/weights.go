package entropy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ecoeval/matrix"
	"github.com/katalvlaran/ecoeval/rank"
)

// saturationTolerance: diversities with |G| ≤ this are treated as zero.
const saturationTolerance = 1e-8

// WeightResult is the per-indicator outcome of the entropy method.
// All slices are aligned with the matrix columns.
type WeightResult struct {
	Entropy   []float64 // E[j] ∈ [0, 1]
	Diversity []float64 // G[j] = 1 − E[j]
	Weights   []float64 // W[j], sums to 1
	Rank      []int     // 1 = most important; ties keep column order
	Fallback  bool      // every G was ≈ 0 and equal weights were assigned
}

// Weights computes entropy weights of an already standardized matrix.
//
//	P[i][j] = x[i][j] / Σ_i x[i][j]
//	E[j]    = −(1/ln n) · Σ_i P[i][j]·ln P[i][j]   (0·ln 0 taken as 0)
//	G[j]    = 1 − E[j]
//	W[j]    = G[j] / Σ_k G[k]
//
// When every G[j] is within 1e-8 of zero the columns carry no information
// and W[j] = 1/m with Fallback set. A single alternative (n = 1) is
// treated the same way: E = 1 for every column.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOrientation, ErrZeroColumnSum.
// Complexity: O(n·m).
func Weights(std *matrix.Dense) (*WeightResult, error) {
	if err := matrix.ValidateOrientation(std, matrix.AlternativesByIndicators); err != nil {
		return nil, err
	}
	sums, err := matrix.ColumnSums(std)
	if err != nil {
		return nil, err
	}
	for j, s := range sums {
		if !(s > 0) {
			return nil, fmt.Errorf("%w: column %d sums to %g", ErrZeroColumnSum, j, s)
		}
	}

	n, m := std.Rows(), std.Cols()
	rows := std.ToRows()
	res := &WeightResult{
		Entropy:   make([]float64, m),
		Diversity: make([]float64, m),
		Weights:   make([]float64, m),
	}

	saturated := true
	for j := 0; j < m; j++ {
		e := 1.0
		if n > 1 {
			var h float64
			for i := 0; i < n; i++ {
				if p := rows[i][j] / sums[j]; p > 0 {
					h -= p * math.Log(p)
				}
			}
			e = h / math.Log(float64(n))
		}
		res.Entropy[j] = e
		res.Diversity[j] = 1 - e
		if math.Abs(res.Diversity[j]) > saturationTolerance {
			saturated = false
		}
	}

	if saturated {
		res.Fallback = true
		for j := range res.Weights {
			res.Weights[j] = 1 / float64(m)
		}
	} else {
		var g float64
		for _, v := range res.Diversity {
			g += v
		}
		for j, v := range res.Diversity {
			res.Weights[j] = v / g
		}
	}
	res.Rank = rank.Descending(res.Weights, rank.Ordinal)

	return res, nil
}
