package ahp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ecoeval/matrix"
)

// randomIndex holds Saaty's random consistency index RI(n) for n = 1..20.
var randomIndex = [...]float64{
	0, 0, 0.52, 0.89, 1.12, 1.26, 1.36, 1.41, 1.46, 1.49,
	1.52, 1.54, 1.56, 1.58, 1.59, 1.5943, 1.6064, 1.6133, 1.6207, 1.6292,
}

// RandomIndex returns RI(n). Errors: ErrNoRandomIndex for n outside 1..20.
func RandomIndex(n int) (float64, error) {
	if n < 1 || n > len(randomIndex) {
		return 0, fmt.Errorf("%w: n=%d", ErrNoRandomIndex, n)
	}

	return randomIndex[n-1], nil
}

// Consistency is the outcome of Saaty's consistency check.
type Consistency struct {
	LambdaMax float64 // principal eigenvalue estimate, mean(A·w / w)
	CI        float64 // (λmax − n)/(n − 1)
	RI        float64 // random index for n
	CR        float64 // CI / RI; 0 when RI is 0
	Accepted  bool    // CR < DefaultConsistencyThreshold
}

// validateJudgment checks square shape and strictly positive entries.
func validateJudgment(A *matrix.Dense) error {
	if err := matrix.ValidateSquare(A); err != nil {
		return err
	}
	if i, j, found := matrix.FirstNonPositive(A); found {
		return fmt.Errorf("%w: entry (%d,%d)", ErrNonPositiveEntry, i, j)
	}

	return nil
}

// CheckReciprocal reports whether |A[i][j] − 1/A[j][i]| ≤ ReciprocalTolerance
// for every i<j. It is a data-quality signal only.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n²).
func CheckReciprocal(A *matrix.Dense) (bool, error) {
	if err := matrix.ValidateSquare(A); err != nil {
		return false, err
	}
	rows := A.ToRows()
	n := len(rows)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(rows[i][j]-1/rows[j][i]) > ReciprocalTolerance {
				return false, nil
			}
		}
	}

	return true, nil
}

// Weights derives the priority vector of A with the given estimator.
// The result always sums to 1 and is index-aligned with A's rows.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNonPositiveEntry,
// ErrNotConverged (Eigenvector), ErrUnknownMethod.
func Weights(A *matrix.Dense, method Method) ([]float64, error) {
	if err := validateJudgment(A); err != nil {
		return nil, err
	}
	rows := A.ToRows()

	switch method {
	case Geometric:
		return geometricWeights(rows), nil
	case Arithmetic:
		return arithmeticWeights(rows), nil
	case Eigenvector:
		return eigenvectorWeights(rows, DefaultPowerTolerance, DefaultPowerMaxIter)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

// geometricWeights: w[i] = (Π_j a[i][j])^(1/n), then normalize.
// The product is taken in log space so large orders cannot overflow.
func geometricWeights(a [][]float64) []float64 {
	n := len(a)
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		var logSum float64
		for j := 0; j < n; j++ {
			logSum += math.Log(a[i][j])
		}
		w[i] = math.Exp(logSum / float64(n))
	}

	return normalize(w)
}

// arithmeticWeights: divide each column by its sum, then w[i] = mean_j of row i.
func arithmeticWeights(a [][]float64) []float64 {
	n := len(a)
	colSum := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			colSum[j] += a[i][j]
		}
	}

	w := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w[i] += a[i][j] / colSum[j]
		}
		w[i] /= float64(n)
	}

	return w
}

// eigenvectorWeights runs power iteration from the uniform vector. A positive
// matrix has a unique positive Perron vector, so the sum-normalized iterate
// converges to it.
func eigenvectorWeights(a [][]float64, tol float64, maxIter int) ([]float64, error) {
	n := len(a)
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	next := make([]float64, n)

	for iter := 0; iter < maxIter; iter++ {
		for i := 0; i < n; i++ {
			next[i] = 0
			for j := 0; j < n; j++ {
				next[i] += a[i][j] * w[j]
			}
		}
		normalizeInPlace(next)

		var delta float64
		for i := 0; i < n; i++ {
			delta = math.Max(delta, math.Abs(next[i]-w[i]))
		}
		w, next = next, w
		if delta <= tol {
			return w, nil
		}
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrNotConverged, maxIter)
}

// ComputeConsistency evaluates λmax, CI and CR of A against weights w.
//
//	AW = A·w;  λmax = mean(AW[i]/w[i]);  CI = (λmax − n)/(n − 1);  CR = CI/RI(n)
//
// RI(1) = RI(2) = 0; for n = 2 CR is reported as 0 since every reciprocal
// 2×2 matrix is consistent. Accepted uses DefaultConsistencyThreshold.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrInvalidWeights,
// ErrDivisionUndefined (n = 1), ErrNoRandomIndex (n > 20).
func ComputeConsistency(A *matrix.Dense, w []float64) (Consistency, error) {
	if err := matrix.ValidateSquare(A); err != nil {
		return Consistency{}, err
	}
	n := A.Rows()
	if len(w) != n {
		return Consistency{}, fmt.Errorf("%w: len %d, order %d", ErrInvalidWeights, len(w), n)
	}
	for i, v := range w {
		if !(v > 0) {
			return Consistency{}, fmt.Errorf("%w: w[%d]=%g", ErrInvalidWeights, i, v)
		}
	}
	if n == 1 {
		return Consistency{}, ErrDivisionUndefined
	}
	ri, err := RandomIndex(n)
	if err != nil {
		return Consistency{}, err
	}

	aw, err := matrix.MatVec(A, w)
	if err != nil {
		return Consistency{}, err
	}
	var lambda float64
	for i := 0; i < n; i++ {
		lambda += aw[i] / w[i]
	}
	lambda /= float64(n)

	c := Consistency{
		LambdaMax: lambda,
		CI:        (lambda - float64(n)) / float64(n-1),
		RI:        ri,
	}
	if ri > 0 {
		c.CR = c.CI / ri
	}
	c.Accepted = c.CR < DefaultConsistencyThreshold

	return c, nil
}

// normalize returns w / Σw as a new slice.
func normalize(w []float64) []float64 {
	out := make([]float64, len(w))
	copy(out, w)
	normalizeInPlace(out)

	return out
}

func normalizeInPlace(w []float64) {
	var s float64
	for _, v := range w {
		s += v
	}
	for i := range w {
		w[i] /= s
	}
}
