// Package ahp implements the Analytic Hierarchy Process weighting stage:
// subjective criterion weights derived from a pairwise-comparison
// (judgment) matrix, plus Saaty's consistency check.
//
// 🚀 What is AHP?
//
//	An expert fills an n×n matrix A where A[i][j] says how much more
//	important criterion i is than criterion j (Saaty's 1..9 scale). A
//	perfectly consistent matrix satisfies A[i][j] = w[i]/w[j] for some
//	priority vector w; AHP recovers w and measures how far the real
//	judgments are from that ideal.
//
// ✨ Key features:
//   - CheckReciprocal: A[i][j] ≈ 1/A[j][i] within 1e-5 (data-quality signal)
//   - Weights: Geometric (row geometric mean), Arithmetic (column-normalized
//     row mean) or Eigenvector (power iteration) estimators
//   - ComputeConsistency: λmax, CI = (λmax−n)/(n−1), CR = CI/RI(n)
//   - Evaluate: the full stage with the oversize policy (abort or keep the
//     leading 10×10 block) and non-fatal warnings
//
// ⚙️ Usage:
//
//	A, _ := matrix.NewFromRows([][]float64{
//		{1, 2, 4},
//		{0.5, 1, 2},
//		{0.25, 0.5, 1},
//	}, matrix.AlternativesByIndicators)
//
//	res, err := ahp.Evaluate(A, ahp.WithMethod(ahp.Geometric))
//	// res.Weights ≈ [0.5714 0.2857 0.1429], res.Consistency.CR ≈ 0
//
// Warnings (ErrReciprocalInconsistency, ErrConsistencyThresholdExceeded)
// never abort the computation; they are collected in Result.Warnings so the
// caller decides whether to proceed.
//
// Complexity:
//
//	Geometric/Arithmetic: O(n²); Eigenvector: O(k·n²) for k iterations;
//	consistency: O(n²).
package ahp
