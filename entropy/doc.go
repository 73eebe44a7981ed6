// Package entropy implements the objective weighting stage: indicator
// standardization, Shannon-entropy weights and a TOPSIS ranking of the
// alternatives under those weights.
//
// 🚀 What is the entropy weight method?
//
//	Indicators whose values differ a lot between alternatives carry more
//	information than indicators where everyone scores alike. After
//	rescaling every column to a comparable "larger is better" range, the
//	method computes each column's normalized Shannon entropy E[j]; the
//	diversity 1−E[j] becomes the column's weight.
//
// ✨ Key features:
//   - Standardize: per-column rules for max, min and range ("moderate")
//     indicators, optional sum-of-squares normalization, and a global
//     non-negative shift so the logarithm is always defined
//   - Weights: entropy, diversity, weight and importance rank per column,
//     with an equal-weight fallback when every column saturates
//   - TOPSIS: distances to the positive and negative ideal solutions and
//     the relative closeness of every alternative
//   - Engine: the stage machine Raw → Standardized → WeightsComputed →
//     TOPSISComputed with cached, idempotent stages
//
// ⚙️ Usage:
//
//	raw, _ := matrix.NewFromRows(values, matrix.AlternativesByIndicators)
//	eng, err := entropy.NewEngine(raw, []entropy.Indicator{
//		entropy.MaxIndicator("yield"),
//		entropy.MinIndicator("pesticide"),
//		entropy.RangeIndicator("soil_ph", 6.0, 7.5),
//	}, entropy.WithMethod(entropy.MinMax), entropy.WithShift(0.01))
//	rep, err := eng.Run()
//
// Orientation:
//
//	Every matrix in this package is AlternativesByIndicators (rows are
//	alternatives). Column order follows the Indicator slice and is never
//	changed; ranks are annotations, not reorderings.
//
// Complexity:
//
//	Standardize, Weights, TOPSIS: O(n·m) time and space for n alternatives
//	and m indicators (plus O(n log n) for ranking).
package entropy
