// Package composite turns a standardized matrix and a weight vector into a
// ranked composite score per alternative.
//
// Orientation contract:
//
//	Score expects an IndicatorsByAlternatives matrix: row i is indicator i,
//	column j is alternative j. This is the transpose of the layout used by
//	package entropy. Callers produce it with matrix.Transpose, which also
//	flips the orientation tag; an untagged or wrongly tagged matrix is
//	rejected with matrix.ErrOrientation instead of being silently
//	misread.
//
//	weighted[i][j] = std[i][j] · w[i]
//	score[j]       = Σ_i weighted[i][j]
package composite
