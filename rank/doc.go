// Package rank turns score vectors into 1-based ranks, highest score first.
//
// Three tie rules are supported:
//
//   - Competition ("1224"): tied scores share the best rank, the next
//     distinct score skips as many ranks as there were ties.
//   - Dense ("1223"): tied scores share a rank, no gaps.
//   - Ordinal ("1234"): every alternative gets a distinct rank; ties keep
//     their original input order.
//
// Ranks are returned in input order: ranks[i] is the rank of scores[i].
// Inputs are never reordered or mutated.
//
//	ranks := rank.Descending([]float64{0.2, 0.9, 0.2}, rank.Competition) // [2 1 2]
package rank
