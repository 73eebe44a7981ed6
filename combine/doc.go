// Package combine merges several weight vectors over the same indicators
// into one by elementwise product (geometric synthesis):
//
//	product[j]  = Π_k w_k[j]
//	combined[j] = product[j] / Σ_j product[j]
//
// Typical use pairs a subjective AHP vector with an objective entropy
// vector. Every factor must be strictly positive; the result sums to 1.
// The combination is commutative, so the input order never matters.
package combine
