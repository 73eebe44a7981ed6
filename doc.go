// Package ecoeval ranks agricultural ecological products by combining
// subjective expert judgment with objective, data-driven indicator weights.
//
// 🚀 What is ecoeval?
//
//	A small multi-criteria decision toolkit built around four stages:
//		• Pairwise weighting: AHP priority vectors + consistency ratio
//		• Entropy weighting: typed standardization, entropy weights, TOPSIS
//		• Combination: multiplicative merge of any number of weight vectors
//		• Composite scoring: weighted sum per alternative + ranking
//
// ✨ Why ecoeval?
//
//   - Explicit orientation – every matrix knows whether rows are alternatives
//   - Sentinel errors – every failure matches with errors.Is
//   - Warnings are values – inconsistent judgments never abort a run
//
// Packages:
//
//	matrix/      Dense matrix with orientation, validators and column statistics
//	ahp/         pairwise comparison weights (geometric, arithmetic, eigenvector)
//	entropy/     standardization, entropy weights, TOPSIS, staged Engine
//	combine/     multiplicative weight combination
//	composite/   composite scores and rankings
//	rank/        tie rules shared by every ranking
//	pipeline/    the full AHP → entropy → combine → composite run
//	schema/      YAML/JSON job documents and their validation
//	cmd/ecoeval  CLI (one-shot jobs) and HTTP service
//
// Quick flow:
//
//	judgment ──► ahp ─────┐
//	                      ├─► combine ──► composite ──► ranking
//	raw ──► entropy ──────┘
//	          └─► TOPSIS closeness (cross-check)
//
//	go install github.com/katalvlaran/ecoeval/cmd/ecoeval@latest
package ecoeval
