// Package pipeline chains the evaluation stages for one decision problem:
//
//	judgment ──► ahp.Evaluate ─────────────┐
//	raw ──► entropy.Engine.Run ──► weights ─┼─► combine.Combine ──► composite.Score
//	extra weight vectors ──────────────────┘          ▲
//	standardized (alternatives × indicators) ─Transpose┘
//
// The judgment and the extra weight vectors are optional. Errors carry the stage
// name ("pipeline: combine: ...") and wrap the stage's sentinel so callers
// can still match them with errors.Is.
package pipeline
