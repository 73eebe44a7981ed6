// Package schema defines the job document accepted by the CLI and the
// HTTP pipeline endpoint, and converts it into a pipeline.Input.
//
// A job is validated once, at ingestion: ragged rows, unknown enum names,
// missing range bounds, non-finite numbers and count mismatches are all
// reported as ErrInvalid with the offending field path, e.g.
//
//	schema: invalid job: indicators[2].upper: range indicator requires both bounds
//
// Example document:
//
//	indicators:
//	  - {name: yield, type: max}
//	  - {name: pesticide, type: min}
//	  - {name: soil_ph, type: range, lower: 6.0, upper: 7.5}
//	alternatives: [north, river]
//	values:
//	  - [8.5, 120, 6.8]
//	  - [7.2,  90, 5.5]
//	judgment:
//	  - [1, 2, 4]
//	  - [0.5, 1, 2]
//	  - [0.25, 0.5, 1]
//	standardization: {method: minmax, shift: 0.01}
//	weight_usage: both
//	ahp: {method: geometric, oversize: abort}
//	tie_rule: competition
package schema
