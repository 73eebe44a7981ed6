package entropy

import "errors"

var (
	// ErrMissingRange: a range indicator lacks its lower or upper bound.
	ErrMissingRange = errors.New("entropy: range indicator requires both bounds")

	// ErrZeroColumnSum: a standardized column sums to ≤ 0, so proportions are undefined.
	ErrZeroColumnSum = errors.New("entropy: column sum must be positive")

	// ErrBadShift: the non-negative shift is outside [0, 1] or not finite.
	ErrBadShift = errors.New("entropy: non-negative shift must be within [0, 1]")

	// ErrStage: an Engine stage was requested before its prerequisite.
	ErrStage = errors.New("entropy: stage prerequisites not met")

	// ErrUnknownIndicatorType, ErrUnknownMethod and ErrUnknownWeightUsage are
	// returned by the Parse* helpers.
	ErrUnknownIndicatorType = errors.New("entropy: unknown indicator type")
	ErrUnknownMethod        = errors.New("entropy: unknown standardization method")
	ErrUnknownWeightUsage   = errors.New("entropy: unknown weight usage")

	// ErrEqualWeightFallback is not returned as an error. It names the
	// degenerate case where every entropy saturates at 1 and equal weights
	// were substituted; callers report it when WeightResult.Fallback is set.
	ErrEqualWeightFallback = errors.New("entropy: all entropies are 1, equal weights assigned")
)
