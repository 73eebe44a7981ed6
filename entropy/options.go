package entropy

import (
	"fmt"
	"math"
)

// DefaultShift is added (together with |min|) when the standardized matrix
// has a non-positive minimum.
const DefaultShift = 0.01

// Option configures standardization and TOPSIS.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	method Method
	shift  float64
	usage  WeightUsage
}

// WithMethod selects MinMax (default) or SumOfSquares.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithShift sets the non-negative shift; it must lie in [0, 1]. Out-of-range
// values are reported as ErrBadShift by the consuming call, since the value
// usually comes from user configuration.
func WithShift(s float64) Option {
	return func(o *Options) { o.shift = s }
}

// WithWeightUsage selects how TOPSIS applies weights (default Both).
func WithWeightUsage(u WeightUsage) Option {
	return func(o *Options) { o.usage = u }
}

func defaultOptions() Options {
	return Options{method: MinMax, shift: DefaultShift, usage: Both}
}

// gatherOptions applies setters over defaults and validates the result.
func gatherOptions(user ...Option) (Options, error) {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if math.IsNaN(o.shift) || o.shift < 0 || o.shift > 1 {
		return o, fmt.Errorf("%w: got %g", ErrBadShift, o.shift)
	}

	return o, nil
}
