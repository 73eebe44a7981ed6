package ahp

import (
	"fmt"
	"math"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// MaxOrder is the default largest judgment matrix accepted by Evaluate.
	MaxOrder = 10

	// DefaultConsistencyThreshold: CR below this value is accepted.
	DefaultConsistencyThreshold = 0.1

	// ReciprocalTolerance is the absolute tolerance of CheckReciprocal.
	ReciprocalTolerance = 1e-5

	// DefaultPowerTolerance and DefaultPowerMaxIter bound eigenvector iteration.
	DefaultPowerTolerance = 1e-12
	DefaultPowerMaxIter   = 1000
)

// ---------- Enumerations ----------

// Method selects the priority-vector estimator.
type Method uint8

const (
	// Geometric: w[i] = (Π_j A[i][j])^(1/n), normalized.
	Geometric Method = iota
	// Arithmetic: normalize columns to sum 1, average each row.
	Arithmetic
	// Eigenvector: principal right eigenvector by power iteration.
	Eigenvector
)

// String returns the name accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case Geometric:
		return "geometric"
	case Arithmetic:
		return "arithmetic"
	case Eigenvector:
		return "eigenvector"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

// ParseMethod maps a case-insensitive name to a Method; "" yields Geometric.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "geometric":
		return Geometric, nil
	case "arithmetic":
		return Arithmetic, nil
	case "eigenvector", "eigen":
		return Eigenvector, nil
	default:
		return Geometric, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// OversizePolicy decides what Evaluate does with n > max order.
type OversizePolicy uint8

const (
	// OversizeAbort fails with ErrOrderTooLarge.
	OversizeAbort OversizePolicy = iota
	// OversizeTruncate keeps the leading max×max submatrix.
	OversizeTruncate
)

// String returns the name accepted by ParseOversizePolicy.
func (p OversizePolicy) String() string {
	if p == OversizeTruncate {
		return "truncate"
	}

	return "abort"
}

// ParseOversizePolicy maps "abort" or "truncate"; "" yields OversizeAbort.
func ParseOversizePolicy(s string) (OversizePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return OversizeAbort, nil
	case "truncate":
		return OversizeTruncate, nil
	default:
		return OversizeAbort, fmt.Errorf("%w: %q", ErrUnknownOversizePolicy, s)
	}
}

// ---------- Functional options ----------

// Option mutates Evaluate's configuration. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	method            Method
	oversize          OversizePolicy
	maxOrder          int
	threshold         float64
	strictReciprocity bool
}

const (
	panicThresholdInvalid = "ahp: WithConsistencyThreshold: threshold must be finite and > 0"
	panicMaxOrderInvalid  = "ahp: WithMaxOrder: order must be in [1, 20]"
)

// WithMethod selects the weight estimator (default Geometric).
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithOversize selects the policy for matrices larger than the max order
// (default OversizeAbort).
func WithOversize(p OversizePolicy) Option {
	return func(o *Options) { o.oversize = p }
}

// WithMaxOrder overrides MaxOrder. Panics outside [1, 20] (the RI table).
func WithMaxOrder(n int) Option {
	if n < 1 || n > len(randomIndex) {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = n }
}

// WithConsistencyThreshold overrides the CR acceptance threshold.
// Panics when t is not finite and positive.
func WithConsistencyThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithStrictReciprocity turns ErrReciprocalInconsistency into a fatal error.
func WithStrictReciprocity() Option {
	return func(o *Options) { o.strictReciprocity = true }
}

func defaultOptions() Options {
	return Options{
		method:    Geometric,
		oversize:  OversizeAbort,
		maxOrder:  MaxOrder,
		threshold: DefaultConsistencyThreshold,
	}
}

// gatherOptions applies user setters over the defaults in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
