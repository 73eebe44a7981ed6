package ahp

import "errors"

// Fatal errors abort the call; warnings are reported through Result.Warnings.
var (
	// ErrOrderTooLarge is returned when n exceeds the configured maximum order
	// and the oversize policy is OversizeAbort.
	ErrOrderTooLarge = errors.New("ahp: judgment matrix order exceeds the maximum")

	// ErrNonPositiveEntry indicates a judgment entry ≤ 0 (ratios must be positive).
	ErrNonPositiveEntry = errors.New("ahp: judgment entries must be positive")

	// ErrInvalidWeights indicates a weight vector of the wrong length or with
	// non-positive entries passed to ComputeConsistency.
	ErrInvalidWeights = errors.New("ahp: weights must be positive and match the matrix order")

	// ErrDivisionUndefined is returned by ComputeConsistency for n = 1, where
	// CI = (λmax − n)/(n − 1) has no meaning.
	ErrDivisionUndefined = errors.New("ahp: consistency undefined for a 1×1 matrix")

	// ErrNoRandomIndex is returned when n has no entry in the random-index table.
	ErrNoRandomIndex = errors.New("ahp: no random index for this order")

	// ErrNotConverged signals that eigenvector power iteration did not settle.
	ErrNotConverged = errors.New("ahp: power iteration did not converge")

	// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
	ErrUnknownMethod = errors.New("ahp: unknown weighting method")

	// ErrUnknownOversizePolicy is returned by ParseOversizePolicy.
	ErrUnknownOversizePolicy = errors.New("ahp: unknown oversize policy")
)

// Warnings. Evaluate appends these (wrapped with detail) to Result.Warnings.
var (
	// ErrReciprocalInconsistency: A[i][j] differs from 1/A[j][i] by more than
	// ReciprocalTolerance for some i<j. Fatal only under WithStrictReciprocity.
	ErrReciprocalInconsistency = errors.New("ahp: judgment matrix is not reciprocal")

	// ErrConsistencyThresholdExceeded: CR ≥ threshold; revise the judgments.
	ErrConsistencyThresholdExceeded = errors.New("ahp: consistency ratio exceeds threshold")
)
