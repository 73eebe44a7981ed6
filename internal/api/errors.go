package api

import (
	"errors"
	"net/http"

	"github.com/katalvlaran/ecoeval/ahp"
	"github.com/katalvlaran/ecoeval/combine"
	"github.com/katalvlaran/ecoeval/composite"
	"github.com/katalvlaran/ecoeval/entropy"
	"github.com/katalvlaran/ecoeval/matrix"
	"github.com/katalvlaran/ecoeval/pipeline"
	"github.com/katalvlaran/ecoeval/rank"
	"github.com/katalvlaran/ecoeval/schema"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// errorKinds is checked in order; the first match names the error.
// Shape errors come first: a non-square judgment in a job document wraps
// both schema.ErrInvalid and matrix.ErrNonSquare.
var errorKinds = []struct {
	err  error
	kind string
}{
	{pipeline.ErrJudgmentOrder, "shape"},
	{matrix.ErrNonSquare, "shape"},
	{matrix.ErrDimensionMismatch, "shape"},
	{matrix.ErrOrientation, "shape"},
	{matrix.ErrRagged, "shape"},
	{matrix.ErrInvalidDimensions, "shape"},
	{matrix.ErrNilMatrix, "shape"},
	{schema.ErrInvalid, "invalid_job"},
	{matrix.ErrNaNInf, "non_finite"},
	{ahp.ErrOrderTooLarge, "order_too_large"},
	{ahp.ErrNonPositiveEntry, "non_positive_entry"},
	{ahp.ErrReciprocalInconsistency, "reciprocal_inconsistency"},
	{ahp.ErrDivisionUndefined, "division_undefined"},
	{ahp.ErrNotConverged, "not_converged"},
	{entropy.ErrMissingRange, "missing_range"},
	{entropy.ErrZeroColumnSum, "zero_column_sum"},
	{entropy.ErrBadShift, "bad_shift"},
	{combine.ErrNonPositiveWeight, "non_positive_weight"},
	{combine.ErrNoVectors, "no_vectors"},
	{composite.ErrZeroWeightSum, "invalid_weights"},
	{composite.ErrNegativeWeight, "invalid_weights"},
	{ahp.ErrUnknownMethod, "invalid_option"},
	{ahp.ErrUnknownOversizePolicy, "invalid_option"},
	{entropy.ErrUnknownIndicatorType, "invalid_option"},
	{entropy.ErrUnknownMethod, "invalid_option"},
	{entropy.ErrUnknownWeightUsage, "invalid_option"},
	{rank.ErrUnknownTieRule, "invalid_option"},
}

// classify maps a computation error to an HTTP status and error kind.
// Known input errors are 422; anything else, combine.ErrInternal included,
// is a 500.
func classify(err error) (int, string) {
	if errors.Is(err, combine.ErrInternal) {
		return http.StatusInternalServerError, "internal"
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return http.StatusUnprocessableEntity, k.kind
		}
	}
	return http.StatusInternalServerError, "internal"
}

// warningStrings renders non-fatal findings for JSON output.
func warningStrings(ws []error) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Error())
	}
	return out
}
