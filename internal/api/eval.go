package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/ecoeval/ahp"
	"github.com/katalvlaran/ecoeval/combine"
	"github.com/katalvlaran/ecoeval/composite"
	"github.com/katalvlaran/ecoeval/entropy"
	"github.com/katalvlaran/ecoeval/internal/metrics"
	"github.com/katalvlaran/ecoeval/matrix"
	"github.com/katalvlaran/ecoeval/pipeline"
	"github.com/katalvlaran/ecoeval/rank"
	"github.com/katalvlaran/ecoeval/schema"
)

// EvalHandler serves the stateless evaluation endpoints. Every request
// builds its own matrices, so handlers share nothing but metrics.
type EvalHandler struct {
	defaults schema.Defaults
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewEvalHandler applies d to pipeline jobs that leave settings empty.
func NewEvalHandler(d schema.Defaults, m *metrics.Metrics, logger *slog.Logger) *EvalHandler {
	return &EvalHandler{defaults: d, metrics: m, logger: logger}
}

// ---------- AHP ----------

// AHPRequest is the body of POST /api/v1/ahp.
type AHPRequest struct {
	Matrix               [][]float64 `json:"matrix"`
	Method               string      `json:"method,omitempty"`
	Oversize             string      `json:"oversize,omitempty"`
	StrictReciprocity    bool        `json:"strict_reciprocity,omitempty"`
	ConsistencyThreshold *float64    `json:"consistency_threshold,omitempty"`
}

// ConsistencyResponse reports λmax, CI, RI and CR.
type ConsistencyResponse struct {
	LambdaMax float64 `json:"lambda_max"`
	CI        float64 `json:"ci"`
	RI        float64 `json:"ri"`
	CR        float64 `json:"cr"`
	Accepted  bool    `json:"accepted"`
}

// AHPResponse carries the priority vector and its consistency check.
type AHPResponse struct {
	RunID       string              `json:"run_id"`
	Weights     []float64           `json:"weights"`
	Consistency ConsistencyResponse `json:"consistency"`
	Method      string              `json:"method"`
	Order       int                 `json:"order"`
	Truncated   bool                `json:"truncated"`
	Warnings    []string            `json:"warnings"`
}

func newAHPResponse(runID string, res *ahp.Result) AHPResponse {
	return AHPResponse{
		RunID:   runID,
		Weights: res.Weights,
		Consistency: ConsistencyResponse{
			LambdaMax: res.Consistency.LambdaMax,
			CI:        res.Consistency.CI,
			RI:        res.Consistency.RI,
			CR:        res.Consistency.CR,
			Accepted:  res.Consistency.Accepted,
		},
		Method:    res.Method.String(),
		Order:     res.Order,
		Truncated: res.Truncated,
		Warnings:  warningStrings(res.Warnings),
	}
}

// AHP serves POST /api/v1/ahp.
func (h *EvalHandler) AHP(w http.ResponseWriter, r *http.Request) {
	var req AHPRequest
	if !decode(w, r, &req) {
		return
	}
	runID := uuid.NewString()
	start := time.Now()

	// The AHP settings share validation and defaults with pipeline jobs.
	job := schema.Job{AHP: schema.AHP{
		Method:               req.Method,
		Oversize:             req.Oversize,
		StrictReciprocity:    req.StrictReciprocity,
		ConsistencyThreshold: req.ConsistencyThreshold,
	}}
	job.ApplyDefaults(h.defaults)

	res, err := func() (*ahp.Result, error) {
		opts, err := job.AHPOptions()
		if err != nil {
			return nil, err
		}
		A, err := matrix.NewFromRows(req.Matrix, matrix.AlternativesByIndicators)
		if err != nil {
			return nil, err
		}
		return ahp.Evaluate(A, opts...)
	}()
	h.metrics.Observe("ahp", start, err)
	if err != nil {
		h.fail(w, "ahp", runID, err)
		return
	}
	h.noteAHP(runID, res)

	writeJSON(w, http.StatusOK, newAHPResponse(runID, res))
}

// ---------- Entropy ----------

// EntropyRequest is the body of POST /api/v1/entropy.
type EntropyRequest struct {
	Values          [][]float64            `json:"values"`
	Indicators      []schema.IndicatorSpec `json:"indicators"`
	Standardization schema.Standardization `json:"standardization"`
	WeightUsage     string                 `json:"weight_usage,omitempty"`
}

// TOPSISResponse mirrors entropy.TOPSISResult.
type TOPSISResponse struct {
	Positive  []float64 `json:"positive_ideal"`
	Negative  []float64 `json:"negative_ideal"`
	DistPos   []float64 `json:"dist_positive"`
	DistNeg   []float64 `json:"dist_negative"`
	Closeness []float64 `json:"closeness"`
	Rank      []int     `json:"rank"`
}

// EntropyResponse carries every artifact of an entropy run.
type EntropyResponse struct {
	RunID        string         `json:"run_id"`
	Standardized [][]float64    `json:"standardized"`
	Entropy      []float64      `json:"entropy"`
	Diversity    []float64      `json:"diversity"`
	Weights      []float64      `json:"weights"`
	WeightRank   []int          `json:"weight_rank"`
	Fallback     bool           `json:"fallback"`
	TOPSIS       TOPSISResponse `json:"topsis"`
}

func newEntropyResponse(runID string, rep *entropy.Report) EntropyResponse {
	return EntropyResponse{
		RunID:        runID,
		Standardized: rep.Standardized.ToRows(),
		Entropy:      rep.Weights.Entropy,
		Diversity:    rep.Weights.Diversity,
		Weights:      rep.Weights.Weights,
		WeightRank:   rep.Weights.Rank,
		Fallback:     rep.Weights.Fallback,
		TOPSIS: TOPSISResponse{
			Positive:  rep.TOPSIS.Positive,
			Negative:  rep.TOPSIS.Negative,
			DistPos:   rep.TOPSIS.DistPos,
			DistNeg:   rep.TOPSIS.DistNeg,
			Closeness: rep.TOPSIS.Closeness,
			Rank:      rep.TOPSIS.Rank,
		},
	}
}

// Entropy serves POST /api/v1/entropy.
func (h *EvalHandler) Entropy(w http.ResponseWriter, r *http.Request) {
	var req EntropyRequest
	if !decode(w, r, &req) {
		return
	}
	runID := uuid.NewString()
	start := time.Now()

	job := schema.Job{
		Indicators:      req.Indicators,
		Values:          req.Values,
		Standardization: req.Standardization,
		WeightUsage:     req.WeightUsage,
	}
	job.ApplyDefaults(h.defaults)

	rep, err := func() (*entropy.Report, error) {
		in, err := job.Input()
		if err != nil {
			return nil, err
		}
		eng, err := entropy.NewEngine(in.Raw, in.Indicators, in.EntropyOptions...)
		if err != nil {
			return nil, err
		}
		return eng.Run()
	}()
	h.metrics.Observe("entropy", start, err)
	if err != nil {
		h.fail(w, "entropy", runID, err)
		return
	}
	h.noteEntropy(runID, rep.Weights)

	writeJSON(w, http.StatusOK, newEntropyResponse(runID, rep))
}

// ---------- Combine ----------

// CombineRequest lists the weight vectors to merge.
type CombineRequest struct {
	Vectors [][]float64 `json:"vectors"`
}

type CombineResponse struct {
	RunID    string    `json:"run_id"`
	Combined []float64 `json:"combined"`
}

// Combine serves POST /api/v1/combine.
func (h *EvalHandler) Combine(w http.ResponseWriter, r *http.Request) {
	var req CombineRequest
	if !decode(w, r, &req) {
		return
	}
	runID := uuid.NewString()
	start := time.Now()

	combined, err := combine.Combine(req.Vectors...)
	h.metrics.Observe("combine", start, err)
	if err != nil {
		h.fail(w, "combine", runID, err)
		return
	}

	writeJSON(w, http.StatusOK, CombineResponse{RunID: runID, Combined: combined})
}

// ---------- Composite ----------

// CompositeRequest carries an indicator-major matrix: one row per indicator,
// one column per alternative.
type CompositeRequest struct {
	Standardized [][]float64 `json:"standardized"`
	Weights      []float64   `json:"weights"`
	TieRule      string      `json:"tie_rule,omitempty"`
}

// ScoreResponse is one ranked alternative.
type ScoreResponse struct {
	Index int     `json:"index"`
	Label string  `json:"label,omitempty"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

type CompositeResponse struct {
	RunID   string          `json:"run_id"`
	Weights []float64       `json:"weights"`
	TieRule string          `json:"tie_rule"`
	Scores  []ScoreResponse `json:"scores"`
}

func newScores(res *composite.Result, labels []string) []ScoreResponse {
	out := make([]ScoreResponse, len(res.Alternatives))
	for i, a := range res.Alternatives {
		out[i] = ScoreResponse{Index: a.Index, Score: a.Score, Rank: a.Rank}
		if a.Index < len(labels) {
			out[i].Label = labels[a.Index]
		}
	}
	return out
}

// Composite serves POST /api/v1/composite.
func (h *EvalHandler) Composite(w http.ResponseWriter, r *http.Request) {
	var req CompositeRequest
	if !decode(w, r, &req) {
		return
	}
	runID := uuid.NewString()
	start := time.Now()

	if req.TieRule == "" {
		req.TieRule = h.defaults.TieRule
	}
	res, err := func() (*composite.Result, error) {
		tie, err := rank.ParseTieRule(req.TieRule)
		if err != nil {
			return nil, err
		}
		std, err := matrix.NewFromRows(req.Standardized, matrix.IndicatorsByAlternatives)
		if err != nil {
			return nil, err
		}
		return composite.Score(std, req.Weights, composite.WithTieRule(tie))
	}()
	h.metrics.Observe("composite", start, err)
	if err != nil {
		h.fail(w, "composite", runID, err)
		return
	}

	writeJSON(w, http.StatusOK, CompositeResponse{
		RunID:   runID,
		Weights: res.Weights,
		TieRule: res.TieRule.String(),
		Scores:  newScores(res, nil),
	})
}

// ---------- Pipeline ----------

// PipelineResponse is the JSON shape of a full run.
type PipelineResponse struct {
	RunID    string          `json:"run_id"`
	AHP      *AHPResponse    `json:"ahp,omitempty"`
	Entropy  EntropyResponse `json:"entropy"`
	Combined []float64       `json:"combined"`
	Scores   []ScoreResponse `json:"scores"`
	Ranking  []ScoreResponse `json:"ranking"` // best first
	Warnings []string        `json:"warnings"`
}

// NewPipelineResponse renders a pipeline run; the CLI prints the same shape.
func NewPipelineResponse(runID string, labels []string, out *pipeline.Output) PipelineResponse {
	resp := PipelineResponse{
		RunID:    runID,
		Entropy:  newEntropyResponse(runID, out.Entropy),
		Combined: out.Combined,
		Scores:   newScores(out.Composite, labels),
		Warnings: warningStrings(out.Warnings),
	}
	for _, rk := range out.Ranking(labels) {
		resp.Ranking = append(resp.Ranking, ScoreResponse{Index: rk.Index, Label: rk.Label, Score: rk.Score, Rank: rk.Rank})
	}
	if out.AHP != nil {
		a := newAHPResponse(runID, out.AHP)
		resp.AHP = &a
	}
	return resp
}

// Pipeline serves POST /api/v1/pipeline with a schema.Job body.
func (h *EvalHandler) Pipeline(w http.ResponseWriter, r *http.Request) {
	var job schema.Job
	if !decode(w, r, &job) {
		return
	}
	runID := uuid.NewString()
	start := time.Now()

	job.ApplyDefaults(h.defaults)
	out, err := func() (*pipeline.Output, error) {
		in, err := job.Input()
		if err != nil {
			return nil, err
		}
		return pipeline.Run(in)
	}()
	h.metrics.Observe("pipeline", start, err)
	if err != nil {
		h.fail(w, "pipeline", runID, err)
		return
	}
	if out.AHP != nil {
		h.noteAHP(runID, out.AHP)
	}
	h.noteEntropy(runID, out.Entropy.Weights)

	writeJSON(w, http.StatusOK, NewPipelineResponse(runID, job.Alternatives, out))
}

// ---------- helpers ----------

func (h *EvalHandler) noteAHP(runID string, res *ahp.Result) {
	if !res.Consistency.Accepted {
		h.metrics.ConsistencyRejected.Inc()
	}
	for _, warn := range res.Warnings {
		h.logger.Warn("ahp warning", "run_id", runID, "warning", warn.Error(), "cr", res.Consistency.CR)
	}
}

func (h *EvalHandler) noteEntropy(runID string, wr *entropy.WeightResult) {
	if wr.Fallback {
		h.metrics.EntropyFallbacks.Inc()
		h.logger.Warn("entropy fallback", "run_id", runID, "warning", entropy.ErrEqualWeightFallback.Error())
	}
}

func (h *EvalHandler) fail(w http.ResponseWriter, op, runID string, err error) {
	status, kind := classify(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("computation failed", "operation", op, "run_id", runID, "error", err)
	} else {
		h.logger.Info("computation rejected", "operation", op, "run_id", runID, "kind", kind, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "bad_request"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
