package schema

import (
	"fmt"

	"github.com/katalvlaran/ecoeval/ahp"
	"github.com/katalvlaran/ecoeval/entropy"
	"github.com/katalvlaran/ecoeval/matrix"
	"github.com/katalvlaran/ecoeval/pipeline"
	"github.com/katalvlaran/ecoeval/rank"
)

// EntropyIndicators converts the indicator entries.
func (j *Job) EntropyIndicators() ([]entropy.Indicator, error) {
	out := make([]entropy.Indicator, len(j.Indicators))
	for i, ind := range j.Indicators {
		typ, err := entropy.ParseIndicatorType(ind.Type)
		if err != nil {
			return nil, invalid(fmt.Sprintf("indicators[%d].type", i), "%v", err)
		}
		out[i] = entropy.Indicator{Name: ind.Name, Type: typ, Lower: ind.Lower, Upper: ind.Upper}
	}

	return out, nil
}

// EntropyOptions converts the standardization and weight-usage settings.
func (j *Job) EntropyOptions() ([]entropy.Option, error) {
	method, err := entropy.ParseMethod(j.Standardization.Method)
	if err != nil {
		return nil, invalid("standardization.method", "%v", err)
	}
	usage, err := entropy.ParseWeightUsage(j.WeightUsage)
	if err != nil {
		return nil, invalid("weight_usage", "%v", err)
	}
	opts := []entropy.Option{entropy.WithMethod(method), entropy.WithWeightUsage(usage)}
	if j.Standardization.Shift != nil {
		opts = append(opts, entropy.WithShift(*j.Standardization.Shift))
	}

	return opts, nil
}

// AHPOptions converts the pairwise-stage settings.
func (j *Job) AHPOptions() ([]ahp.Option, error) {
	method, err := ahp.ParseMethod(j.AHP.Method)
	if err != nil {
		return nil, invalid("ahp.method", "%v", err)
	}
	policy, err := ahp.ParseOversizePolicy(j.AHP.Oversize)
	if err != nil {
		return nil, invalid("ahp.oversize", "%v", err)
	}
	opts := []ahp.Option{ahp.WithMethod(method), ahp.WithOversize(policy)}
	if j.AHP.StrictReciprocity {
		opts = append(opts, ahp.WithStrictReciprocity())
	}
	if t := j.AHP.ConsistencyThreshold; t != nil {
		if !finite(*t) || *t <= 0 {
			return nil, invalid("ahp.consistency_threshold", "must be finite and > 0, got %g", *t)
		}
		opts = append(opts, ahp.WithConsistencyThreshold(*t))
	}

	return opts, nil
}

// Input validates j and builds the pipeline input from it.
func (j *Job) Input() (pipeline.Input, error) {
	if err := j.Validate(); err != nil {
		return pipeline.Input{}, err
	}

	raw, err := matrix.NewFromRows(j.Values, matrix.AlternativesByIndicators)
	if err != nil {
		return pipeline.Input{}, invalid("values", "%v", err)
	}
	inds, err := j.EntropyIndicators()
	if err != nil {
		return pipeline.Input{}, err
	}
	entOpts, err := j.EntropyOptions()
	if err != nil {
		return pipeline.Input{}, err
	}
	ahpOpts, err := j.AHPOptions()
	if err != nil {
		return pipeline.Input{}, err
	}
	tie, err := rank.ParseTieRule(j.TieRule)
	if err != nil {
		return pipeline.Input{}, invalid("tie_rule", "%v", err)
	}

	in := pipeline.Input{
		Alternatives:   append([]string(nil), j.Alternatives...),
		Raw:            raw,
		Indicators:     inds,
		EntropyOptions: entOpts,
		AHPOptions:     ahpOpts,
		TieRule:        tie,
	}
	if len(j.Judgment) > 0 {
		if in.Judgment, err = matrix.NewFromRows(j.Judgment, matrix.AlternativesByIndicators); err != nil {
			return pipeline.Input{}, invalid("judgment", "%v", err)
		}
	}
	for _, w := range j.ExtraWeights {
		in.ExtraWeights = append(in.ExtraWeights, append([]float64(nil), w...))
	}

	return in, nil
}
