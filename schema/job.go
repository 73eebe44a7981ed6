package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ecoeval/ahp"
	"github.com/katalvlaran/ecoeval/entropy"
	"github.com/katalvlaran/ecoeval/matrix"
	"github.com/katalvlaran/ecoeval/rank"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("schema: invalid job")

// IndicatorSpec describes one indicator column.
type IndicatorSpec struct {
	Name  string   `yaml:"name" json:"name"`
	Type  string   `yaml:"type" json:"type"`
	Lower *float64 `yaml:"lower,omitempty" json:"lower,omitempty"`
	Upper *float64 `yaml:"upper,omitempty" json:"upper,omitempty"`
}

// Standardization selects the entropy-stage normalization.
type Standardization struct {
	Method string   `yaml:"method,omitempty" json:"method,omitempty"`
	Shift  *float64 `yaml:"shift,omitempty" json:"shift,omitempty"`
}

// AHP configures the pairwise stage.
type AHP struct {
	Method               string   `yaml:"method,omitempty" json:"method,omitempty"`
	Oversize             string   `yaml:"oversize,omitempty" json:"oversize,omitempty"`
	StrictReciprocity    bool     `yaml:"strict_reciprocity,omitempty" json:"strict_reciprocity,omitempty"`
	ConsistencyThreshold *float64 `yaml:"consistency_threshold,omitempty" json:"consistency_threshold,omitempty"`
}

// Job is one evaluation request.
type Job struct {
	Indicators      []IndicatorSpec `yaml:"indicators" json:"indicators"`
	Alternatives    []string        `yaml:"alternatives,omitempty" json:"alternatives,omitempty"`
	Values          [][]float64     `yaml:"values" json:"values"`
	Judgment        [][]float64     `yaml:"judgment,omitempty" json:"judgment,omitempty"`
	ExtraWeights    [][]float64     `yaml:"extra_weights,omitempty" json:"extra_weights,omitempty"`
	Standardization Standardization `yaml:"standardization,omitempty" json:"standardization,omitempty"`
	WeightUsage     string          `yaml:"weight_usage,omitempty" json:"weight_usage,omitempty"`
	AHP             AHP             `yaml:"ahp,omitempty" json:"ahp,omitempty"`
	TieRule         string          `yaml:"tie_rule,omitempty" json:"tie_rule,omitempty"`
}

// Defaults fill the optional settings a job leaves empty.
type Defaults struct {
	Method               string
	Shift                float64
	WeightUsage          string
	AHPMethod            string
	Oversize             string
	ConsistencyThreshold float64
	TieRule              string
}

// ApplyDefaults copies d into every unset optional field of j.
func (j *Job) ApplyDefaults(d Defaults) {
	if j.Standardization.Method == "" {
		j.Standardization.Method = d.Method
	}
	if j.Standardization.Shift == nil {
		s := d.Shift
		j.Standardization.Shift = &s
	}
	if j.WeightUsage == "" {
		j.WeightUsage = d.WeightUsage
	}
	if j.AHP.Method == "" {
		j.AHP.Method = d.AHPMethod
	}
	if j.AHP.Oversize == "" {
		j.AHP.Oversize = d.Oversize
	}
	if j.AHP.ConsistencyThreshold == nil && d.ConsistencyThreshold > 0 {
		t := d.ConsistencyThreshold
		j.AHP.ConsistencyThreshold = &t
	}
	if j.TieRule == "" {
		j.TieRule = d.TieRule
	}
}

// Parse decodes and validates a YAML (or JSON, its subset) job. Unknown
// keys are rejected.
func Parse(data []byte) (*Job, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var j Job
	if err := dec.Decode(&j); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}

	return &j, nil
}

// Load reads and parses the job file at path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read job: %w", err)
	}

	return Parse(data)
}

func invalid(path, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, path, fmt.Sprintf(format, args...))
}

// Validate checks structure, counts, enum names and numeric ranges.
func (j *Job) Validate() error {
	m := len(j.Indicators)
	if m == 0 {
		return invalid("indicators", "at least one indicator is required")
	}
	seen := make(map[string]int, m)
	for i, ind := range j.Indicators {
		p := fmt.Sprintf("indicators[%d]", i)
		if ind.Name == "" {
			return invalid(p+".name", "must not be empty")
		}
		if prev, dup := seen[ind.Name]; dup {
			return invalid(p+".name", "duplicate of indicators[%d]", prev)
		}
		seen[ind.Name] = i

		typ, err := entropy.ParseIndicatorType(ind.Type)
		if err != nil {
			return invalid(p+".type", "%v", err)
		}
		if typ == entropy.Range {
			if ind.Lower == nil {
				return invalid(p+".lower", "range indicator requires both bounds")
			}
			if ind.Upper == nil {
				return invalid(p+".upper", "range indicator requires both bounds")
			}
			if !finite(*ind.Lower) || !finite(*ind.Upper) {
				return invalid(p, "bounds must be finite")
			}
		}
	}

	if len(j.Values) == 0 {
		return invalid("values", "at least one alternative is required")
	}
	if err := checkTable("values", j.Values, m); err != nil {
		return err
	}
	if len(j.Alternatives) > 0 && len(j.Alternatives) != len(j.Values) {
		return invalid("alternatives", "%d labels for %d rows", len(j.Alternatives), len(j.Values))
	}
	if n := len(j.Judgment); n > 0 {
		for i, row := range j.Judgment {
			if len(row) != n {
				return fmt.Errorf("%w: %w: judgment[%d]: has %d entries, want %d",
					ErrInvalid, matrix.ErrNonSquare, i, len(row), n)
			}
		}
		if err := checkTable("judgment", j.Judgment, n); err != nil {
			return err
		}
	}
	if err := checkTable("extra_weights", j.ExtraWeights, m); err != nil {
		return err
	}

	if _, err := entropy.ParseMethod(j.Standardization.Method); err != nil {
		return invalid("standardization.method", "%v", err)
	}
	if s := j.Standardization.Shift; s != nil && (!finite(*s) || *s < 0 || *s > 1) {
		return invalid("standardization.shift", "must be within [0, 1], got %g", *s)
	}
	if _, err := entropy.ParseWeightUsage(j.WeightUsage); err != nil {
		return invalid("weight_usage", "%v", err)
	}
	if _, err := ahp.ParseMethod(j.AHP.Method); err != nil {
		return invalid("ahp.method", "%v", err)
	}
	if _, err := ahp.ParseOversizePolicy(j.AHP.Oversize); err != nil {
		return invalid("ahp.oversize", "%v", err)
	}
	if t := j.AHP.ConsistencyThreshold; t != nil && (!finite(*t) || *t <= 0) {
		return invalid("ahp.consistency_threshold", "must be finite and > 0, got %g", *t)
	}
	if _, err := rank.ParseTieRule(j.TieRule); err != nil {
		return invalid("tie_rule", "%v", err)
	}

	return nil
}

// checkTable requires every row to have width cols and finite entries.
func checkTable(path string, rows [][]float64, cols int) error {
	for i, row := range rows {
		if len(row) != cols {
			return invalid(fmt.Sprintf("%s[%d]", path, i), "has %d entries, want %d", len(row), cols)
		}
		for k, v := range row {
			if !finite(v) {
				return invalid(fmt.Sprintf("%s[%d][%d]", path, i, k), "must be finite")
			}
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
