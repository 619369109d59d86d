// Package report collects evaluation results into a serialisable,
// sortable summary.
package report

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/digsim/internal/sim"
)

// SortKey selects the metric results are ranked by.
type SortKey string

const (
	SortNone       SortKey = "none"
	SortEffort     SortKey = "effort"
	SortCoverage   SortKey = "coverage"
	SortEfficiency SortKey = "efficiency"
)

// ParseSortKey converts a flag value to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "", SortNone:
		return SortNone, nil
	case SortEffort, SortCoverage, SortEfficiency:
		return k, nil
	default:
		return SortNone, fmt.Errorf("report: unknown sort key %q", s)
	}
}

// Totals mirrors sim.Totals with serialisation tags.
type Totals struct {
	Total      int `yaml:"total"`
	Dug        int `yaml:"dug"`
	Revealed   int `yaml:"revealed"`
	Unrevealed int `yaml:"unrevealed"`
	Partial    int `yaml:"partial"`
}

// Computed holds the rounded metrics.
type Computed struct {
	Effort     float64 `yaml:"effort"`
	Coverage   float64 `yaml:"coverage"`
	Efficiency float64 `yaml:"efficiency"`
}

// Entry is the summary of one evaluated style.
type Entry struct {
	Style    string   `yaml:"style"`
	Totals   Totals   `yaml:"totals"`
	Computed Computed `yaml:"computed"`

	Grid *sim.Grid   `yaml:"-"`
	raw  sim.Metrics // Unrounded, used for ranking
}

// Failure records a style that could not be evaluated.
type Failure struct {
	Style string `yaml:"style"`
	Error string `yaml:"error"`
}

// Report is the result of one batch run.
type Report struct {
	Size      int       `yaml:"size"`
	Padding   int       `yaml:"padding"`
	Precision int       `yaml:"precision"`
	Results   []Entry   `yaml:"results"`
	Failures  []Failure `yaml:"failures,omitempty"`
}

// New creates an empty report for the given window and rounding precision.
func New(cfg sim.Config, precision int) *Report {
	return &Report{
		Size:      cfg.Size,
		Padding:   cfg.Padding,
		Precision: precision,
	}
}

// Add appends an evaluation result, rounding its metrics.
func (r *Report) Add(res sim.Result) {
	m := res.Metrics.Round(r.Precision)
	r.Results = append(r.Results, Entry{
		Style: res.Style,
		Totals: Totals{
			Total:      res.Totals.Total,
			Dug:        res.Totals.Dug,
			Revealed:   res.Totals.Revealed,
			Unrevealed: res.Totals.Unrevealed,
			Partial:    res.Totals.Partial,
		},
		Computed: Computed{
			Effort:     m.Effort,
			Coverage:   m.Coverage,
			Efficiency: m.Efficiency,
		},
		Grid: res.Grid,
		raw:  res.Metrics,
	})
}

// AddFailure records a style whose evaluation failed.
func (r *Report) AddFailure(style string, err error) {
	r.Failures = append(r.Failures, Failure{Style: style, Error: err.Error()})
}

// Sort ranks results by key, highest first. Ties and SortNone keep the
// catalog order.
func (r *Report) Sort(key SortKey) {
	var metric func(sim.Metrics) float64
	switch key {
	case SortEffort:
		metric = func(m sim.Metrics) float64 { return m.Effort }
	case SortCoverage:
		metric = func(m sim.Metrics) float64 { return m.Coverage }
	case SortEfficiency:
		metric = func(m sim.Metrics) float64 { return m.Efficiency }
	default:
		return
	}

	sort.SliceStable(r.Results, func(i, j int) bool {
		return metric(r.Results[i].raw) > metric(r.Results[j].raw)
	})
}

// YAML encodes the report.
func (r *Report) YAML() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("report: yaml marshal: %w", err)
	}
	return out, nil
}
