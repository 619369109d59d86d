package sim

import (
	"fmt"

	"github.com/vovakirdan/digsim/internal/pattern"
)

// Result is the outcome of evaluating one catalog style.
type Result struct {
	Style   string
	Grid    *Grid // Trimmed Size x Size grid
	Totals  Totals
	Metrics Metrics // Unrounded
}

// Evaluate simulates style over the cfg window, trims the padding and
// reduces the core grid to totals and metrics. No partial result is
// returned on error.
func Evaluate(style pattern.Style, cfg Config) (Result, error) {
	full, err := Simulate(style.Pattern, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("evaluate %q: %w", style.Name, err)
	}

	trimmed := full.Trim(cfg.Padding)
	totals := Count(trimmed)

	metrics, err := ComputeMetrics(totals)
	if err != nil {
		return Result{}, fmt.Errorf("evaluate %q: %w", style.Name, err)
	}

	return Result{
		Style:   style.Name,
		Grid:    trimmed,
		Totals:  totals,
		Metrics: metrics,
	}, nil
}

// Equal reports whether two results are bit-identical.
func (r Result) Equal(other Result) bool {
	if r.Style != other.Style || r.Totals != other.Totals || r.Metrics != other.Metrics {
		return false
	}
	if r.Grid == nil || other.Grid == nil {
		return r.Grid == other.Grid
	}
	return r.Grid.Equal(other.Grid)
}
