package report

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/digsim/internal/pattern"
	"github.com/vovakirdan/digsim/internal/sim"
)

func evaluate(t *testing.T, name string, rows ...string) sim.Result {
	t.Helper()
	res, err := sim.Evaluate(pattern.Style{Name: name, Pattern: pattern.MustParse(rows...)}, sim.DefaultConfig())
	if err != nil {
		t.Fatalf("Evaluate(%s) failed: %v", name, err)
	}
	return res
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input    string
		expected SortKey
		ok       bool
	}{
		{"", SortNone, true},
		{"none", SortNone, true},
		{"Efficiency", SortEfficiency, true},
		{" coverage ", SortCoverage, true},
		{"effort", SortEffort, true},
		{"speed", SortNone, false},
	}

	for _, tc := range tests {
		got, err := ParseSortKey(tc.input)
		if (err == nil) != tc.ok {
			t.Errorf("ParseSortKey(%q): expected ok=%v, got err=%v", tc.input, tc.ok, err)
		}
		if got != tc.expected {
			t.Errorf("ParseSortKey(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestAddRoundsMetrics(t *testing.T) {
	r := New(sim.DefaultConfig(), 4)
	r.Add(evaluate(t, "straight", "xoo"))

	e := r.Results[0]
	want := Computed{Effort: 0.325, Coverage: 0.675, Efficiency: 0.4815}
	if e.Computed != want {
		t.Errorf("expected %+v, got %+v", want, e.Computed)
	}
	if e.Totals.Dug != 520 || e.Totals.Revealed != 1080 || e.Totals.Total != 1600 {
		t.Errorf("unexpected totals %+v", e.Totals)
	}
	if e.Grid == nil || e.Grid.W != 40 {
		t.Error("entry should keep the trimmed grid")
	}
}

func TestSort(t *testing.T) {
	r := New(sim.DefaultConfig(), 4)
	r.Add(evaluate(t, "straight 2", "xoo"))
	r.Add(evaluate(t, "straight 3", "xooo"))
	r.Add(evaluate(t, "stair", "xoooox", "xxoooo", "oxxooo", "ooxxoo", "oooxxo", "ooooxx"))

	order := func() string {
		names := make([]string, len(r.Results))
		for i, e := range r.Results {
			names[i] = e.Style
		}
		return strings.Join(names, ",")
	}

	r.Sort(SortNone)
	if got := order(); got != "straight 2,straight 3,stair" {
		t.Errorf("SortNone changed order: %s", got)
	}

	r.Sort(SortEfficiency)
	if got := order(); got != "stair,straight 3,straight 2" {
		t.Errorf("SortEfficiency: got %s", got)
	}

	r.Sort(SortCoverage)
	if got := order(); got != "straight 2,straight 3,stair" {
		t.Errorf("SortCoverage: got %s", got)
	}

	r.Sort(SortEffort)
	if got := order(); got != "stair,straight 2,straight 3" {
		t.Errorf("SortEffort: got %s", got)
	}
}

func TestYAML(t *testing.T) {
	r := New(sim.DefaultConfig(), 4)
	r.Add(evaluate(t, "straight", "xooo"))
	r.AddFailure("ragged", errors.New("[RAGGED_ROWS] row 1 has length 2, want 3"))

	out, err := r.YAML()
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}

	var decoded struct {
		Size    int `yaml:"size"`
		Results []struct {
			Style    string         `yaml:"style"`
			Totals   map[string]int `yaml:"totals"`
			Computed Computed       `yaml:"computed"`
		} `yaml:"results"`
		Failures []Failure `yaml:"failures"`
	}
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid yaml: %v\n%s", err, out)
	}

	if decoded.Size != 40 || len(decoded.Results) != 1 || len(decoded.Failures) != 1 {
		t.Fatalf("unexpected report shape:\n%s", out)
	}
	if decoded.Results[0].Totals["unrevealed"] != 400 {
		t.Errorf("expected 400 unrevealed, got %v", decoded.Results[0].Totals)
	}
	if decoded.Results[0].Computed.Efficiency != 0.5 {
		t.Errorf("expected efficiency 0.5, got %v", decoded.Results[0].Computed.Efficiency)
	}
	if strings.Contains(string(out), "grid") {
		t.Errorf("grid should not be serialised:\n%s", out)
	}
}
