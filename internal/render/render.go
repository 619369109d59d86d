// Package render draws simulated grids and result summaries as text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/digsim/internal/pattern"
	"github.com/vovakirdan/digsim/internal/report"
	"github.com/vovakirdan/digsim/internal/sim"
)

// Glyphs maps each cell state to the text drawn for it.
type Glyphs struct {
	Dug        string
	Revealed   string
	Partial    string
	Unrevealed string
}

// EmojiGlyphs returns the square emoji set.
func EmojiGlyphs() Glyphs {
	return Glyphs{
		Dug:        "⬜️",
		Revealed:   "🟩",
		Partial:    "🟧",
		Unrevealed: "🟥",
	}
}

// ASCIIGlyphs returns a single-character set.
func ASCIIGlyphs() Glyphs {
	return Glyphs{
		Dug:        "#",
		Revealed:   "+",
		Partial:    "~",
		Unrevealed: ".",
	}
}

// GlyphsByName returns the glyph set called name ("emoji" or "ascii").
func GlyphsByName(name string) (Glyphs, error) {
	switch strings.ToLower(name) {
	case "emoji":
		return EmojiGlyphs(), nil
	case "ascii":
		return ASCIIGlyphs(), nil
	default:
		return Glyphs{}, fmt.Errorf("render: unknown glyph set %q", name)
	}
}

// For returns the glyph for state s.
func (g Glyphs) For(s sim.CellState) string {
	switch s {
	case sim.Dug:
		return g.Dug
	case sim.Revealed:
		return g.Revealed
	case sim.Partial:
		return g.Partial
	default:
		return g.Unrevealed
	}
}

// Options configures grid rendering.
type Options struct {
	Glyphs Glyphs
	Color  bool // Wrap runs of equal state in ANSI colour
}

// DefaultOptions returns emoji glyphs without colour.
func DefaultOptions() Options {
	return Options{Glyphs: EmojiGlyphs()}
}

// stateColors are the 256-colour codes used for each state.
var stateColors = map[sim.CellState]lipgloss.Color{
	sim.Dug:        lipgloss.Color("15"),
	sim.Revealed:   lipgloss.Color("2"),
	sim.Partial:    lipgloss.Color("208"),
	sim.Unrevealed: lipgloss.Color("1"),
}

// Grid renders g one row per line, in row/column order.
// Runs of cells with the same state are styled together to minimise ANSI
// escape sequences.
func Grid(g *sim.Grid, opt Options) string {
	if opt.Glyphs == (Glyphs{}) {
		opt.Glyphs = DefaultOptions().Glyphs
	}
	styles := newStyles(opt.Color)

	var sb strings.Builder
	for row := 0; row < g.H; row++ {
		col := 0
		for col < g.W {
			state := g.Get(row, col)

			var run strings.Builder
			for col < g.W && g.Get(row, col) == state {
				run.WriteString(opt.Glyphs.For(state))
				col++
			}

			if opt.Color {
				sb.WriteString(styles[state].Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// GridToLines converts the grid to a slice of strings (one per row),
// without colour. Useful for line-by-line comparisons in tests.
func GridToLines(g *sim.Grid, glyphs Glyphs) []string {
	lines := make([]string, g.H)
	for row := 0; row < g.H; row++ {
		var sb strings.Builder
		for col := 0; col < g.W; col++ {
			sb.WriteString(glyphs.For(g.Get(row, col)))
		}
		lines[row] = sb.String()
	}
	return lines
}

// newStyles builds per-state styles on a renderer whose colour profile is
// fixed, so output does not depend on the terminal running the process.
func newStyles(color bool) map[sim.CellState]lipgloss.Style {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	styles := make(map[sim.CellState]lipgloss.Style, len(stateColors))
	for s, c := range stateColors {
		styles[s] = r.NewStyle().Foreground(c)
	}
	return styles
}

// Summary formats the style, totals and rounded metrics of e.
func Summary(e report.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "style: %s\n", e.Style)
	fmt.Fprintf(&sb, "totals: total=%d dug=%d revealed=%d unrevealed=%d partial=%d\n",
		e.Totals.Total, e.Totals.Dug, e.Totals.Revealed, e.Totals.Unrevealed, e.Totals.Partial)
	fmt.Fprintf(&sb, "computed: effort=%g coverage=%g efficiency=%g\n",
		e.Computed.Effort, e.Computed.Coverage, e.Computed.Efficiency)
	return sb.String()
}

// Pattern draws one tile of rows with the given glyphs, so a pattern can be
// previewed the same way as a simulated grid.
func Pattern(rows []string, glyphs Glyphs) string {
	var sb strings.Builder
	for _, r := range rows {
		for i := 0; i < len(r); i++ {
			if r[i] == pattern.DigMarker {
				sb.WriteString(glyphs.Dug)
			} else {
				sb.WriteString(glyphs.Unrevealed)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
