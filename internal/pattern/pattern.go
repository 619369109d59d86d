// Package pattern defines tileable dig patterns and samples them at
// arbitrary coordinates. This package is UI-agnostic and deterministic.
package pattern

import "strings"

// Cell markers used in pattern rows.
const (
	DigMarker   = 'x'
	NoDigMarker = 'o'
)

// Kind is the symbolic content of a single pattern cell.
type Kind uint8

const (
	KindNoDig Kind = iota
	KindDig
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindDig:
		return "dig"
	case KindNoDig:
		return "no-dig"
	default:
		return "unknown"
	}
}

// Pattern is an immutable rectangular stencil that tiles infinitely in both
// axes. Construct it with Parse; the zero value is not usable.
type Pattern struct {
	rows []string
	cols int
}

// Parse validates rows and builds a Pattern from them.
func Parse(rows []string) (Pattern, error) {
	if err := Validate(rows); err != nil {
		return Pattern{}, err
	}
	cp := make([]string, len(rows))
	copy(cp, rows)
	return Pattern{rows: cp, cols: len(cp[0])}, nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for fixed tables and tests.
func MustParse(rows ...string) Pattern {
	p, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return p
}

// KindAt returns the kind of cell at (row, col), tiling the pattern via
// non-negative modulo in both axes. The first row's length is the column
// period.
func (p Pattern) KindAt(row, col int) Kind {
	r := p.rows[mod(row, len(p.rows))]
	if r[mod(col, p.cols)] == DigMarker {
		return KindDig
	}
	return KindNoDig
}

// RowCount returns the period of the pattern along the row axis.
func (p Pattern) RowCount() int {
	return len(p.rows)
}

// ColCount returns the period of the pattern along the column axis.
func (p Pattern) ColCount() int {
	return p.cols
}

// Rows returns a copy of the pattern rows.
func (p Pattern) Rows() []string {
	rows := make([]string, len(p.rows))
	copy(rows, p.rows)
	return rows
}

// DigCount returns the number of dig cells in one tile.
func (p Pattern) DigCount() int {
	count := 0
	for _, r := range p.rows {
		count += strings.Count(r, string(DigMarker))
	}
	return count
}

// IsZero reports whether p was never initialised by Parse.
func (p Pattern) IsZero() bool {
	return len(p.rows) == 0
}

// String returns the rows joined by newlines.
func (p Pattern) String() string {
	return strings.Join(p.rows, "\n")
}

// mod is the non-negative remainder of a divided by n.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Style is a named catalog entry.
type Style struct {
	Name    string
	Pattern Pattern
}
