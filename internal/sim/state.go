// Package sim runs the reveal simulation for a dig pattern and reduces the
// resulting grid to totals and metrics.
// This package is UI-agnostic and deterministic.
package sim

// CellState is the exposure state of a single simulated cell.
type CellState uint8

const (
	Unrevealed CellState = iota
	Partial
	Revealed
	Dug
	stateCount // Sentinel value for iteration
)

// String returns the string representation of a state.
func (s CellState) String() string {
	switch s {
	case Unrevealed:
		return "unrevealed"
	case Partial:
		return "partial"
	case Revealed:
		return "revealed"
	case Dug:
		return "dug"
	default:
		return "unknown"
	}
}

// AllStates returns every valid state in ascending precedence.
func AllStates() []CellState {
	return []CellState{Unrevealed, Partial, Revealed, Dug}
}

// transitions[from][to] reports whether a write of `to` may replace `from`.
// Dug > Revealed > Partial: a write never downgrades a cell.
var transitions = [stateCount][stateCount]bool{
	Unrevealed: {Partial: true, Revealed: true, Dug: true},
	Partial:    {Partial: true, Revealed: true, Dug: true},
	Revealed:   {Revealed: true, Dug: true},
	Dug:        {Dug: true},
}

// CanTransition reports whether a cell in state from accepts a write of to.
func CanTransition(from, to CellState) bool {
	if from >= stateCount || to >= stateCount {
		return false
	}
	return transitions[from][to]
}
