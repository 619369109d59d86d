package sim

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// PartialWeight is the share of a fully revealed cell that a partial
// reveal is worth.
const PartialWeight = 0.25

// ErrDegenerateMetric is returned when a ratio has a zero denominator.
var ErrDegenerateMetric = errors.New("degenerate metric")

// Metrics are the ratios derived from Totals.
type Metrics struct {
	Effort     float64 // dug / total
	Coverage   float64 // weighted reveal / total
	Efficiency float64 // dug / weighted reveal
}

// WeightedReveal returns revealed + partial/4.
func (t Totals) WeightedReveal() float64 {
	return float64(t.Revealed) + float64(t.Partial)*PartialWeight
}

// ComputeMetrics derives effort, coverage and efficiency from t.
func ComputeMetrics(t Totals) (Metrics, error) {
	if t.Total == 0 {
		return Metrics{}, fmt.Errorf("%w: no cells simulated", ErrDegenerateMetric)
	}
	weighted := t.WeightedReveal()
	if weighted == 0 {
		return Metrics{}, fmt.Errorf("%w: nothing revealed (dug=%d)", ErrDegenerateMetric, t.Dug)
	}

	total := float64(t.Total)
	return Metrics{
		Effort:     float64(t.Dug) / total,
		Coverage:   weighted / total,
		Efficiency: float64(t.Dug) / weighted,
	}, nil
}

// Round returns m with every ratio rounded to the given decimal places.
func (m Metrics) Round(places int) Metrics {
	return Metrics{
		Effort:     Round(m.Effort, places),
		Coverage:   Round(m.Coverage, places),
		Efficiency: Round(m.Efficiency, places),
	}
}

// Round rounds v to the given number of decimal places. The exact binary
// value of v is rounded, not v*10^places, so 746.0/1600 (stored just below
// 0.46625) gives 0.4662. Exact halves round away from zero. Negative places
// are treated as zero.
func Round(v float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	s := strconv.FormatFloat(v, 'f', places, 64)
	if n, ok := halfwayUp(v, places); ok {
		s = n
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return r
}

// maxExactPlaces is the largest power of ten representable exactly in a float64.
const maxExactPlaces = 22

// halfwayUp reports whether v lies exactly halfway between two values with
// the given decimal places, and if so returns the one farther from zero.
// strconv resolves such ties to even.
func halfwayUp(v float64, places int) (string, bool) {
	if places > maxExactPlaces {
		return "", false
	}
	const prec = 256
	scaled := new(big.Float).SetPrec(prec).SetFloat64(math.Abs(v))
	scaled.Mul(scaled, new(big.Float).SetPrec(prec).SetFloat64(math.Pow(10, float64(places))))

	n, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(prec).Sub(scaled, new(big.Float).SetPrec(prec).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return "", false
	}

	n.Add(n, big.NewInt(1))
	s := n.String() + "e-" + strconv.Itoa(places)
	if v < 0 {
		s = "-" + s
	}
	return s, true
}
