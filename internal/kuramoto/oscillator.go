// Package kuramoto implements the mean-field Kuramoto model: a population of
// phase oscillators pulled toward their own instantaneous order parameter.
// The order-parameter primitive defined here is reused by the hive package.
//
// All transition functions take state in and return evolved state out; any
// scratch arrays the stepper uses internally never alias caller memory.
package kuramoto

import (
	"math"

	"github.com/talgya/biofield/internal/noise"
	"github.com/talgya/biofield/internal/phi"
)

// Oscillator is a single phase oscillator.
type Oscillator struct {
	ID               int     `json:"id"`
	Phase            float64 `json:"phase"` // always in [0, 2π)
	NaturalFrequency float64 `json:"natural_frequency"`
	CouplingModifier float64 `json:"coupling_modifier"` // per-oscillator scaling of the mean-field pull
}

// System is a population of oscillators under one mean-field coupling.
type System struct {
	Oscillators []Oscillator `json:"oscillators"`
	Coupling    float64      `json:"coupling"` // K
	Noise       noise.Func   `json:"-"`
	Time        float64      `json:"time"`
}

// OrderParameter is the complex-plane mean of a population's phases.
// Derived, never persisted.
type OrderParameter struct {
	R         float64 `json:"r"` // synchronization strength, [0, 1]
	MeanPhase float64 `json:"mean_phase"`
	Real      float64 `json:"real"`
	Imag      float64 `json:"imag"`
}

// NewOscillator creates an oscillator with its phase normalized.
func NewOscillator(id int, phase, naturalFrequency, couplingModifier float64) Oscillator {
	return Oscillator{
		ID:               id,
		Phase:            phi.NormalizeAngle(phase),
		NaturalFrequency: naturalFrequency,
		CouplingModifier: couplingModifier,
	}
}

// NewSystem creates n oscillators with phases and natural frequencies drawn
// from the injected source. Frequencies spread around 1.0; modifiers are 1.
func NewSystem(n int, coupling float64, src noise.Source) System {
	oscs := make([]Oscillator, 0, n)
	for i := 0; i < n; i++ {
		oscs = append(oscs, NewOscillator(
			i,
			src.Float()*phi.TwoPi,
			1.0+(src.Float()-0.5)*phi.InvPhi,
			1.0,
		))
	}
	return System{Oscillators: oscs, Coupling: coupling, Noise: noise.Zero}
}

// ComputeOrderParameter returns (r, ψ) for the population. An empty
// population yields r=0, ψ=0. r is clamped so rounding never exceeds 1.
func ComputeOrderParameter(oscs []Oscillator) OrderParameter {
	if len(oscs) == 0 {
		return OrderParameter{}
	}
	var re, im float64
	for _, o := range oscs {
		re += math.Cos(o.Phase)
		im += math.Sin(o.Phase)
	}
	re /= float64(len(oscs))
	im /= float64(len(oscs))
	return OrderParameter{
		R:         math.Min(1, math.Hypot(re, im)),
		MeanPhase: phi.NormalizeAngle(math.Atan2(im, re)),
		Real:      re,
		Imag:      im,
	}
}

// DefaultSyncThreshold is the order-parameter level treated as synchronized.
const DefaultSyncThreshold = 0.9

// IsSynchronized reports whether the population's order parameter exceeds
// threshold. A non-positive threshold falls back to DefaultSyncThreshold.
func IsSynchronized(sys System, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultSyncThreshold
	}
	return ComputeOrderParameter(sys.Oscillators).R >= threshold
}
