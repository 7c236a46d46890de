// Package bridge implements the two-operator algebra on a 2D state that
// carries both cartesian and polar components. R(θ) acts on the cartesian
// pair and leaves the polar pair as it was; G scales the polar amplitude by
// Φ, advances the polar phase by the golden angle, and rewrites the
// cartesian pair from the new polar form. Because the two operators read
// different representations they do not commute, and the componentwise
// difference RG − GR is the emergence signal.
package bridge

import (
	"math"
	"sort"

	"github.com/talgya/biofield/internal/phi"
)

// EmergenceEpsilon is the amplitude below which a commutator reads as zero.
const EmergenceEpsilon = 1e-10

// DefaultBridgeAlpha is the default perturbation gain for ApplyBridge: Φ/2.
var DefaultBridgeAlpha = phi.Phi / 2

// State is a point in the operator plane. Constructors keep the cartesian
// and polar halves consistent; the operators deliberately do not.
type State struct {
	Real               float64 `json:"real"`
	Imag               float64 `json:"imag"`
	Amplitude          float64 `json:"amplitude"`
	Phase              float64 `json:"phase"`
	EmergenceMagnitude float64 `json:"emergence_magnitude"`
}

// New builds a state from cartesian components, deriving amplitude and phase.
func New(re, im float64) State {
	return State{
		Real:      re,
		Imag:      im,
		Amplitude: math.Hypot(re, im),
		Phase:     phi.NormalizeAngle(math.Atan2(im, re)),
	}
}

// Rotate applies R(θ) to the cartesian components only.
func Rotate(s State, theta float64) State {
	cos, sin := math.Cos(theta), math.Sin(theta)
	re := s.Real*cos - s.Imag*sin
	im := s.Real*sin + s.Imag*cos
	s.Real, s.Imag = re, im
	return s
}

// GoldenScale applies G: polar amplitude scales by Φ, polar phase advances by
// the golden angle 2π/Φ², and the cartesian pair is rebuilt from the result.
func GoldenScale(s State) State {
	s.Amplitude *= phi.Phi
	s.Phase = phi.NormalizeAngle(s.Phase + phi.GoldenAngle)
	s.Real = s.Amplitude * math.Cos(s.Phase)
	s.Imag = s.Amplitude * math.Sin(s.Phase)
	return s
}

// GoldenScaleInverse is the exact inverse of GoldenScale.
func GoldenScaleInverse(s State) State {
	s.Amplitude *= phi.InvPhi
	s.Phase = phi.NormalizeAngle(s.Phase - phi.GoldenAngle)
	s.Real = s.Amplitude * math.Cos(s.Phase)
	s.Imag = s.Amplitude * math.Sin(s.Phase)
	return s
}

// ComputeEmergence returns the componentwise commutator RG − GR for the
// given rotation angle. The result's amplitude is the emergence magnitude —
// how far the two operator orders disagree.
func ComputeEmergence(s State, angle float64) State {
	rg := Rotate(GoldenScale(s), angle) // scale, then rotate
	gr := GoldenScale(Rotate(s, angle)) // rotate, then scale
	out := New(rg.Real-gr.Real, rg.Imag-gr.Imag)
	out.EmergenceMagnitude = out.Amplitude
	return out
}

// IsEmergent reports whether a commutator state is meaningfully nonzero.
func IsEmergent(s State) bool {
	return s.Amplitude > EmergenceEpsilon
}

// ApplyBridge perturbs a state by alpha times its own emergence commutator,
// then renormalizes amplitude and phase from the perturbed cartesian pair.
// A non-positive alpha uses DefaultBridgeAlpha.
func ApplyBridge(s State, angle, alpha float64) State {
	if alpha <= 0 {
		alpha = DefaultBridgeAlpha
	}
	xi := ComputeEmergence(s, angle)
	out := New(s.Real+alpha*xi.Real, s.Imag+alpha*xi.Imag)
	out.EmergenceMagnitude = xi.EmergenceMagnitude
	return out
}

// Spectrum summarizes emergence magnitudes over a collection of states.
type Spectrum struct {
	Mean float64 `json:"mean"`
	Max  float64 `json:"max"`
	Gap  float64 `json:"gap"` // distance between the top two magnitudes
}

// ComputeSpectrum computes each state's emergence magnitude, sorts them
// descending, and reports mean, max, and the top-two gap. A single state
// reports its own magnitude as the gap; an empty input is all zeros.
func ComputeSpectrum(states []State, angle float64) Spectrum {
	if len(states) == 0 {
		return Spectrum{}
	}
	mags := make([]float64, len(states))
	var sum float64
	for i, s := range states {
		mags[i] = ComputeEmergence(s, angle).EmergenceMagnitude
		sum += mags[i]
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(mags)))
	sp := Spectrum{
		Mean: sum / float64(len(mags)),
		Max:  mags[0],
		Gap:  mags[0],
	}
	if len(mags) > 1 {
		sp.Gap = mags[0] - mags[1]
	}
	return sp
}
