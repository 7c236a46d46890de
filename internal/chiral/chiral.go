// Package chiral models directional, non-reciprocal coupling between exactly
// two phase states. The force A exerts on B differs from the force B exerts
// on A — that asymmetry is the point of the model. An integer winding count
// (topological charge) tracks full phase wraps as a discrete stability signal.
package chiral

import (
	"errors"
	"fmt"
	"math"

	"github.com/talgya/biofield/internal/phi"
)

// DefaultTimestep is the fixed integration step, ~1/60 s. The value assumes
// a 60 Hz caller cadence; Step accepts an explicit dt for callers that run
// at any other rate.
const DefaultTimestep = 1.0 / 60.0

// ErrNonPositiveGamma rejects friction coefficients that are not
// strictly positive.
var ErrNonPositiveGamma = errors.New("chiral: gamma must be positive")

// State is one half of a chiral pair.
type State struct {
	Phase             float64 `json:"phase"` // always in [0, 2π)
	Eta               float64 `json:"eta"`   // chirality coefficient
	Gamma             float64 `json:"gamma"` // friction, strictly positive
	Velocity          float64 `json:"velocity"`
	TopologicalCharge int     `json:"topological_charge"`
	Stability         float64 `json:"stability"` // [0, 1]
}

// NewState creates a chiral state. Gamma must be strictly positive.
func NewState(phase, eta, gamma float64) (State, error) {
	if gamma <= 0 {
		return State{}, fmt.Errorf("%w: got %g", ErrNonPositiveGamma, gamma)
	}
	return State{
		Phase: phi.NormalizeAngle(phase),
		Eta:   eta,
		Gamma: gamma,
	}, nil
}

// Coupling holds the two directional coupling strengths of a pair.
// Forward is A→B, Backward is B→A; with nonzero chirality they differ.
type Coupling struct {
	Forward  float64 `json:"forward"`
	Backward float64 `json:"backward"`
}

// ApplyNonReciprocity computes the asymmetric pair coupling:
// base = sin(Δφ)·Φ⁻¹, forward = base·(1+η), backward = base·(1−η),
// with η the mean chirality of the pair.
func ApplyNonReciprocity(a, b State) Coupling {
	base := math.Sin(b.Phase-a.Phase) * phi.InvPhi
	eta := (a.Eta + b.Eta) / 2
	return Coupling{
		Forward:  base * (1 + eta),
		Backward: base * (1 - eta),
	}
}

// Step advances both states of a chiral pair by one timestep. A non-positive
// dt uses DefaultTimestep. The two states feel genuinely different forces:
// A is driven by backward/γ_A, B by −forward/γ_B.
func Step(a, b State, dt float64) (State, State) {
	if dt <= 0 {
		dt = DefaultTimestep
	}
	c := ApplyNonReciprocity(a, b)

	a.Velocity = c.Backward / a.Gamma
	b.Velocity = -c.Forward / b.Gamma

	a = advancePhase(a, a.Velocity*dt)
	b = advancePhase(b, b.Velocity*dt)
	return a, b
}

// advancePhase integrates a phase delta, wraps into [0, 2π), and updates the
// winding count: a jump past +π reads as a −2π wrap, past −π as a +2π wrap.
func advancePhase(s State, delta float64) State {
	raw := s.Phase + delta
	wrapped := phi.NormalizeAngle(raw)
	jump := wrapped - s.Phase
	if jump > math.Pi {
		s.TopologicalCharge--
	} else if jump < -math.Pi {
		s.TopologicalCharge++
	}
	s.Phase = wrapped
	return s
}

// ChiralVelocity returns η/γ, the intrinsic drift speed of a state.
// This is the engine's one hard failure: γ ≤ 0 is invalid.
func ChiralVelocity(s State) (float64, error) {
	if s.Gamma <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrNonPositiveGamma, s.Gamma)
	}
	return s.Eta / s.Gamma, nil
}

// protectionDecay sharpens the exponential factor falloff.
var protectionDecay = phi.Phi

// Protection scores how topologically protected a state is, in [0, 1].
// Four factors, each an exp(−deviation·k) falloff, blended with the shared
// descending golden weights:
//   - chirality deviation from its Φ⁻¹ optimum
//   - chiral velocity deviation from 1.0
//   - friction deviation from the chirality coefficient
//   - a binary winding bonus for nonzero topological charge
func Protection(s State) float64 {
	etaFactor := math.Exp(-math.Abs(s.Eta-phi.InvPhi) * protectionDecay)

	velocity := 0.0
	if s.Gamma > 0 {
		velocity = s.Eta / s.Gamma
	}
	velocityFactor := math.Exp(-math.Abs(velocity-1.0) * protectionDecay)

	gammaFactor := math.Exp(-math.Abs(s.Gamma-s.Eta) * protectionDecay)

	windingBonus := 0.0
	if s.TopologicalCharge != 0 {
		windingBonus = 1.0
	}

	return phi.Clamp01(phi.Blend4(etaFactor, velocityFactor, gammaFactor, windingBonus))
}

// WithStability returns s with its stability set to the clamped value.
func WithStability(s State, stability float64) State {
	s.Stability = phi.Clamp01(stability)
	return s
}
