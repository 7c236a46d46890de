// Package resonance implements the single damped scalar oscillator with a
// coherence-tuning feedback loop. The damping constraint λ is clamped on
// every write; coherence is an exponentially smoothed inverse of how much
// the velocity swings between steps.
package resonance

import (
	"math"

	"github.com/talgya/biofield/internal/phi"
)

// Bounds. The constraint may legally reach 0, where the quality factor is
// unbounded; the ceiling and the state bounds are the Φ³ collapse limit.
var (
	LambdaMin = 0.0
	LambdaMax = phi.Totality
	MinState  = -phi.Totality
	MaxState  = phi.Totality
)

// DefaultCoherence seeds a fresh controller at the neutral midpoint.
const DefaultCoherence = 0.5

// DriveFunc supplies the external driving force at a given displacement.
type DriveFunc func(x float64) float64

// State is the controller state.
type State struct {
	X         float64 `json:"x"`
	Lambda    float64 `json:"lambda"`
	Coherence float64 `json:"coherence"`
	Velocity  float64 `json:"velocity"`
	Phase     float64 `json:"phase"`
}

// NewState returns the default controller: x=0, λ=Φ⁻¹, coherence 0.5.
func NewState() State {
	return State{
		Lambda:    phi.InvPhi,
		Coherence: DefaultCoherence,
	}
}

// WithLambda returns s with λ set, clamped to its legal range.
func WithLambda(s State, lambda float64) State {
	s.Lambda = phi.Clamp(lambda, LambdaMin, LambdaMax)
	return s
}

// Step advances the oscillator by one Euler step:
//
//	v  = f(x) − λx
//	x' = clamp(x + v·dt)
//
// The phase accumulator grows by |v|·dt mod 2π, and coherence relaxes toward
// the inverse of the frame-to-frame velocity swing with smoothing factor Φ⁻¹.
func Step(s State, f DriveFunc, dt float64) State {
	drive := 0.0
	if f != nil {
		drive = f(s.X)
	}
	velocity := drive - s.Lambda*s.X

	s.X = phi.Clamp(s.X+velocity*dt, MinState, MaxState)
	s.Phase = math.Mod(s.Phase+math.Abs(velocity)*dt, phi.TwoPi)

	volatility := math.Abs(velocity - s.Velocity)
	instant := 1 / (1 + volatility)
	s.Coherence = phi.Clamp01(phi.InvPhi*s.Coherence + (1-phi.InvPhi)*instant)

	s.Velocity = velocity
	return s
}

// TuneConstraint nudges λ toward a target coherence with gain rate·Φ⁻¹.
// The target is clamped into the resonant band and λ is clamped on write.
func TuneConstraint(s State, targetCoherence, rate float64) State {
	target := phi.Clamp(targetCoherence, phi.ResonantLow, phi.ResonantHigh)
	adjusted := s.Lambda + rate*phi.InvPhi*(target-s.Coherence)
	return WithLambda(s, adjusted)
}

// QualityFactor returns Q = 1/(2λ). At λ=0 this is +Inf by contract, not an
// error.
func QualityFactor(s State) float64 {
	if s.Lambda == 0 {
		return math.Inf(1)
	}
	return 1 / (2 * s.Lambda)
}

// NaturalFrequency returns sqrt(1 − (λ/2)²), or 0 when over-damped rather
// than a complex number.
func NaturalFrequency(s State) float64 {
	return math.Sqrt(math.Max(0, 1-(s.Lambda/2)*(s.Lambda/2)))
}
