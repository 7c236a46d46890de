package kuramoto

import (
	"math"

	"github.com/talgya/biofield/internal/phi"
)

// derivatives fills dst with dθᵢ/dt for the given phase vector:
//
//	dθᵢ/dt = ωᵢ + K·r·sin(ψ−θᵢ)·modᵢ + η(t)
//
// The mean field (r, ψ) is recomputed from the stage phases, so every RK4
// stage sees a self-consistent field. This is the mean-field approximation:
// one order parameter instead of the O(N²) pairwise sum.
func derivatives(dst []float64, sys *System, phases []float64, t float64) {
	var re, im float64
	for _, p := range phases {
		re += math.Cos(p)
		im += math.Sin(p)
	}
	n := float64(len(phases))
	re /= n
	im /= n
	r := math.Min(1, math.Hypot(re, im))
	psi := math.Atan2(im, re)

	eta := 0.0
	if sys.Noise != nil {
		eta = sys.Noise(t)
	}
	for i := range phases {
		o := &sys.Oscillators[i]
		dst[i] = o.NaturalFrequency +
			sys.Coupling*r*math.Sin(psi-phases[i])*o.CouplingModifier +
			eta
	}
}

// Step advances the system by one classic 4th-order Runge–Kutta step,
// sampling noise at t, t+dt/2, and t+dt. Returns the evolved system; the
// input is untouched.
func Step(sys System, dt float64) System {
	n := len(sys.Oscillators)
	if n == 0 {
		sys.Time += dt
		return sys
	}

	// Scratch buffers stay local to this call; nothing aliases the input.
	theta := make([]float64, n)
	stage := make([]float64, n)
	k1 := make([]float64, n)
	k2 := make([]float64, n)
	k3 := make([]float64, n)
	k4 := make([]float64, n)

	for i, o := range sys.Oscillators {
		theta[i] = o.Phase
	}
	t := sys.Time

	derivatives(k1, &sys, theta, t)
	for i := range theta {
		stage[i] = theta[i] + k1[i]*dt/2
	}
	derivatives(k2, &sys, stage, t+dt/2)
	for i := range theta {
		stage[i] = theta[i] + k2[i]*dt/2
	}
	derivatives(k3, &sys, stage, t+dt/2)
	for i := range theta {
		stage[i] = theta[i] + k3[i]*dt
	}
	derivatives(k4, &sys, stage, t+dt)

	out := sys
	out.Oscillators = make([]Oscillator, n)
	copy(out.Oscillators, sys.Oscillators)
	for i := range out.Oscillators {
		delta := dt / 6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
		out.Oscillators[i].Phase = phi.NormalizeAngle(theta[i] + delta)
	}
	out.Time = t + dt
	return out
}
