// Package phi provides the golden-ratio constants and shared numeric helpers
// the whole engine is built on. No arbitrary magic numbers — every damping
// coefficient, weighting term, and band boundary traces back to Φ.
package phi

import "math"

// Phi is the golden ratio, satisfying Φ² = Φ + 1.
const Phi = 1.6180339887498948

// Inverse powers of Phi, used pervasively as damping and weighting constants.
var (
	// InvPhi (Φ⁻¹): the primary damping/weighting constant, ~0.618.
	// Also equals Φ − 1.
	InvPhi = 1 / Phi

	// InvPhi2 (Φ⁻²): ~0.382. Also equals 1 − Φ⁻¹.
	InvPhi2 = math.Pow(Phi, -2)

	// InvPhi3 (Φ⁻³): ~0.236. The base rate of imperfection.
	InvPhi3 = math.Pow(Phi, -3)

	// Totality (Φ³): ~4.236 — the ceiling beyond which systems collapse.
	// Bounds the resonance state and its damping constraint.
	Totality = math.Pow(Phi, 3)
)

// GoldenAngle is the fixed rotation applied by the golden scaling operator:
// 2π/Φ² radians (~137.5°, the phyllotaxis angle).
var GoldenAngle = 2 * math.Pi / (Phi * Phi)

// Resonant band: the coherence interval treated as optimal.
// Inclusive at both boundaries.
const (
	ResonantLow  = 0.4
	ResonantHigh = 0.85
)

// InResonantBand reports whether a coherence value falls in the optimal band.
func InResonantBand(coherence float64) bool {
	return coherence >= ResonantLow && coherence <= ResonantHigh
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 bounds v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
