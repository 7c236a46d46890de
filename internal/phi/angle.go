package phi

import "math"

// TwoPi is one full revolution.
const TwoPi = 2 * math.Pi

// NormalizeAngle maps any real angle into [0, 2π).
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, TwoPi)
	if theta < 0 {
		theta += TwoPi
		// A tiny negative input can round up to exactly 2π.
		if theta == TwoPi {
			theta = 0
		}
	}
	return theta
}

// PhaseDistance returns the minimal circular distance between two angles,
// always in [0, π].
func PhaseDistance(a, b float64) float64 {
	d := math.Abs(NormalizeAngle(a) - NormalizeAngle(b))
	if d > math.Pi {
		d = TwoPi - d
	}
	return d
}
