// Package noise provides the deterministic random and noise sources injected
// into the engine. Every stochastic default in the engine takes an explicit
// Source or Func so identical seeds reproduce identical runs bit for bit.
package noise

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source yields uniform random values in [0, 1).
type Source interface {
	Float() float64
}

// Func is a time-indexed noise term added to an oscillator's phase velocity.
type Func func(t float64) float64

// Zero is the silent noise function.
func Zero(float64) float64 { return 0 }

// seeded wraps math/rand behind the Source interface.
type seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a deterministic Source for the given seed.
func NewSeeded(seed int64) Source {
	return &seeded{rng: rand.New(rand.NewSource(seed))}
}

func (s *seeded) Float() float64 { return s.rng.Float64() }

// Simplex returns a smooth deterministic noise function over time: normalized
// simplex noise sampled along one axis, recentered to [-amplitude, amplitude].
func Simplex(seed int64, frequency, amplitude float64) Func {
	n := opensimplex.NewNormalized(seed)
	return func(t float64) float64 {
		return (n.Eval2(t*frequency, 0)*2 - 1) * amplitude
	}
}

// Uniform returns white noise in [-amplitude, amplitude] drawn from src.
// Successive calls consume the source, so the caller owns call ordering.
func Uniform(src Source, amplitude float64) Func {
	return func(float64) float64 {
		return (src.Float()*2 - 1) * amplitude
	}
}
