package kuramoto

import "math"

// CoherenceSampleStride bounds simulate output: one sample per 10 steps.
const CoherenceSampleStride = 10

// Simulate runs steps RK4 integrations of size dt and records a coherence
// sample every 10th step. Returns the evolved system and the samples.
func Simulate(sys System, steps int, dt float64) (System, []float64) {
	samples := make([]float64, 0, steps/CoherenceSampleStride+1)
	for i := 1; i <= steps; i++ {
		sys = Step(sys, dt)
		if i%CoherenceSampleStride == 0 {
			samples = append(samples, ComputeOrderParameter(sys.Oscillators).R)
		}
	}
	return sys, samples
}

// EstimateCriticalCoupling returns the classic Kuramoto estimate 4Δω/π from
// the spread (population standard deviation) of natural frequencies.
// Populations smaller than 2 have no meaningful spread and yield 0.
func EstimateCriticalCoupling(sys System) float64 {
	n := len(sys.Oscillators)
	if n < 2 {
		return 0
	}
	var mean float64
	for _, o := range sys.Oscillators {
		mean += o.NaturalFrequency
	}
	mean /= float64(n)
	var variance float64
	for _, o := range sys.Oscillators {
		d := o.NaturalFrequency - mean
		variance += d * d
	}
	variance /= float64(n)
	return 4 * math.Sqrt(variance) / math.Pi
}

// MinCoupling is the floor adaptCoupling never tunes below.
const MinCoupling = 0.1

// AdaptCoupling nudges K proportionally toward the target coherence and
// clamps it to the MinCoupling floor. Returns the adjusted system.
func AdaptCoupling(sys System, targetCoherence, rate float64) System {
	r := ComputeOrderParameter(sys.Oscillators).R
	sys.Coupling += rate * (targetCoherence - r)
	if sys.Coupling < MinCoupling {
		sys.Coupling = MinCoupling
	}
	return sys
}
