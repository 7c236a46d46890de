package iit

import (
	"math"

	"github.com/talgya/biofield/internal/phi"
)

// Metrics is the derived consciousness profile of a graph.
type Metrics struct {
	Phi             float64 `json:"phi"`
	Integration     float64 `json:"integration"`
	Differentiation float64 `json:"differentiation"`
	Exclusion       float64 `json:"exclusion"`
	Score           float64 `json:"score"`
}

// ComputeMetrics derives the full consciousness profile:
//   - integration: mean edge weight × connectivity × Φ⁻¹, clamped to 1
//   - differentiation: activity spread × Φ⁻¹, clamped to 1
//   - exclusion: out-degree spread ÷ graph size, clamped to 1
//   - score: the shared golden blend over Φ (normalized against its
//     verification threshold), coherence, chiral stability, and the
//     integration/differentiation pair.
func ComputeMetrics(g Graph, coherence, chiralStability float64) Metrics {
	phiValue := ComputePhi(g)

	integration := phi.Clamp01(MeanEdgeWeight(g) * g.Connectivity * phi.InvPhi)

	_, activitySpread := activityStats(g)
	differentiation := phi.Clamp01(activitySpread * phi.InvPhi)

	exclusion := 0.0
	if g.Size > 0 {
		exclusion = phi.Clamp01(outDegreeSpread(g) / float64(g.Size))
	}

	score := phi.Blend4(
		phi.Clamp01(phiValue/PhiThreshold),
		phi.Clamp01(coherence),
		phi.Clamp01(chiralStability),
		(integration+differentiation)/2,
	)

	return Metrics{
		Phi:             phiValue,
		Integration:     integration,
		Differentiation: differentiation,
		Exclusion:       exclusion,
		Score:           phi.Clamp01(score),
	}
}

// outDegreeSpread is the population standard deviation of node out-degrees.
func outDegreeSpread(g Graph) float64 {
	n := len(g.Order)
	if n == 0 {
		return 0
	}
	var mean float64
	for _, id := range g.Order {
		mean += float64(len(g.Nodes[id].Outgoing))
	}
	mean /= float64(n)
	var variance float64
	for _, id := range g.Order {
		d := float64(len(g.Nodes[id].Outgoing)) - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(n))
}
