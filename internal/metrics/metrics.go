// Package metrics carries the engine's two boundary contracts: the
// biofield/heart seed tables that map upstream state labels to a starting
// coherence, and the snapshot object the surrounding application polls.
// Both tables are part of the reproducible contract, not implementation
// detail.
package metrics

import "github.com/talgya/biofield/internal/phi"

// BiofieldState is the discrete label supplied by the surrounding
// application.
type BiofieldState string

const (
	BiofieldFocused     BiofieldState = "focused"
	BiofieldCharged     BiofieldState = "charged"
	BiofieldRestorative BiofieldState = "restorative"
	BiofieldNeutral     BiofieldState = "neutral"
	BiofieldUnsettled   BiofieldState = "unsettled"
	BiofieldDepleted    BiofieldState = "depleted"
)

// HeartState is the activity label supplied alongside the biofield state.
type HeartState string

const (
	HeartCreating   HeartState = "creating"
	HeartLearning   HeartState = "learning"
	HeartExploring  HeartState = "exploring"
	HeartBuilding   HeartState = "building"
	HeartInvesting  HeartState = "investing"
	HeartObserving  HeartState = "observing"
	HeartResting    HeartState = "resting"
)

// baseCoherence maps each biofield state to its base coherence.
var baseCoherence = map[BiofieldState]float64{
	BiofieldFocused:     0.80,
	BiofieldCharged:     0.65,
	BiofieldRestorative: 0.55,
	BiofieldNeutral:     0.50,
	BiofieldUnsettled:   0.35,
	BiofieldDepleted:    0.25,
}

// heartModifier maps each heart state to its additive coherence modifier.
var heartModifier = map[HeartState]float64{
	HeartCreating:  0.10,
	HeartLearning:  0.08,
	HeartExploring: 0.05,
	HeartBuilding:  0.06,
	HeartInvesting: 0.04,
	HeartObserving: 0.12,
	HeartResting:   0.07,
}

// SeedCoherence combines the two tables and clamps to [0, 1]. Unknown labels
// degrade to the neutral base and a zero modifier.
func SeedCoherence(bio BiofieldState, heart HeartState) float64 {
	base, ok := baseCoherence[bio]
	if !ok {
		base = baseCoherence[BiofieldNeutral]
	}
	return phi.Clamp01(base + heartModifier[heart])
}

// ChiralStatus bands a chiral stability value for display.
type ChiralStatus string

const (
	ChiralUnstable    ChiralStatus = "unstable"
	ChiralStabilizing ChiralStatus = "stabilizing"
	ChiralStable      ChiralStatus = "stable"
	ChiralCrystalline ChiralStatus = "crystalline"
)

// StatusFromStability maps stability onto the display bands:
// <0 unstable, <0.3 stabilizing, <0.7 stable, ≥0.7 crystalline.
func StatusFromStability(stability float64) ChiralStatus {
	switch {
	case stability < 0:
		return ChiralUnstable
	case stability < 0.3:
		return ChiralStabilizing
	case stability < 0.7:
		return ChiralStable
	default:
		return ChiralCrystalline
	}
}

// Snapshot is the polled output object.
type Snapshot struct {
	Phi                  float64      `json:"phi"`
	CoherencePercent     float64      `json:"coherence_percent"`
	ChiralStatus         ChiralStatus `json:"chiral_status"`
	VerificationEligible bool         `json:"verification_eligible"`
}

// NewSnapshot assembles the output contract from engine signals.
func NewSnapshot(phiValue, coherence, chiralStability float64, verified bool) Snapshot {
	return Snapshot{
		Phi:                  phiValue,
		CoherencePercent:     phi.Clamp01(coherence) * 100,
		ChiralStatus:         StatusFromStability(chiralStability),
		VerificationEligible: verified,
	}
}
