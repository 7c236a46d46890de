package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedCoherenceTable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		bio   BiofieldState
		heart HeartState
		want  float64
	}{
		{"focused creating", BiofieldFocused, HeartCreating, 0.90},
		{"focused observing", BiofieldFocused, HeartObserving, 0.92},
		{"neutral resting", BiofieldNeutral, HeartResting, 0.57},
		{"depleted investing", BiofieldDepleted, HeartInvesting, 0.29},
		{"unsettled learning", BiofieldUnsettled, HeartLearning, 0.43},
		{"charged building", BiofieldCharged, HeartBuilding, 0.71},
		{"restorative exploring", BiofieldRestorative, HeartExploring, 0.60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SeedCoherence(tt.bio, tt.heart), 1e-12)
		})
	}
}

func TestSeedCoherenceUnknownLabelsDegrade(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 0.50, SeedCoherence("mystery", "unknown"), 1e-12,
		"unknown labels fall back to neutral base and zero modifier")
	assert.InDelta(t, 0.60, SeedCoherence("mystery", HeartCreating), 1e-12)
}

func TestSeedCoherenceClamped(t *testing.T) {
	t.Parallel()
	v := SeedCoherence(BiofieldFocused, HeartObserving)
	assert.LessOrEqual(t, v, 1.0)
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestStatusFromStability(t *testing.T) {
	t.Parallel()
	tests := []struct {
		stability float64
		want      ChiralStatus
	}{
		{-0.1, ChiralUnstable},
		{0, ChiralStabilizing},
		{0.29, ChiralStabilizing},
		{0.3, ChiralStable},
		{0.69, ChiralStable},
		{0.7, ChiralCrystalline},
		{1.0, ChiralCrystalline},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFromStability(tt.stability), "stability=%v", tt.stability)
	}
}

func TestNewSnapshot(t *testing.T) {
	t.Parallel()
	snap := NewSnapshot(3.2, 0.645, 0.75, true)
	assert.Equal(t, 3.2, snap.Phi)
	assert.InDelta(t, 64.5, snap.CoherencePercent, 1e-9)
	assert.Equal(t, ChiralCrystalline, snap.ChiralStatus)
	assert.True(t, snap.VerificationEligible)

	// Coherence above 1 clamps before converting to percent.
	over := NewSnapshot(0, 1.4, 0.5, false)
	assert.Equal(t, 100.0, over.CoherencePercent)
}
