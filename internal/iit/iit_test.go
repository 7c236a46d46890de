package iit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ringGraph(n int, weight float64) Graph {
	g := NewGraph()
	for i := 0; i < n; i++ {
		g = AddNode(g, fmt.Sprintf("n%d", i), 0.5+float64(i)*0.1)
	}
	for i := 0; i < n; i++ {
		g = Connect(g, fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", (i+1)%n), weight)
	}
	return g
}

func TestAddNodeAndConnectivity(t *testing.T) {
	t.Parallel()
	g := NewGraph()
	g = AddNode(g, "a", -0.5)
	assert.Equal(t, 0.5, g.Nodes["a"].Activity, "activity is |state|")
	assert.Equal(t, 1, g.Size)
	assert.Zero(t, g.Connectivity)

	g = AddNode(g, "b", 1.0)
	g = Connect(g, "a", "b", 0.8)
	assert.InDelta(t, 0.5, g.Connectivity, 1e-12, "1 edge of 2 possible")

	g = Connect(g, "b", "a", 0.8)
	assert.InDelta(t, 1.0, g.Connectivity, 1e-12)
}

func TestConnectUnknownNodeIsNoOp(t *testing.T) {
	t.Parallel()
	g := NewGraph()
	g = AddNode(g, "a", 1)
	g = AddNode(g, "b", 1)
	before := g.Connectivity

	g = Connect(g, "a", "ghost", 0.9)
	g = Connect(g, "ghost", "b", 0.9)
	assert.Equal(t, before, g.Connectivity)
	assert.Empty(t, g.Nodes["a"].Outgoing)
}

func TestComputePhiSmallGraphsAreZero(t *testing.T) {
	t.Parallel()
	assert.Zero(t, ComputePhi(NewGraph()))

	g := AddNode(NewGraph(), "only", 1.0)
	assert.Zero(t, ComputePhi(g))
}

func TestComputePhiNonNegative(t *testing.T) {
	t.Parallel()
	for n := 2; n <= 9; n++ {
		g := ringGraph(n, 0.7)
		assert.GreaterOrEqual(t, ComputePhi(g), 0.0, "n=%d", n)
	}
}

func TestComputePhiDeterministicForInsertionOrder(t *testing.T) {
	t.Parallel()
	a := ringGraph(8, 0.6)
	b := ringGraph(8, 0.6)
	assert.Equal(t, ComputePhi(a), ComputePhi(b))
}

func TestComputePhiCrossInfoRaisesPhi(t *testing.T) {
	t.Parallel()
	sparse := ringGraph(4, 0.1)
	dense := ringGraph(4, 2.0)
	assert.GreaterOrEqual(t, ComputePhi(dense), ComputePhi(sparse),
		"heavier crossing edges cannot lower the partition minimum")
}

func TestIsVerifiedStrictAndGate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		phiValue     float64
		coherence    float64
		chiralStable bool
		want         bool
	}{
		{"all gates pass", 3.5, 0.6, true, true},
		{"phi at threshold passes", 3.0, 0.6, true, true},
		{"phi below threshold", 2.9, 0.6, true, false},
		{"coherence below band", 10, 0.39, true, false},
		{"coherence above band", 10, 0.86, true, false},
		{"coherence at low edge", 3.5, 0.4, true, true},
		{"coherence at high edge", 3.5, 0.85, true, true},
		{"chiral gate fails alone", 10, 0.6, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsVerified(tt.phiValue, tt.coherence, tt.chiralStable))
		})
	}
}

func TestComputeMetricsRanges(t *testing.T) {
	t.Parallel()
	g := ringGraph(5, 0.9)
	m := ComputeMetrics(g, 0.6, 0.8)

	require.GreaterOrEqual(t, m.Phi, 0.0)
	for name, v := range map[string]float64{
		"integration":     m.Integration,
		"differentiation": m.Differentiation,
		"exclusion":       m.Exclusion,
		"score":           m.Score,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
}

func TestComputeMetricsUniformRingHasNoExclusion(t *testing.T) {
	t.Parallel()
	// Every node in a ring has out-degree 1: zero spread.
	m := ComputeMetrics(ringGraph(5, 0.9), 0.5, 0.5)
	assert.Zero(t, m.Exclusion)
}
