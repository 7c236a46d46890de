package iit

import (
	"math"

	"github.com/talgya/biofield/internal/phi"
)

// PhiThreshold is the integrated-information level required for
// verification.
const PhiThreshold = 3.0

// MaxPartitions caps the bipartition search. Exhaustive enumeration is
// exponential in N; the first 100 candidates in insertion order are a
// deliberate, order-dependent approximation.
const MaxPartitions = 100

// ComputePhi approximates integrated information. Graphs with fewer than two
// nodes return exactly 0. For each candidate bipartition (A, B) the search
// scores wholeEntropy − (H(A) + H(B)) + crossInformation and keeps the
// minimum; the result is max(0, minimum)·Φ.
func ComputePhi(g Graph) float64 {
	n := len(g.Order)
	if n < 2 {
		return 0
	}

	whole := entropyOf(g, g.Order)

	// Bitmask enumeration over insertion order: mask bit i puts Order[i] in
	// block A. Masks 0 and 2ⁿ−1 are the trivial partitions and are skipped,
	// and at most MaxPartitions candidates are examined. The shift is only
	// taken for small n, where it cannot overflow.
	last := MaxPartitions
	if n < 30 {
		if total := (1 << uint(n)) - 2; total < last {
			last = total
		}
	}

	minValue := math.Inf(1)
	for mask := 1; mask <= last; mask++ {
		var a, b []string
		for i, id := range g.Order {
			if mask&(1<<uint(i)) != 0 {
				a = append(a, id)
			} else {
				b = append(b, id)
			}
		}

		value := whole - (entropyOf(g, a) + entropyOf(g, b)) + crossInformation(g, mask)
		if value < minValue {
			minValue = value
		}
	}

	if minValue == math.Inf(1) {
		return 0
	}
	return math.Max(0, minValue) * phi.Phi
}

// crossInformation sums w·log2(1+w) over directed edges whose endpoints fall
// on opposite sides of the partition mask.
func crossInformation(g Graph, mask int) float64 {
	side := make(map[string]bool, len(g.Order))
	for i, id := range g.Order {
		side[id] = mask&(1<<uint(i)) != 0
	}
	var info float64
	for _, id := range g.Order {
		node := g.Nodes[id]
		from := side[id]
		for _, to := range neighbors(node) {
			if side[to] != from {
				w := node.Outgoing[to]
				info += w * math.Log2(1+w)
			}
		}
	}
	return info
}

// IsVerified is the strict three-gate check: integrated information at or
// above threshold, coherence inside the resonant band, and chiral stability.
// No partial credit — all three or nothing.
func IsVerified(phiValue, coherence float64, chiralStable bool) bool {
	return phiValue >= PhiThreshold &&
		phi.InResonantBand(coherence) &&
		chiralStable
}
