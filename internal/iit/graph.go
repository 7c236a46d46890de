// Package iit provides the weighted directed consciousness graph and its
// integrated-information approximation: whole-system entropy minus the best
// bipartition's summed part entropies, corrected by the information crossing
// the cut, scaled by Φ.
package iit

import (
	"math"
	"sort"
)

// Node is a graph vertex with an activity level and weighted out-edges.
type Node struct {
	ID       string             `json:"id"`
	Activity float64            `json:"activity"` // |state|
	Outgoing map[string]float64 `json:"outgoing"` // neighbor id → weight
}

// Graph is a directed weighted graph. Node insertion order is retained:
// the capped partition search enumerates in that order, so Φ for large
// graphs depends on it (a documented property of the approximation).
type Graph struct {
	Nodes        map[string]*Node `json:"nodes"`
	Order        []string         `json:"order"`
	Size         int              `json:"size"`
	Connectivity float64          `json:"connectivity"`
}

// NewGraph creates an empty graph.
func NewGraph() Graph {
	return Graph{Nodes: make(map[string]*Node)}
}

// AddNode inserts a node whose activity is the magnitude of state. Adding an
// existing id updates its activity in place. Returns the updated graph.
func AddNode(g Graph, id string, state float64) Graph {
	if n, ok := g.Nodes[id]; ok {
		n.Activity = math.Abs(state)
		return g
	}
	g.Nodes[id] = &Node{
		ID:       id,
		Activity: math.Abs(state),
		Outgoing: make(map[string]float64),
	}
	g.Order = append(g.Order, id)
	g.Size = len(g.Order)
	g.Connectivity = connectivity(g)
	return g
}

// Connect adds a directed weighted edge. Either endpoint missing leaves the
// graph unchanged — connecting through nonexistent nodes degrades silently.
func Connect(g Graph, from, to string, weight float64) Graph {
	src, ok := g.Nodes[from]
	if !ok {
		return g
	}
	if _, ok := g.Nodes[to]; !ok {
		return g
	}
	src.Outgoing[to] = weight
	g.Connectivity = connectivity(g)
	return g
}

// connectivity is the edge count over the N·(N−1) possible directed edges.
func connectivity(g Graph) float64 {
	n := len(g.Order)
	if n < 2 {
		return 0
	}
	edges := 0
	for _, node := range g.Nodes {
		edges += len(node.Outgoing)
	}
	return float64(edges) / float64(n*(n-1))
}

// activityStats returns the mean and population standard deviation of the
// node activities in insertion order.
func activityStats(g Graph) (mean, std float64) {
	n := len(g.Order)
	if n == 0 {
		return 0, 0
	}
	for _, id := range g.Order {
		mean += g.Nodes[id].Activity
	}
	mean /= float64(n)
	for _, id := range g.Order {
		d := g.Nodes[id].Activity - mean
		std += d * d
	}
	return mean, math.Sqrt(std / float64(n))
}

// neighbors returns a node's out-edge targets in sorted order. Float sums
// over edges must not depend on map iteration order, or identical graphs
// would stop being bit-for-bit reproducible.
func neighbors(n *Node) []string {
	ids := make([]string, 0, len(n.Outgoing))
	for id := range n.Outgoing {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MeanEdgeWeight averages all edge weights; 0 for an edgeless graph.
func MeanEdgeWeight(g Graph) float64 {
	var sum float64
	count := 0
	for _, id := range g.Order {
		node := g.Nodes[id]
		for _, to := range neighbors(node) {
			sum += node.Outgoing[to]
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// probabilityFloor keeps every normalized activity away from log(0).
const probabilityFloor = 0.001

// entropyOf computes the Shannon entropy of the nodes named by ids, with
// activities normalized to probabilities and floored at 0.001.
func entropyOf(g Graph, ids []string) float64 {
	var total float64
	for _, id := range ids {
		total += g.Nodes[id].Activity
	}
	if total <= 0 {
		return 0
	}
	var h float64
	for _, id := range ids {
		p := g.Nodes[id].Activity / total
		if p < probabilityFloor {
			p = probabilityFloor
		}
		h -= p * math.Log2(p)
	}
	return h
}
