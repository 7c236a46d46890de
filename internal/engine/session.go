// Session ties the six field subsystems together and advances them each tick.
package engine

import (
	"fmt"
	"math"

	"github.com/talgya/biofield/internal/bridge"
	"github.com/talgya/biofield/internal/chiral"
	"github.com/talgya/biofield/internal/hive"
	"github.com/talgya/biofield/internal/iit"
	"github.com/talgya/biofield/internal/kuramoto"
	"github.com/talgya/biofield/internal/metrics"
	"github.com/talgya/biofield/internal/noise"
	"github.com/talgya/biofield/internal/phi"
	"github.com/talgya/biofield/internal/resonance"
)

// ChiralStableThreshold: stability at or above this reads as the boolean
// chiral gate (the "stable" display band starts here).
const ChiralStableThreshold = 0.3

// MaxEvents bounds the session event log (FIFO eviction).
const MaxEvents = 1000

// Config seeds a session. Zero values fall back to the defaults below.
type Config struct {
	Seed        int64
	Oscillators int
	Workers     []string
	Coupling    float64
	Biofield    metrics.BiofieldState
	Heart       metrics.HeartState
}

// DefaultConfig returns the canonical small session.
func DefaultConfig() Config {
	return Config{
		Seed:        42,
		Oscillators: 12,
		Workers:     []string{"alpha", "beta", "gamma", "delta", "epsilon"},
		Coupling:    0.5,
		Biofield:    metrics.BiofieldNeutral,
		Heart:       metrics.HeartObserving,
	}
}

// Stats is the per-tick aggregate the session maintains.
type Stats struct {
	Tick             uint64  `json:"tick"`
	PopulationR      float64 `json:"population_r"`
	HiveCoherence    float64 `json:"hive_coherence"`
	ResonanceCoh     float64 `json:"resonance_coherence"`
	ChiralStability  float64 `json:"chiral_stability"`
	Phi              float64 `json:"phi"`
	Emergence        float64 `json:"emergence"`
	Coherence        float64 `json:"coherence"` // golden blend of the signals above
	Verified         bool    `json:"verified"`
	DesyncedWorkers  int     `json:"desynced_workers"`
}

// Session holds the complete engine state and wires subsystems together.
// All methods are synchronous; concurrent callers need their own Session.
type Session struct {
	Population kuramoto.System
	ChiralA    chiral.State
	ChiralB    chiral.State
	Hive       hive.QueenState
	Bridge     bridge.State
	Graph      iit.Graph
	Resonance  resonance.State

	Events []hive.SyncEvent
	Stats  Stats
	Tick   uint64
}

// NewSession builds a session from config. Every stochastic choice draws
// from sources derived from cfg.Seed, so equal configs give equal runs.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Oscillators <= 0 {
		cfg.Oscillators = DefaultConfig().Oscillators
	}
	if cfg.Coupling <= 0 {
		cfg.Coupling = DefaultConfig().Coupling
	}
	if len(cfg.Workers) == 0 {
		cfg.Workers = DefaultConfig().Workers
	}

	src := noise.NewSeeded(cfg.Seed)
	pop := kuramoto.NewSystem(cfg.Oscillators, cfg.Coupling, src)
	pop.Noise = noise.Simplex(cfg.Seed+1, 1.0, 0.02)

	// The chiral pair starts at the golden optimum with slightly split
	// friction so the asymmetry shows immediately.
	a, err := chiral.NewState(0, phi.InvPhi, 1.0)
	if err != nil {
		return nil, fmt.Errorf("chiral pair: %w", err)
	}
	b, err := chiral.NewState(math.Pi*phi.InvPhi, phi.InvPhi, phi.Phi)
	if err != nil {
		return nil, fmt.Errorf("chiral pair: %w", err)
	}

	seedCoherence := metrics.SeedCoherence(cfg.Biofield, cfg.Heart)
	res := resonance.NewState()
	res.Coherence = seedCoherence

	s := &Session{
		Population: pop,
		ChiralA:    a,
		ChiralB:    b,
		Hive:       hive.NewQueenSystem(cfg.Workers, src),
		Bridge:     bridge.New(seedCoherence, phi.InvPhi),
		Graph:      buildGraph(pop, cfg.Coupling),
		Resonance:  res,
	}
	s.refreshStats()
	return s, nil
}

// buildGraph creates one consciousness node per oscillator, ring-connected
// with the population coupling as edge weight plus a weaker skip edge.
func buildGraph(pop kuramoto.System, coupling float64) iit.Graph {
	g := iit.NewGraph()
	n := len(pop.Oscillators)
	for i, o := range pop.Oscillators {
		g = iit.AddNode(g, nodeID(i), math.Sin(o.Phase))
	}
	for i := 0; i < n; i++ {
		g = iit.Connect(g, nodeID(i), nodeID((i+1)%n), coupling)
		g = iit.Connect(g, nodeID(i), nodeID((i+2)%n), coupling*phi.InvPhi2)
	}
	return g
}

func nodeID(i int) string { return fmt.Sprintf("osc-%d", i) }

// Advance runs one engine tick of size dt: every subsystem steps once and
// the cross-couplings are rethreaded — hive coherence tunes the resonance
// constraint, the population mean phase drives the bridge operator, and the
// chiral protection feeds the verification gate.
func (s *Session) Advance(dt float64) Stats {
	s.Tick++

	s.Population = kuramoto.Step(s.Population, dt)
	op := kuramoto.ComputeOrderParameter(s.Population.Oscillators)

	s.ChiralA, s.ChiralB = chiral.Step(s.ChiralA, s.ChiralB, dt)
	stability := chiral.Protection(s.ChiralA)
	s.ChiralA = chiral.WithStability(s.ChiralA, stability)

	var report hive.CycleReport
	s.Hive, report = hive.SyncCycle(s.Hive, dt)

	s.Bridge = bridge.ApplyBridge(s.Bridge, op.MeanPhase, 0)

	// Node activities track the oscillator phases; edge weights are static.
	for i, o := range s.Population.Oscillators {
		s.Graph = iit.AddNode(s.Graph, nodeID(i), math.Sin(o.Phase))
	}

	drive := func(x float64) float64 { return report.Coherence - x }
	s.Resonance = resonance.Step(s.Resonance, drive, dt)
	s.Resonance = resonance.TuneConstraint(s.Resonance, report.Coherence, dt)

	s.refreshStats()
	return s.Stats
}

// AddWorker and RemoveWorker mutate the hive roster, recording the emitted
// event in the bounded session log.
func (s *Session) AddWorker(id string) hive.SyncEvent {
	var ev hive.SyncEvent
	s.Hive, ev = hive.AddWorker(s.Hive, hive.NewWorker(id, s.Hive.Phase))
	s.pushEvent(ev)
	return ev
}

func (s *Session) RemoveWorker(id string) hive.SyncEvent {
	var ev hive.SyncEvent
	s.Hive, ev = hive.RemoveWorker(s.Hive, id)
	s.pushEvent(ev)
	return ev
}

func (s *Session) pushEvent(ev hive.SyncEvent) {
	s.Events = append(s.Events, ev)
	if len(s.Events) > MaxEvents {
		s.Events = s.Events[len(s.Events)-MaxEvents:]
	}
}

func (s *Session) refreshStats() {
	op := kuramoto.ComputeOrderParameter(s.Population.Oscillators)
	hiveCoherence := hive.MeasureHiveCoherence(s.Hive)
	stability := s.ChiralA.Stability
	phiValue := iit.ComputePhi(s.Graph)

	coherence := phi.Clamp01(phi.Blend4(hiveCoherence, op.R, s.Resonance.Coherence, stability))

	s.Stats = Stats{
		Tick:            s.Tick,
		PopulationR:     op.R,
		HiveCoherence:   hiveCoherence,
		ResonanceCoh:    s.Resonance.Coherence,
		ChiralStability: stability,
		Phi:             phiValue,
		Emergence:       s.Bridge.EmergenceMagnitude,
		Coherence:       coherence,
		Verified: iit.IsVerified(phiValue, coherence,
			stability >= ChiralStableThreshold),
		DesyncedWorkers: len(hive.DesyncedWorkers(s.Hive, 0)),
	}
}

// Snapshot assembles the polled output contract from the current stats.
func (s *Session) Snapshot() metrics.Snapshot {
	return metrics.NewSnapshot(s.Stats.Phi, s.Stats.Coherence,
		s.Stats.ChiralStability, s.Stats.Verified)
}
