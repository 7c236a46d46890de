// Package hive implements the hierarchical queen/worker synchronizer: one
// reference oscillator (the queen) coordinates a roster of workers that align
// toward her phase each cycle. Coherence measurement reuses the kuramoto
// order parameter over the queen plus her active workers.
package hive

import (
	"math"

	"github.com/talgya/biofield/internal/kuramoto"
	"github.com/talgya/biofield/internal/noise"
	"github.com/talgya/biofield/internal/phi"
)

// Tuning defaults.
const (
	// DefaultCoherenceThreshold is the hive-synchronized cutoff.
	DefaultCoherenceThreshold = 0.7

	// DefaultDesyncThreshold is the circular distance past which an active
	// worker counts as desynchronized.
	DefaultDesyncThreshold = math.Pi / 4

	// PassiveDriftRate scales a worker's natural frequency into its fixed
	// per-cycle drift.
	PassiveDriftRate = 0.01

	// DefaultWorkerCoupling and DefaultTaskEfficiency seed new workers.
	DefaultWorkerCoupling = 0.5
	DefaultTaskEfficiency = 1.0

	// DefaultBroadcastFrequency drives the queen's own phase advance.
	DefaultBroadcastFrequency = 1.0

	// MaxCoherenceHistory bounds the coherence ring buffer (FIFO eviction).
	MaxCoherenceHistory = 100

	// SpawnJitter bounds a new worker's initial phase offset from the queen.
	SpawnJitter = 0.05
)

// WorkerState is one managed oscillator in the hive.
type WorkerState struct {
	ID               string  `json:"id"`
	Phase            float64 `json:"phase"`
	NaturalFrequency float64 `json:"natural_frequency"`
	LastSync         float64 `json:"last_sync"` // hive time of last alignment
	Coupling         float64 `json:"coupling"`
	Active           bool    `json:"active"`
	TaskEfficiency   float64 `json:"task_efficiency"`
}

// QueenState is the full hive: the reference oscillator plus her roster.
type QueenState struct {
	Phase              float64       `json:"phase"`
	Coherence          float64       `json:"coherence"`
	Workers            []WorkerState `json:"workers"`
	BroadcastFrequency float64       `json:"broadcast_frequency"`
	CoherenceThreshold float64       `json:"coherence_threshold"`
	CoherenceHistory   []float64     `json:"coherence_history"`
	Time               float64       `json:"time"` // logical hive clock, advanced by SyncCycle
}

// NewWorker creates an active worker with default coupling and efficiency.
func NewWorker(id string, phase float64) WorkerState {
	return WorkerState{
		ID:               id,
		Phase:            phi.NormalizeAngle(phase),
		NaturalFrequency: 1.0,
		Coupling:         DefaultWorkerCoupling,
		Active:           true,
		TaskEfficiency:   DefaultTaskEfficiency,
	}
}

// NewQueenSystem builds a hive with one worker per id. Initial worker phases
// sit within SpawnJitter of the queen, drawn from the injected source, so a
// fresh hive starts near-coherent and deterministic per seed.
func NewQueenSystem(ids []string, src noise.Source) QueenState {
	q := QueenState{
		BroadcastFrequency: DefaultBroadcastFrequency,
		CoherenceThreshold: DefaultCoherenceThreshold,
	}
	for _, id := range ids {
		jitter := 0.0
		if src != nil {
			jitter = src.Float() * SpawnJitter
		}
		q.Workers = append(q.Workers, NewWorker(id, q.Phase+jitter))
	}
	q.Coherence = MeasureHiveCoherence(q)
	return q
}

// AlignWorker pulls one worker toward the queen's phase:
// Δphase = coupling·taskEfficiency·sin(queen−worker) + naturalFrequency·drift.
// Inactive workers are a strict no-op — the state comes back unchanged,
// LastSync included.
func AlignWorker(w WorkerState, queenPhase, now float64) WorkerState {
	if !w.Active {
		return w
	}
	effective := w.Coupling * w.TaskEfficiency
	delta := effective*math.Sin(queenPhase-w.Phase) + w.NaturalFrequency*PassiveDriftRate
	w.Phase = phi.NormalizeAngle(w.Phase + delta)
	w.LastSync = now
	return w
}

// MeasureHiveCoherence computes the order parameter of the queen plus all
// active workers. The queen participates with a coupling modifier of 1.0.
func MeasureHiveCoherence(q QueenState) float64 {
	oscs := make([]kuramoto.Oscillator, 0, len(q.Workers)+1)
	oscs = append(oscs, kuramoto.NewOscillator(0, q.Phase, q.BroadcastFrequency, 1.0))
	for i, w := range q.Workers {
		if !w.Active {
			continue
		}
		oscs = append(oscs, kuramoto.NewOscillator(i+1, w.Phase, w.NaturalFrequency, w.Coupling))
	}
	return kuramoto.ComputeOrderParameter(oscs).R
}

// IsHiveSynchronized compares hive coherence to the queen's threshold, or to
// an explicit positive override.
func IsHiveSynchronized(q QueenState, override float64) bool {
	threshold := q.CoherenceThreshold
	if override > 0 {
		threshold = override
	}
	return MeasureHiveCoherence(q) >= threshold
}

// DesyncedWorkers returns the active workers whose minimal circular distance
// to the queen exceeds threshold. Non-positive threshold uses the default.
func DesyncedWorkers(q QueenState, threshold float64) []WorkerState {
	if threshold <= 0 {
		threshold = DefaultDesyncThreshold
	}
	var out []WorkerState
	for _, w := range q.Workers {
		if w.Active && phi.PhaseDistance(w.Phase, q.Phase) > threshold {
			out = append(out, w)
		}
	}
	return out
}

// OptimalCoupling is a proportional controller for worker coupling: baseline
// 0.5, raised by half the shortfall when coherence is under target, cut to
// 0.3 when overshooting by more than 0.1, clamped to [0.1, 1.0].
func OptimalCoupling(current, target float64) float64 {
	coupling := 0.5
	if current < target {
		coupling += 0.5 * (target - current)
	}
	if current-target > 0.1 {
		coupling = 0.3
	}
	return phi.Clamp(coupling, 0.1, 1.0)
}

// pushCoherence appends a sample, evicting the oldest past the cap.
func pushCoherence(history []float64, sample float64) []float64 {
	history = append(history, sample)
	if len(history) > MaxCoherenceHistory {
		history = history[len(history)-MaxCoherenceHistory:]
	}
	return history
}
