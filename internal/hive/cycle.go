package hive

import "github.com/talgya/biofield/internal/phi"

// CycleReport summarizes one sync cycle.
type CycleReport struct {
	Coherence    float64 `json:"coherence"`
	Desynced     int     `json:"desynced"`
	Synchronized bool    `json:"synchronized"`
}

// SyncCycle is the single externally invoked per-tick operation: the queen
// broadcasts (advances her phase), every worker aligns, and coherence is
// recomputed and appended to the bounded history.
func SyncCycle(q QueenState, dt float64) (QueenState, CycleReport) {
	q.Time += dt
	q.Phase = phi.NormalizeAngle(q.Phase + q.BroadcastFrequency*dt)

	workers := make([]WorkerState, len(q.Workers))
	for i, w := range q.Workers {
		workers[i] = AlignWorker(w, q.Phase, q.Time)
	}
	q.Workers = workers

	q.Coherence = MeasureHiveCoherence(q)
	q.CoherenceHistory = pushCoherence(q.CoherenceHistory, q.Coherence)

	report := CycleReport{
		Coherence:    q.Coherence,
		Desynced:     len(DesyncedWorkers(q, 0)),
		Synchronized: q.Coherence >= q.CoherenceThreshold,
	}
	return q, report
}

// Trend classifies the recent direction of hive coherence.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDegrading Trend = "degrading"
	TrendStable    Trend = "stable"
)

// trendWindow and trendBand parameterize CoherenceTrend.
const (
	trendWindow = 5
	trendBand   = 0.05
)

// CoherenceTrend compares the mean of the most recent five history samples
// against the mean of the samples preceding them. Fewer than five samples,
// or no preceding samples, reads as stable.
func CoherenceTrend(q QueenState) Trend {
	h := q.CoherenceHistory
	if len(h) < trendWindow {
		return TrendStable
	}
	recent := h[len(h)-trendWindow:]
	prevStart := len(h) - 2*trendWindow
	if prevStart < 0 {
		prevStart = 0
	}
	previous := h[prevStart : len(h)-trendWindow]
	if len(previous) == 0 {
		return TrendStable
	}

	diff := mean(recent) - mean(previous)
	switch {
	case diff > trendBand:
		return TrendImproving
	case diff < -trendBand:
		return TrendDegrading
	default:
		return TrendStable
	}
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
