package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/biofield/internal/hive"
	"github.com/talgya/biofield/internal/metrics"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(DefaultConfig())
	require.NoError(t, err)
	return s
}

func TestNewSessionSeedsFromTables(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Biofield = metrics.BiofieldFocused
	cfg.Heart = metrics.HeartCreating
	s, err := NewSession(cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.90, s.Resonance.Coherence, 1e-12)
	assert.Len(t, s.Hive.Workers, len(cfg.Workers))
	assert.Equal(t, cfg.Oscillators, len(s.Population.Oscillators))
	assert.Equal(t, cfg.Oscillators, s.Graph.Size)
}

func TestSessionDeterministic(t *testing.T) {
	t.Parallel()
	a := newTestSession(t)
	b := newTestSession(t)
	for i := 0; i < 30; i++ {
		a.Advance(DefaultDt)
		b.Advance(DefaultDt)
	}
	assert.Equal(t, a.Stats, b.Stats, "equal seeds must give equal runs")
	assert.Equal(t, a.Population.Oscillators, b.Population.Oscillators)
}

func TestAdvanceUpdatesEverySubsystem(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	before := *s
	stats := s.Advance(DefaultDt)

	assert.Equal(t, uint64(1), stats.Tick)
	assert.NotEqual(t, before.Population.Time, s.Population.Time)
	assert.NotEqual(t, before.ChiralA.Phase, s.ChiralA.Phase)
	assert.NotEqual(t, before.Hive.Time, s.Hive.Time)
	assert.Len(t, s.Hive.CoherenceHistory, 1)

	assert.GreaterOrEqual(t, stats.Coherence, 0.0)
	assert.LessOrEqual(t, stats.Coherence, 1.0)
	assert.GreaterOrEqual(t, stats.Phi, 0.0)
	assert.GreaterOrEqual(t, stats.ChiralStability, 0.0)
	assert.LessOrEqual(t, stats.ChiralStability, 1.0)
}

func TestSessionWorkerRoster(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	n := len(s.Hive.Workers)

	ev := s.AddWorker("zeta")
	assert.Equal(t, hive.EventWorkerAdded, ev.Type)
	assert.Len(t, s.Hive.Workers, n+1)

	ev = s.RemoveWorker("zeta")
	assert.Equal(t, hive.EventWorkerRemoved, ev.Type)
	assert.Len(t, s.Hive.Workers, n)

	ev = s.RemoveWorker("nobody")
	assert.Equal(t, hive.EventWorkerNotFound, ev.Type)
	assert.Len(t, s.Hive.Workers, n)
	assert.Len(t, s.Events, 3, "every roster change lands in the event log")
}

func TestSnapshotContract(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	for i := 0; i < 10; i++ {
		s.Advance(DefaultDt)
	}
	snap := s.Snapshot()
	assert.Equal(t, s.Stats.Phi, snap.Phi)
	assert.InDelta(t, s.Stats.Coherence*100, snap.CoherencePercent, 1e-9)
	assert.NotEmpty(t, snap.ChiralStatus)
	assert.Equal(t, s.Stats.Verified, snap.VerificationEligible)
}

func TestLoopStops(t *testing.T) {
	t.Parallel()
	l := NewLoop(newTestSession(t))
	l.Interval = 0 // run flat out
	ticks := 0
	l.OnTick = func(Stats) {
		ticks++
		if ticks >= 5 {
			l.Stop()
		}
	}
	l.Run()
	assert.GreaterOrEqual(t, ticks, 5)
	assert.False(t, l.Running)
}
