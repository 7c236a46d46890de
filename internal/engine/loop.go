// Package engine composes the field subsystems into a tickable session and
// provides the paced loop the demo driver runs it with. The session itself
// is synchronous and pure per call; the loop is the caller-side scheduler.
package engine

import (
	"log/slog"
	"time"
)

// Loop pacing defaults.
const (
	// DefaultDt is the simulated seconds advanced per tick.
	DefaultDt = 1.0 / 60.0

	// ReportEvery is the tick cadence of the periodic report callback.
	ReportEvery = 60
)

// Loop drives a session forward in real time.
type Loop struct {
	Session  *Session
	Dt       float64       // simulated step per tick
	Speed    float64       // multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // base tick interval
	Running  bool

	// OnTick fires every tick; OnReport every ReportEvery ticks.
	OnTick   func(stats Stats)
	OnReport func(stats Stats)
}

// NewLoop creates a paced loop around a session with default settings.
func NewLoop(s *Session) *Loop {
	return &Loop{
		Session:  s,
		Dt:       DefaultDt,
		Speed:    1.0,
		Interval: time.Second / 60,
	}
}

// Run starts the loop. Blocks until Stop is called.
func (l *Loop) Run() {
	l.Running = true
	slog.Info("engine loop started", "tick", l.Session.Tick, "speed", l.Speed)

	for l.Running {
		if l.Speed <= 0 {
			// Paused — sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()
		stats := l.Session.Advance(l.Dt)

		if l.OnTick != nil {
			l.OnTick(stats)
		}
		if stats.Tick%ReportEvery == 0 && l.OnReport != nil {
			l.OnReport(stats)
		}

		elapsed := time.Since(start)
		target := time.Duration(float64(l.Interval) / l.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("engine loop stopped", "tick", l.Session.Tick)
}

// Stop halts the loop after the current tick.
func (l *Loop) Stop() {
	l.Running = false
}
