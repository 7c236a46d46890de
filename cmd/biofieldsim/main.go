// Command biofieldsim runs the biofield coherence engine as a standalone
// demo: one session, paced at 60 ticks per second, reporting its metrics
// snapshot once per simulated second.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/talgya/biofield/internal/engine"
	"github.com/talgya/biofield/internal/metrics"
	"github.com/talgya/biofield/internal/phi"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Biofield Coherence Engine")
	slog.Info("golden constants",
		"phi", phi.Phi,
		"inv_phi", fmt.Sprintf("%.5f", phi.InvPhi),
		"golden_angle", fmt.Sprintf("%.5f", phi.GoldenAngle),
		"totality", fmt.Sprintf("%.5f", phi.Totality),
	)

	cfg := engine.DefaultConfig()
	if v := os.Getenv("BIOFIELD_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		} else {
			slog.Warn("BIOFIELD_SEED not a valid integer, using default", "value", v)
		}
	}
	if v := os.Getenv("BIOFIELD_OSCILLATORS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Oscillators = n
		} else {
			slog.Warn("BIOFIELD_OSCILLATORS invalid, using default", "value", v)
		}
	}
	if v := os.Getenv("BIOFIELD_WORKERS"); v != "" {
		cfg.Workers = strings.Split(v, ",")
	}
	if v := os.Getenv("BIOFIELD_STATE"); v != "" {
		cfg.Biofield = metrics.BiofieldState(v)
	}
	if v := os.Getenv("BIOFIELD_HEART"); v != "" {
		cfg.Heart = metrics.HeartState(v)
	}

	session, err := engine.NewSession(cfg)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		os.Exit(1)
	}

	slog.Info("session ready",
		"seed", cfg.Seed,
		"oscillators", cfg.Oscillators,
		"workers", len(cfg.Workers),
		"seed_coherence", fmt.Sprintf("%.3f", metrics.SeedCoherence(cfg.Biofield, cfg.Heart)),
	)

	loop := engine.NewLoop(session)
	loop.OnReport = func(stats engine.Stats) {
		snap := session.Snapshot()
		slog.Info("field report",
			"tick", stats.Tick,
			"phi", fmt.Sprintf("%.4f", snap.Phi),
			"coherence_pct", fmt.Sprintf("%.1f", snap.CoherencePercent),
			"chiral_status", snap.ChiralStatus,
			"verification_eligible", snap.VerificationEligible,
			"population_r", fmt.Sprintf("%.3f", stats.PopulationR),
			"hive_coherence", fmt.Sprintf("%.3f", stats.HiveCoherence),
			"emergence", fmt.Sprintf("%.6f", stats.Emergence),
			"desynced_workers", stats.DesyncedWorkers,
		)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		loop.Stop()
	}()

	fmt.Printf("\nBiofield session alive: %d oscillators, %d workers.\n",
		cfg.Oscillators, len(cfg.Workers))
	fmt.Println("Starting engine... (Ctrl+C to stop)")

	loop.Run()

	fmt.Printf("Engine stopped after %s ticks.\n",
		humanize.Comma(int64(session.Tick)))
}
