package main

import (
	"io"
	"log/slog"

	"github.com/pthm-cable/multisim/config"
	"github.com/pthm-cable/multisim/game"
	"github.com/pthm-cable/multisim/telemetry"
)

// runResult summarizes one headless run.
type runResult struct {
	Seed            int64   `csv:"seed"`
	Generations     uint64  `csv:"generations"`
	FinalPopulation int     `csv:"final_population"`
	PeakPopulation  int     `csv:"peak_population"`
	MeanPopulation  float64 `csv:"mean_population"`
	ExtinctAt       uint64  `csv:"extinct_at"` // 0 = never
	SettledAt       uint64  `csv:"settled_at"` // 0 = never
}

// runSeed executes a single headless run for up to maxGenerations.
// Runs stop early once the grid is empty.
func runSeed(cfg *config.Config, seed int64, maxGenerations uint64) (*runResult, error) {
	result := &runResult{Seed: seed}
	var populations []float64

	g, err := game.NewGameWithOptions(game.Options{
		Seed:     seed,
		Headless: true,
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		StatsCallback: func(ws telemetry.WindowStats) {
			populations = append(populations, float64(ws.Population))
			result.PeakPopulation = max(result.PeakPopulation, ws.Population)

			if ws.Population == 0 && result.ExtinctAt == 0 {
				result.ExtinctAt = ws.WindowEnd
			}
			if ws.Population > 0 && ws.Births == 0 && ws.Deaths == 0 && result.SettledAt == 0 {
				result.SettledAt = ws.WindowEnd
			}
		},
	})
	if err != nil {
		return nil, err
	}

	for g.Generation() < maxGenerations && result.ExtinctAt == 0 {
		g.UpdateHeadless()
	}
	// Unload flushes the last partial window through the callback
	g.Unload()

	result.Generations = g.Generation()
	result.FinalPopulation = g.Life().Universe().Population()
	result.MeanPopulation, _, _, _, _ = telemetry.ComputePopulationStats(populations)
	return result, nil
}
