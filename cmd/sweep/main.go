// Package main runs headless Game of Life simulations across a range of seeds
// and reports how each random soup evolves.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/multisim/config"
	"github.com/pthm-cable/multisim/telemetry"
)

// formatDuration formats a duration as MM:SS.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 20, "Number of seeds to run")
	firstSeed := flag.Int64("first-seed", 1, "First seed; the rest follow consecutively")
	maxGenerations := flag.Uint64("max-generations", 2000, "Maximum generations per run")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	config.MustInit(*configPath)
	cfg := config.Cfg()
	// Headless runs step once per frame
	cfg.Life.UpdateInterval = 0

	results := make([]*runResult, 0, *seeds)
	finals := make([]float64, 0, *seeds)
	startTime := time.Now()

	for i := 0; i < *seeds; i++ {
		seed := *firstSeed + int64(i)
		res, err := runSeed(cfg, seed, *maxGenerations)
		if err != nil {
			log.Fatalf("seed %d: %v", seed, err)
		}
		results = append(results, res)
		finals = append(finals, float64(res.FinalPopulation))

		elapsed := time.Since(startTime)
		remaining := time.Duration(*seeds-i-1) * (elapsed / time.Duration(i+1))
		fmt.Printf("Seed %d: gens=%d final=%d peak=%d extinct_at=%d settled_at=%d | elapsed: %s, ETA: %s\n",
			seed, res.Generations, res.FinalPopulation, res.PeakPopulation, res.ExtinctAt, res.SettledAt,
			formatDuration(elapsed), formatDuration(remaining))
	}

	outPath := filepath.Join(*outputDir, "sweep.csv")
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("failed to create %s: %v", outPath, err)
	}
	defer f.Close()
	if err := gocsv.MarshalFile(&results, f); err != nil {
		log.Fatalf("failed to write results: %v", err)
	}

	if err := cfg.WriteYAML(filepath.Join(*outputDir, "config.yaml")); err != nil {
		log.Printf("failed to write config: %v", err)
	}

	mean, std, p10, p50, p90 := telemetry.ComputePopulationStats(finals)
	fmt.Printf("\nSweep complete: %d seeds in %s\n", *seeds, formatDuration(time.Since(startTime)))
	fmt.Printf("Final population: mean=%.1f std=%.1f p10=%.0f p50=%.0f p90=%.0f\n", mean, std, p10, p50, p90)
	fmt.Printf("Results saved to: %s\n", outPath)
}
