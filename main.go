package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/multisim/config"
	"github.com/pthm-cable/multisim/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run the Game of Life without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxGenerations := flag.Uint64("max-generations", 0, "Stop after N generations (0 = unlimited)")
	dt := flag.Float64("dt", 0, "Simulated frame delta in seconds for headless runs (0 = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Headless:  *headless,
		DT:        *dt,
		Logger:    logger,
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		g, err := game.NewGameWithOptions(opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"max_generations", *maxGenerations,
			"grid_w", g.Life().Universe().Width(),
			"grid_h", g.Life().Universe().Height(),
			"screen_grid_w", cfg.Derived.GridW,
			"screen_grid_h", cfg.Derived.GridH,
		)

		for {
			g.UpdateHeadless()

			if *maxGenerations > 0 && g.Generation() >= *maxGenerations {
				slog.Info("max generations reached", "generation", g.Generation())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	// Escape belongs to the scenes, not the window
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		return
	}
	defer g.Unload()

	slog.Info("starting",
		"seed", rngSeed,
		"grid_w", cfg.Derived.GridW,
		"grid_h", cfg.Derived.GridH,
		"scale", cfg.Life.Scale,
	)

	for !rl.WindowShouldClose() && !g.ShouldQuit() {
		g.Update()
		g.Draw()

		if *maxGenerations > 0 && g.Generation() >= *maxGenerations {
			break
		}
	}
}
