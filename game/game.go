// Package game hosts the simulations: it owns the window-facing loop, the
// title screen and the telemetry plumbing around the Game of Life controller.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/multisim/config"
	"github.com/pthm-cable/multisim/gol"
	"github.com/pthm-cable/multisim/renderer"
	"github.com/pthm-cable/multisim/telemetry"
	"github.com/pthm-cable/multisim/ui"
)

type scene int

const (
	sceneMenu scene = iota
	sceneLife
)

// Title screen entries
const (
	entryLife = iota + 1
	entryQuit
)

// Options configures game initialization.
type Options struct {
	Seed      int64   // RNG seed for the randomize key
	LogStats  bool    // Log window stats and bookmarks via slog
	OutputDir string  // Directory for CSV logs and config snapshot (empty = disabled)
	Headless  bool    // Run without a window
	DT        float64 // Simulated frame delta for headless runs (0 = use config)

	// Config overrides the global config. Nil uses config.Cfg().
	Config *config.Config

	// StatsCallback is called with every flushed stats window.
	StatsCallback func(telemetry.WindowStats)

	Logger *slog.Logger
}

// Game holds the complete host state.
type Game struct {
	cfg    *config.Config
	logger *slog.Logger
	life   *gol.GameOfLife
	scene  scene
	quit   bool

	// Headless state
	dt    float64
	frame uint64

	// Telemetry
	collector        *telemetry.Collector
	bookmarkDetector *telemetry.BookmarkDetector
	frameTimer       *telemetry.FrameTimer
	outputManager    *telemetry.OutputManager
	statsCallback    func(telemetry.WindowStats)
	logStats         bool

	// Rendering
	lifeRenderer *renderer.LifeRenderer
	hud          *ui.HUD
	perfPanel    *ui.PerfPanel
	selector     *ui.Selector
	screenW      int32
	screenH      int32
}

// NewGameWithOptions creates a game. Graphical games must be created after the
// raylib window is open; they start on the title screen. Headless games start
// directly in the Game of Life.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Game{
		cfg:              cfg,
		logger:           logger,
		dt:               opts.DT,
		collector:        telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(cfg.Telemetry.HistorySize, cfg.Telemetry.BoomMultiplier),
		frameTimer:       telemetry.NewFrameTimer(cfg.Telemetry.PerfWindow),
		statsCallback:    opts.StatsCallback,
		logStats:         opts.LogStats,
	}
	if g.dt <= 0 {
		g.dt = cfg.Headless.DT
	}

	var viewW, viewH int
	if opts.Headless {
		viewW, viewH = cfg.Headless.Width, cfg.Headless.Height
		g.scene = sceneLife
	} else {
		viewW, viewH = screenSize()
		g.screenW, g.screenH = int32(viewW), int32(viewH)
		g.scene = sceneMenu
		g.lifeRenderer = renderer.NewLifeRenderer()
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel()
		g.selector = ui.NewSelector(cfg.Screen.Title,
			ui.SelectorEntry{Label: "Game of Life", ID: entryLife},
			ui.SelectorEntry{Label: "Quit", ID: entryQuit},
		)
	}

	lifeOpts, err := gol.OptionsFromConfig(cfg, viewW, viewH)
	if err != nil {
		return nil, err
	}
	lifeOpts.Rand = newSource(opts.Seed)
	lifeOpts.Logger = logger
	lifeOpts.OnGeneration = g.onGeneration

	g.life, err = gol.New(lifeOpts)
	if err != nil {
		return nil, fmt.Errorf("creating game of life: %w", err)
	}

	g.outputManager, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		g.outputManager.Close()
		return nil, err
	}

	return g, nil
}

// Update processes one graphical frame of input and advances the active scene.
func (g *Game) Update() {
	g.frameTimer.BeginFrame()
	g.frameTimer.Enter(telemetry.PhaseInput)
	g.handleWindowKeys()

	if g.scene != sceneLife {
		return
	}

	in := g.pollInput()
	if in.Key == gol.KeyEscape && g.life.Mode() != gol.HelpMode {
		g.scene = sceneMenu
		return
	}

	g.frameTimer.Enter(telemetry.PhaseRun)
	g.life.Run(in)
}

// Life returns the Game of Life controller.
func (g *Game) Life() *gol.GameOfLife {
	return g.life
}

// Generation returns the number of simulation steps taken.
func (g *Game) Generation() uint64 {
	return g.life.Generation()
}

// ShouldQuit reports whether the player chose Quit on the title screen.
func (g *Game) ShouldQuit() bool {
	return g.quit
}

// Unload flushes the last partial stats window and closes output files.
func (g *Game) Unload() {
	if g.collector.Pending() > 0 {
		g.flushTelemetry()
	}
	if err := g.outputManager.Close(); err != nil {
		g.logger.Error("failed to close output", "error", err)
	}
}
