// Package gol drives a Game of Life universe from per-frame host input: it
// owns the mode state machine, the simulation cadence and the debounced grid
// resize. It never draws; hosts read its state back to render.
package gol

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/pthm-cable/multisim/config"
	"github.com/pthm-cable/multisim/life"
	"github.com/pthm-cable/multisim/theme"
)

// Options configures a GameOfLife.
type Options struct {
	Scale          int     // pixels per cell
	UpdateInterval float64 // seconds between generations
	IntervalStep   float64 // change applied by KeyPlus / KeyMinus
	ResizeDebounce float64 // seconds the viewport must settle before the grid follows
	InitialMode    Mode
	Theme          theme.Theme

	// Viewport the grid is sized for at construction.
	ViewportW int
	ViewportH int

	// Rand feeds KeyR. Required.
	Rand life.Source

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// OnGeneration, if set, is called after every simulation step.
	OnGeneration func(generation uint64, stats life.StepStats)
}

// DefaultOptions returns the stock settings for an 800x640 viewport.
func DefaultOptions() Options {
	return Options{
		Scale:          16,
		UpdateInterval: 0.5,
		IntervalStep:   0.05,
		ResizeDebounce: 0.2,
		InitialMode:    HelpMode,
		Theme:          theme.Default,
		ViewportW:      800,
		ViewportH:      640,
	}
}

// OptionsFromConfig builds Options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config, viewportW, viewportH int) (Options, error) {
	mode, err := ParseMode(cfg.Life.InitialMode)
	if err != nil {
		return Options{}, fmt.Errorf("life.initial_mode: %w", err)
	}
	th, err := theme.Parse(cfg.Life.Theme)
	if err != nil {
		return Options{}, fmt.Errorf("life.theme: %w", err)
	}
	return Options{
		Scale:          cfg.Life.Scale,
		UpdateInterval: cfg.Life.UpdateInterval,
		IntervalStep:   cfg.Life.IntervalStep,
		ResizeDebounce: cfg.Life.ResizeDebounce,
		InitialMode:    mode,
		Theme:          th,
		ViewportW:      viewportW,
		ViewportH:      viewportH,
	}, nil
}

// GameOfLife is the automaton controller. It is not safe for concurrent use;
// hosts call Run once per frame from their render loop.
type GameOfLife struct {
	universe *life.Universe
	mode     Mode
	theme    theme.Theme
	rng      life.Source
	logger   *slog.Logger

	scale          int
	updateInterval float64
	intervalStep   float64

	cadence Accumulator
	resize  *Debouncer

	viewW, viewH     int
	cursorX, cursorY int
	generation       uint64

	onGeneration func(uint64, life.StepStats)
}

// New creates a controller with a grid covering the initial viewport.
func New(opts Options) (*GameOfLife, error) {
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("scale %d must be positive", opts.Scale)
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("random source is required")
	}
	u, err := life.New(
		life.CellsForPixels(opts.ViewportW, opts.Scale),
		life.CellsForPixels(opts.ViewportH, opts.Scale),
	)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &GameOfLife{
		universe:       u,
		mode:           opts.InitialMode,
		theme:          opts.Theme,
		rng:            opts.Rand,
		logger:         logger,
		scale:          opts.Scale,
		updateInterval: max(opts.UpdateInterval, 0),
		intervalStep:   opts.IntervalStep,
		resize:         NewDebouncer(opts.ResizeDebounce),
		viewW:          opts.ViewportW,
		viewH:          opts.ViewportH,
		onGeneration:   opts.OnGeneration,
	}, nil
}

// Run processes one frame of input.
func (g *GameOfLife) Run(in FrameInput) {
	dt := max(in.DT, 0)
	g.cadence.Add(dt)

	g.handleKey(in.Key)
	g.handleViewport(in.ViewportW, in.ViewportH, dt)
	g.cursorX, g.cursorY = g.CellAt(in.PointerX, in.PointerY)

	switch g.mode {
	case SimulationMode:
		if g.cadence.Reached(g.updateInterval) {
			g.step()
			g.cadence.Reset()
		}
	case DesignMode:
		// The cursor is clamped to the grid, so these writes cannot fail.
		if in.Paint {
			_ = g.universe.Set(g.cursorX, g.cursorY, life.Alive)
		} else if in.Erase {
			_ = g.universe.Set(g.cursorX, g.cursorY, life.Dead)
		}
	}
}

func (g *GameOfLife) handleKey(k Key) {
	switch k {
	case KeyH:
		if g.mode == HelpMode {
			g.mode = DesignMode
		} else {
			g.mode = HelpMode
		}
	case KeyC:
		g.universe.Fill(life.Dead)
	case KeyA:
		g.universe.Fill(life.Alive)
	case KeyI:
		g.universe.Invert()
	case KeyR:
		g.universe.Randomize(g.rng)
	case KeyT:
		g.theme = g.theme.Next()
	case KeyPlus:
		g.updateInterval += g.intervalStep
	case KeyMinus:
		g.updateInterval = max(0, g.updateInterval-g.intervalStep)
	case KeySpace:
		g.mode = g.mode.toggled()
	case KeyEscape, KeyEnter:
		if g.mode == HelpMode {
			g.mode = DesignMode
		}
	}
}

// handleViewport restarts the resize debounce on every size change and
// resizes the grid once the viewport has held still for the settle period.
// The settle period counts from the frame after the change. A zero-sized
// viewport (minimized window) is ignored.
func (g *GameOfLife) handleViewport(w, h int, dt float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if w != g.viewW || h != g.viewH {
		g.viewW, g.viewH = w, h
		g.resize.Trigger()
		return
	}
	if !g.resize.Advance(dt) {
		return
	}

	cw := life.CellsForPixels(g.viewW, g.scale)
	ch := life.CellsForPixels(g.viewH, g.scale)
	if err := g.universe.Resize(cw, ch); err != nil {
		g.logger.Warn("grid resize failed", "width", cw, "height", ch, "error", err)
		return
	}
	g.logger.Debug("grid resized", "width", cw, "height", ch, "viewport_w", g.viewW, "viewport_h", g.viewH)
}

func (g *GameOfLife) step() {
	stats := g.universe.Step()
	g.generation++
	if g.onGeneration != nil {
		g.onGeneration(g.generation, stats)
	}
}

// CellAt maps a pointer position in pixels to grid coordinates, clamped to
// the grid.
func (g *GameOfLife) CellAt(px, py float64) (x, y int) {
	x = clampInt(int(math.Floor(px/float64(g.scale))), 0, g.universe.Width()-1)
	y = clampInt(int(math.Floor(py/float64(g.scale))), 0, g.universe.Height()-1)
	return x, y
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Universe returns a read-only view of the grid.
func (g *GameOfLife) Universe() life.View { return g.universe }

// Mode returns the current mode.
func (g *GameOfLife) Mode() Mode { return g.mode }

// Theme returns the selected theme.
func (g *GameOfLife) Theme() theme.Theme { return g.theme }

// UpdateInterval returns the seconds between generations.
func (g *GameOfLife) UpdateInterval() float64 { return g.updateInterval }

// Cursor returns the hovered cell from the last frame.
func (g *GameOfLife) Cursor() (x, y int) { return g.cursorX, g.cursorY }

// Generation returns the number of simulation steps taken.
func (g *GameOfLife) Generation() uint64 { return g.generation }

// Scale returns the pixels per cell.
func (g *GameOfLife) Scale() int { return g.scale }

// ResizePending reports whether a viewport change is waiting to settle.
func (g *GameOfLife) ResizePending() bool { return g.resize.Pending() }

// SinceStep returns the seconds accumulated toward the next generation.
func (g *GameOfLife) SinceStep() float64 { return g.cadence.Elapsed() }
