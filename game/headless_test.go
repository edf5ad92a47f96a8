package game

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/multisim/config"
	"github.com/pthm-cable/multisim/gol"
	"github.com/pthm-cable/multisim/telemetry"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	// Step every frame to keep the tests short.
	cfg.Life.UpdateInterval = 0
	cfg.Telemetry.StatsWindow = 10
	return cfg
}

func newHeadless(t *testing.T, opts Options) *Game {
	t.Helper()
	opts.Headless = true
	if opts.Config == nil {
		opts.Config = testConfig(t)
	}
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	g, err := NewGameWithOptions(opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func runUntil(t *testing.T, g *Game, generations uint64) {
	t.Helper()
	for frames := 0; g.Generation() < generations; frames++ {
		if frames > 10000 {
			t.Fatalf("stuck at generation %d", g.Generation())
		}
		g.UpdateHeadless()
	}
}

func TestHeadlessScriptStartsSimulation(t *testing.T) {
	g := newHeadless(t, Options{Seed: 7})

	if g.Life().Mode() != gol.HelpMode {
		t.Fatalf("initial mode = %v, want help", g.Life().Mode())
	}
	g.UpdateHeadless()
	if g.Life().Universe().Population() == 0 {
		t.Error("first frame should randomize the grid")
	}
	g.UpdateHeadless()
	g.UpdateHeadless()
	if g.Life().Mode() != gol.SimulationMode {
		t.Errorf("mode after script = %v, want simulation", g.Life().Mode())
	}

	runUntil(t, g, 5)
	if g.Generation() != 5 {
		t.Errorf("generation = %d, want 5", g.Generation())
	}
}

func TestHeadlessGridMatchesScreenGrid(t *testing.T) {
	cfg := testConfig(t)
	g := newHeadless(t, Options{Seed: 1, Config: cfg})

	u := g.Life().Universe()
	if u.Width() != cfg.Derived.GridW || u.Height() != cfg.Derived.GridH {
		t.Errorf("grid = %dx%d, want the screen grid %dx%d", u.Width(), u.Height(), cfg.Derived.GridW, cfg.Derived.GridH)
	}
}

func TestHeadlessDeterministic(t *testing.T) {
	a := newHeadless(t, Options{Seed: 42})
	b := newHeadless(t, Options{Seed: 42})
	runUntil(t, a, 20)
	runUntil(t, b, 20)

	sa, sb := a.Life().Universe(), b.Life().Universe()
	if sa.Population() != sb.Population() {
		t.Fatalf("populations differ: %d vs %d", sa.Population(), sb.Population())
	}
	for y := 0; y < sa.Height(); y++ {
		for x := 0; x < sa.Width(); x++ {
			if sa.Get(x, y) != sb.Get(x, y) {
				t.Fatalf("cell (%d,%d) differs between runs with the same seed", x, y)
			}
		}
	}
}

func TestHeadlessStatsCallback(t *testing.T) {
	var windows []telemetry.WindowStats
	g := newHeadless(t, Options{
		Seed: 3,
		StatsCallback: func(ws telemetry.WindowStats) {
			windows = append(windows, ws)
		},
	})
	runUntil(t, g, 30)

	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}
	for i, ws := range windows {
		if ws.Generations != 10 {
			t.Errorf("window %d covers %d generations, want 10", i, ws.Generations)
		}
		if want := uint64((i + 1) * 10); ws.WindowEnd != want {
			t.Errorf("window %d ends at %d, want %d", i, ws.WindowEnd, want)
		}
	}
}

func TestHeadlessWritesOutput(t *testing.T) {
	dir := t.TempDir()
	g, err := NewGameWithOptions(Options{
		Seed:      1,
		Headless:  true,
		OutputDir: dir,
		Config:    testConfig(t),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatal(err)
	}
	runUntil(t, g, 15)
	g.Unload()

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(strings.TrimSpace(string(data)), "\n"); n != 15 {
		t.Errorf("generations.csv has %d records, want 15", n)
	}

	// One full window plus the partial window flushed by Unload.
	data, err = os.ReadFile(filepath.Join(dir, "windows.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(strings.TrimSpace(string(data)), "\n"); n != 2 {
		t.Errorf("windows.csv has %d records, want 2", n)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
}

func TestHeadlessRejectsBadTheme(t *testing.T) {
	cfg := testConfig(t)
	cfg.Life.Theme = "solarized"
	_, err := NewGameWithOptions(Options{Headless: true, Config: cfg})
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
}
