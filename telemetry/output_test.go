package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/multisim/config"
)

func TestNewOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// All methods are nil-safe.
	if err := om.WriteGeneration(GenerationRecord{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for g := uint64(1); g <= 3; g++ {
		if err := om.WriteGeneration(GenerationRecord{Generation: g, Width: 4, Height: 4, Population: int(g)}); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WriteWindow(WindowStats{WindowEnd: 3, Population: 3}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkStillLife, Generation: 3, Description: "settled"}); err != nil {
		t.Fatal(err)
	}
	if err := om.WritePerf(FrameStats{}, 3); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("generations.csv has %d lines, want header + 3:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "generation,width,height,population") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Count(string(data), "generation,") != 1 {
		t.Error("header should be written once")
	}

	windows, err := os.ReadFile(filepath.Join(dir, "windows.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(windows), "WindowStart") {
		t.Error("fields tagged csv:\"-\" must not be exported")
	}

	for _, name := range []string{"bookmarks.csv", "perf.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
