package game

import "github.com/pthm-cable/multisim/life"

// onGeneration records each simulation step and flushes full stats windows.
func (g *Game) onGeneration(generation uint64, stats life.StepStats) {
	grid := g.life.Universe()
	rec := g.collector.Record(generation, stats, grid.Width(), grid.Height())

	if err := g.outputManager.WriteGeneration(rec); err != nil {
		g.logger.Error("failed to write generation", "error", err)
	}

	if g.collector.ShouldFlush() {
		g.flushTelemetry()
	}
}

// flushTelemetry closes the current stats window and handles bookmarks.
func (g *Game) flushTelemetry() {
	stats := g.collector.Flush(g.life.UpdateInterval())
	perfStats := g.frameTimer.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteWindow(stats); err != nil {
		g.logger.Error("failed to write window stats", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEnd); err != nil {
		g.logger.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			g.logger.Error("failed to write bookmark", "error", err)
		}
	}
}
