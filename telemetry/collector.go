package telemetry

import "github.com/pthm-cable/multisim/life"

// Collector accumulates generation records within windows and produces WindowStats.
type Collector struct {
	windowSize int

	// Current window tracking
	windowStart uint64
	births      int
	deaths      int
	populations []float64
	last        GenerationRecord
}

// NewCollector creates a collector that flushes every windowSize generations.
func NewCollector(windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 1
	}
	return &Collector{
		windowSize:  windowSize,
		populations: make([]float64, 0, windowSize),
	}
}

// Record adds one simulation step to the current window and returns its record.
func (c *Collector) Record(generation uint64, stats life.StepStats, width, height int) GenerationRecord {
	rec := GenerationRecord{
		Generation: generation,
		Width:      width,
		Height:     height,
		Population: stats.Population,
		Births:     stats.Births,
		Deaths:     stats.Deaths,
	}
	if cells := width * height; cells > 0 {
		rec.Density = float64(stats.Population) / float64(cells)
	}

	if len(c.populations) == 0 {
		c.windowStart = generation
	}
	c.births += stats.Births
	c.deaths += stats.Deaths
	c.populations = append(c.populations, float64(stats.Population))
	c.last = rec
	return rec
}

// ShouldFlush returns true once the window holds windowSize generations.
func (c *Collector) ShouldFlush() bool {
	return len(c.populations) >= c.windowSize
}

// Pending returns the number of generations recorded since the last flush.
func (c *Collector) Pending() int {
	return len(c.populations)
}

// Flush produces a WindowStats and resets counters for the next window.
// updateInterval is the controller's current cadence, recorded for context.
func (c *Collector) Flush(updateInterval float64) WindowStats {
	mean, std, p10, p50, p90 := ComputePopulationStats(c.populations)

	stats := WindowStats{
		WindowStart:    c.windowStart,
		WindowEnd:      c.last.Generation,
		Generations:    len(c.populations),
		Width:          c.last.Width,
		Height:         c.last.Height,
		Population:     c.last.Population,
		Density:        c.last.Density,
		Births:         c.births,
		Deaths:         c.deaths,
		PopulationMean: mean,
		PopulationStd:  std,
		PopulationP10:  p10,
		PopulationP50:  p50,
		PopulationP90:  p90,
		UpdateInterval: updateInterval,
	}

	c.births = 0
	c.deaths = 0
	c.populations = c.populations[:0]

	return stats
}
