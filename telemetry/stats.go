// Package telemetry tracks Game of Life population dynamics: per-generation
// records, windowed statistics, notable-event bookmarks and step timings.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GenerationRecord is one simulation step.
type GenerationRecord struct {
	Generation uint64  `csv:"generation"`
	Width      int     `csv:"width"`
	Height     int     `csv:"height"`
	Population int     `csv:"population"`
	Births     int     `csv:"births"`
	Deaths     int     `csv:"deaths"`
	Density    float64 `csv:"density"`
}

// WindowStats holds aggregated statistics over a window of generations.
type WindowStats struct {
	WindowStart uint64 `csv:"-"`
	WindowEnd   uint64 `csv:"window_end"`
	Generations int    `csv:"generations"`

	// Grid size at window end
	Width  int `csv:"width"`
	Height int `csv:"height"`

	// Population at window end
	Population int     `csv:"population"`
	Density    float64 `csv:"density"`

	// Events during window
	Births int `csv:"births"`
	Deaths int `csv:"deaths"`

	// Population distribution over the window
	PopulationMean float64 `csv:"population_mean"`
	PopulationStd  float64 `csv:"population_std"`
	PopulationP10  float64 `csv:"population_p10"`
	PopulationP50  float64 `csv:"population_p50"`
	PopulationP90  float64 `csv:"population_p90"`

	// Update interval at window end, in seconds
	UpdateInterval float64 `csv:"update_interval"`
}

// ComputePopulationStats calculates mean, standard deviation and percentiles
// of the given population samples.
func ComputePopulationStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	if len(values) == 1 {
		mean = values[0]
	} else {
		mean, std = stat.PopMeanStdDev(values, nil)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.LinInterp, sorted, nil)
	p50 = stat.Quantile(0.50, stat.LinInterp, sorted, nil)
	p90 = stat.Quantile(0.90, stat.LinInterp, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStart),
		slog.Uint64("window_end", s.WindowEnd),
		slog.Int("generations", s.Generations),
		slog.Int("width", s.Width),
		slog.Int("height", s.Height),
		slog.Int("population", s.Population),
		slog.Float64("density", s.Density),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Float64("population_mean", s.PopulationMean),
		slog.Float64("population_std", s.PopulationStd),
		slog.Float64("population_p10", s.PopulationP10),
		slog.Float64("population_p50", s.PopulationP50),
		slog.Float64("population_p90", s.PopulationP90),
		slog.Float64("update_interval", s.UpdateInterval),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
