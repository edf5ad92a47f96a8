package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase is one stage of a host frame.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseRun
	PhaseDraw

	phaseCount
)

var phaseNames = [phaseCount]string{
	PhaseInput: "input",
	PhaseRun:   "run",
	PhaseDraw:  "draw",
}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// Phases returns the frame phases in the order a host runs them.
func Phases() []Phase {
	return []Phase{PhaseInput, PhaseRun, PhaseDraw}
}

type frameTiming struct {
	total  time.Duration
	phases [phaseCount]time.Duration
}

// FrameTimer measures host frames split into phases. Time between BeginFrame
// and the first Enter belongs to no phase. Only the last window frames are
// kept.
type FrameTimer struct {
	ring   []frameTiming
	next   int
	filled int

	cur     frameTiming
	start   time.Time
	mark    time.Time
	phase   Phase
	inFrame bool
	inPhase bool

	now func() time.Time
}

// NewFrameTimer creates a timer averaging over window frames (60 if < 1).
func NewFrameTimer(window int) *FrameTimer {
	if window < 1 {
		window = 60
	}
	return &FrameTimer{
		ring: make([]frameTiming, window),
		now:  time.Now,
	}
}

// BeginFrame starts a new frame, dropping any frame left unfinished.
func (t *FrameTimer) BeginFrame() {
	now := t.now()
	t.cur = frameTiming{}
	t.start, t.mark = now, now
	t.inFrame, t.inPhase = true, false
}

// Enter closes the running phase and starts p. Ignored outside a frame.
func (t *FrameTimer) Enter(p Phase) {
	if !t.inFrame || p < 0 || p >= phaseCount {
		return
	}
	now := t.now()
	t.closePhase(now)
	t.phase, t.mark, t.inPhase = p, now, true
}

// EndFrame closes the frame and adds it to the window.
func (t *FrameTimer) EndFrame() {
	if !t.inFrame {
		return
	}
	now := t.now()
	t.closePhase(now)
	t.cur.total = now.Sub(t.start)

	t.ring[t.next] = t.cur
	t.next = (t.next + 1) % len(t.ring)
	t.filled = min(t.filled+1, len(t.ring))
	t.inFrame, t.inPhase = false, false
}

func (t *FrameTimer) closePhase(now time.Time) {
	if t.inPhase {
		t.cur.phases[t.phase] += now.Sub(t.mark)
	}
}

// FrameStats summarizes the frames in a timer's window.
type FrameStats struct {
	Frames    int
	Mean      time.Duration
	P95       time.Duration
	Max       time.Duration
	PhaseMean [phaseCount]time.Duration
}

// Stats summarizes the current window.
func (t *FrameTimer) Stats() FrameStats {
	s := FrameStats{Frames: t.filled}
	if t.filled == 0 {
		return s
	}

	totals := make([]float64, 0, t.filled)
	var sum time.Duration
	var phaseSum [phaseCount]time.Duration
	for _, f := range t.ring[:t.filled] {
		sum += f.total
		totals = append(totals, float64(f.total))
		for p, d := range f.phases {
			phaseSum[p] += d
		}
	}
	sort.Float64s(totals)

	n := time.Duration(t.filled)
	s.Mean = sum / n
	s.P95 = time.Duration(stat.Quantile(0.95, stat.Empirical, totals, nil))
	s.Max = time.Duration(totals[len(totals)-1])
	for p := range phaseSum {
		s.PhaseMean[p] = phaseSum[p] / n
	}
	return s
}

// Share returns the percentage of the mean frame spent in p.
func (s FrameStats) Share(p Phase) float64 {
	if s.Mean <= 0 || p < 0 || p >= phaseCount {
		return 0
	}
	return float64(s.PhaseMean[p]) / float64(s.Mean) * 100
}

// FPS is the frame rate implied by the mean frame time.
func (s FrameStats) FPS() float64 {
	if s.Mean <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.Mean)
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Int64("mean_us", s.Mean.Microseconds()),
		slog.Int64("p95_us", s.P95.Microseconds()),
		slog.Int64("max_us", s.Max.Microseconds()),
		slog.Float64("fps", s.FPS()),
	}
	for _, p := range Phases() {
		attrs = append(attrs, slog.Float64(p.String()+"_pct", s.Share(p)))
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the frame timing summary.
func (s FrameStats) LogStats() {
	slog.Info("frame timing", "perf", s)
}

// FrameStatsCSV is a flat record of FrameStats for perf.csv.
type FrameStatsCSV struct {
	WindowEnd uint64  `csv:"window_end"`
	Frames    int     `csv:"frames"`
	MeanUS    int64   `csv:"mean_us"`
	P95US     int64   `csv:"p95_us"`
	MaxUS     int64   `csv:"max_us"`
	FPS       float64 `csv:"fps"`
	InputPct  float64 `csv:"input_pct"`
	RunPct    float64 `csv:"run_pct"`
	DrawPct   float64 `csv:"draw_pct"`
}

// ToCSV flattens the stats for the window ending at generation windowEnd.
func (s FrameStats) ToCSV(windowEnd uint64) FrameStatsCSV {
	return FrameStatsCSV{
		WindowEnd: windowEnd,
		Frames:    s.Frames,
		MeanUS:    s.Mean.Microseconds(),
		P95US:     s.P95.Microseconds(),
		MaxUS:     s.Max.Microseconds(),
		FPS:       s.FPS(),
		InputPct:  s.Share(PhaseInput),
		RunPct:    s.Share(PhaseRun),
		DrawPct:   s.Share(PhaseDraw),
	}
}
