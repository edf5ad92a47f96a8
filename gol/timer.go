package gol

// Accumulator sums frame deltas.
type Accumulator struct {
	elapsed float64
}

// Add advances the accumulator. Negative deltas are ignored.
func (a *Accumulator) Add(dt float64) {
	if dt > 0 {
		a.elapsed += dt
	}
}

// Reached reports whether at least threshold seconds have accumulated.
func (a *Accumulator) Reached(threshold float64) bool {
	return a.elapsed >= threshold
}

// Reset sets the accumulator back to zero.
func (a *Accumulator) Reset() { a.elapsed = 0 }

// Elapsed returns the accumulated seconds.
func (a *Accumulator) Elapsed() float64 { return a.elapsed }

// Debouncer fires once a triggering condition has stopped recurring for a
// settle period. Each Trigger restarts the period.
type Debouncer struct {
	settle  float64
	timer   Accumulator
	pending bool
}

// NewDebouncer creates a debouncer with the given settle period in seconds.
func NewDebouncer(settle float64) *Debouncer {
	return &Debouncer{settle: settle}
}

// Trigger marks the action pending and restarts the settle timer.
func (d *Debouncer) Trigger() {
	d.pending = true
	d.timer.Reset()
}

// Advance moves the settle timer forward and reports whether the pending
// action should run now. Firing clears the pending flag and the timer.
func (d *Debouncer) Advance(dt float64) bool {
	if !d.pending {
		return false
	}
	d.timer.Add(dt)
	if !d.timer.Reached(d.settle) {
		return false
	}
	d.pending = false
	d.timer.Reset()
	return true
}

// Pending reports whether an action is waiting for the settle period.
func (d *Debouncer) Pending() bool { return d.pending }

// Elapsed returns the seconds since the last Trigger while pending.
func (d *Debouncer) Elapsed() float64 { return d.timer.Elapsed() }
