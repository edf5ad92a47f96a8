package gol

import "testing"

func TestAccumulator(t *testing.T) {
	var a Accumulator
	a.Add(0.25)
	a.Add(-1)
	if a.Reached(0.5) {
		t.Error("0.25s should not reach 0.5s")
	}
	a.Add(0.25)
	if !a.Reached(0.5) {
		t.Error("0.5s should reach 0.5s")
	}
	a.Reset()
	if a.Elapsed() != 0 {
		t.Errorf("elapsed after reset = %v, want 0", a.Elapsed())
	}
	if !a.Reached(0) {
		t.Error("a zero threshold is always reached")
	}
}

func TestDebouncerFiresAfterSettle(t *testing.T) {
	d := NewDebouncer(0.25)
	if d.Advance(1) {
		t.Fatal("idle debouncer must not fire")
	}

	d.Trigger()
	if d.Advance(0.1) || d.Advance(0.1) {
		t.Fatal("fired before settle period")
	}
	if !d.Pending() {
		t.Fatal("expected pending")
	}
	if !d.Advance(0.1) {
		t.Fatal("expected fire after 0.3s")
	}
	if d.Pending() || d.Elapsed() != 0 {
		t.Error("firing should clear pending flag and timer")
	}
	if d.Advance(1) {
		t.Error("must fire only once per trigger")
	}
}

func TestDebouncerTriggerRestarts(t *testing.T) {
	d := NewDebouncer(0.25)
	d.Trigger()
	d.Advance(0.2)
	d.Trigger()
	if d.Advance(0.1) {
		t.Error("retrigger should restart the settle period")
	}
	if !d.Advance(0.2) {
		t.Error("expected fire 0.3s after the last trigger")
	}
}
