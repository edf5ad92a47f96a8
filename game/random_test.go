package game

import "testing"

func TestNewSourceDeterministic(t *testing.T) {
	a, b := newSource(99), newSource(99)
	for i := 0; i < 100; i++ {
		if va, vb := a.Uint32(), b.Uint32(); va != vb {
			t.Fatalf("draw %d: %d != %d for the same seed", i, va, vb)
		}
	}
}

func TestNewSourceUsesFullRange(t *testing.T) {
	src := newSource(5)
	var high bool
	for i := 0; i < 1000 && !high; i++ {
		high = src.Uint32() >= 1<<31
	}
	if !high {
		t.Error("no draw used the top bit in 1000 tries")
	}
}
