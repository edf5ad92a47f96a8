package life

import (
	"errors"
	"testing"
)

// seqSource replays a fixed sequence of values.
type seqSource struct {
	vals []uint32
	i    int
}

func (s *seqSource) Uint32() uint32 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func mustNew(t *testing.T, w, h int) *Universe {
	t.Helper()
	u, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return u
}

func mustSet(t *testing.T, u *Universe, x, y int) {
	t.Helper()
	if err := u.Set(x, y, Alive); err != nil {
		t.Fatalf("Set(%d, %d): %v", x, y, err)
	}
}

// paint fills the universe with a deterministic checker-ish pattern.
func paint(t *testing.T, u *Universe) {
	t.Helper()
	for y := 0; y < u.Height(); y++ {
		for x := 0; x < u.Width(); x++ {
			if (x*7+y*3)%5 < 2 {
				mustSet(t, u, x, y)
			}
		}
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", tt.w, tt.h, err)
			}
		})
	}
}

func TestNewAllDead(t *testing.T) {
	u := mustNew(t, 7, 4)
	if u.Population() != 0 {
		t.Errorf("population = %d, want 0", u.Population())
	}
	if got := len(u.Snapshot()); got != 28 {
		t.Errorf("snapshot length = %d, want 28", got)
	}
}

func TestGetSetBounds(t *testing.T) {
	u := mustNew(t, 4, 3)
	mustSet(t, u, 3, 2)
	if u.Get(3, 2) != Alive {
		t.Error("expected (3,2) alive")
	}

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if u.Get(c[0], c[1]) != Dead {
			t.Errorf("Get(%d,%d) outside grid should be Dead", c[0], c[1])
		}
		if err := u.Set(c[0], c[1], Alive); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d,%d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if u.Population() != 1 {
		t.Errorf("population = %d, want 1 after rejected writes", u.Population())
	}
}

func TestInvertInvolution(t *testing.T) {
	u := mustNew(t, 9, 6)
	paint(t, u)
	before := u.Snapshot()

	u.Invert()
	for i, c := range u.Snapshot() {
		if c != before[i].Flip() {
			t.Fatalf("cell %d not flipped after one invert", i)
		}
	}

	u.Invert()
	for i, c := range u.Snapshot() {
		if c != before[i] {
			t.Fatalf("cell %d = %v after double invert, want %v", i, c, before[i])
		}
	}
}

func TestFillTerminalState(t *testing.T) {
	u := mustNew(t, 5, 5)
	paint(t, u)
	u.Fill(Alive)
	if u.Population() != 25 {
		t.Errorf("population after Fill(Alive) = %d, want 25", u.Population())
	}
	u.Fill(Dead)
	if u.Population() != 0 {
		t.Errorf("population after Fill(Dead) = %d, want 0", u.Population())
	}
}

func TestRandomizeBias(t *testing.T) {
	u := mustNew(t, 8, 1)
	// even, divisible by 7, neither, neither, even, odd multiple of 7, neither, even
	src := &seqSource{vals: []uint32{2, 7, 1, 9, 10, 21, 3, 0}}
	u.Randomize(src)

	want := []Cell{Alive, Alive, Dead, Dead, Alive, Alive, Dead, Alive}
	for x, w := range want {
		if got := u.Get(x, 0); got != w {
			t.Errorf("cell %d = %v, want %v", x, got, w)
		}
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		newW, newH int
	}{
		{"grow both", 6, 4, 10, 9},
		{"grow width only", 6, 4, 12, 4},
		{"shrink both", 8, 8, 3, 5},
		{"mixed", 8, 3, 4, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := mustNew(t, tt.w, tt.h)
			paint(t, u)
			before := mustNew(t, tt.w, tt.h)
			paint(t, before)

			if err := u.Resize(tt.newW, tt.newH); err != nil {
				t.Fatalf("Resize: %v", err)
			}
			if u.Width() != tt.newW || u.Height() != tt.newH {
				t.Fatalf("size = %dx%d, want %dx%d", u.Width(), u.Height(), tt.newW, tt.newH)
			}

			for y := 0; y < tt.newH; y++ {
				for x := 0; x < tt.newW; x++ {
					got := u.Get(x, y)
					if x < min(tt.w, tt.newW) && y < min(tt.h, tt.newH) {
						if got != before.Get(x, y) {
							t.Errorf("(%d,%d) = %v, want %v", x, y, got, before.Get(x, y))
						}
					} else if got != Dead {
						t.Errorf("newly exposed (%d,%d) = %v, want Dead", x, y, got)
					}
				}
			}
		})
	}
}

func TestResizeShrinkThenGrowExposesDead(t *testing.T) {
	u := mustNew(t, 10, 10)
	u.Fill(Alive)

	if err := u.Resize(4, 4); err != nil {
		t.Fatalf("shrink: %v", err)
	}
	if cw, ch := u.Capacity(); cw != 10 || ch != 10 {
		t.Errorf("capacity after shrink = %dx%d, want 10x10", cw, ch)
	}
	if err := u.Resize(10, 10); err != nil {
		t.Fatalf("grow: %v", err)
	}
	if u.Population() != 16 {
		t.Errorf("population after shrink/grow = %d, want 16", u.Population())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if u.Get(x, y) != Alive {
				t.Errorf("(%d,%d) lost after shrink/grow", x, y)
			}
		}
	}
}

func TestResizeBeyondCapacityReallocates(t *testing.T) {
	u := mustNew(t, 6, 6)
	if err := u.Resize(3, 3); err != nil {
		t.Fatal(err)
	}
	mustSet(t, u, 2, 2)
	if err := u.Resize(8, 5); err != nil {
		t.Fatal(err)
	}
	if cw, ch := u.Capacity(); cw != 8 || ch != 6 {
		t.Errorf("capacity = %dx%d, want 8x6", cw, ch)
	}
	if u.Get(2, 2) != Alive {
		t.Error("(2,2) should survive reallocation")
	}
	if u.Population() != 1 {
		t.Errorf("population = %d, want 1", u.Population())
	}
}

func TestResizeInvalid(t *testing.T) {
	u := mustNew(t, 4, 4)
	mustSet(t, u, 1, 1)
	if err := u.Resize(0, 3); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 3) error = %v, want ErrInvalidDimensions", err)
	}
	if u.Width() != 4 || u.Height() != 4 || u.Get(1, 1) != Alive {
		t.Error("invalid resize must leave the universe untouched")
	}
}

func TestCellsForPixels(t *testing.T) {
	tests := []struct {
		pixels, scale, want int
	}{
		{800, 16, 50},
		{801, 16, 51},
		{15, 16, 1},
		{0, 16, 1},
		{-20, 16, 1},
		{10, 0, 10},
	}
	for _, tt := range tests {
		if got := CellsForPixels(tt.pixels, tt.scale); got != tt.want {
			t.Errorf("CellsForPixels(%d, %d) = %d, want %d", tt.pixels, tt.scale, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := mustNew(t, 5, 5)
	b := mustNew(t, 5, 5)
	if !a.Equal(b) {
		t.Error("fresh universes should be equal")
	}
	mustSet(t, b, 0, 4)
	if a.Equal(b) {
		t.Error("universes differing in one cell should not be equal")
	}
	c := mustNew(t, 5, 4)
	if a.Equal(c) {
		t.Error("universes of different size should not be equal")
	}
}
