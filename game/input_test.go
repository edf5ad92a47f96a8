package game

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/multisim/gol"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		code int32
		want gol.Key
	}{
		{"help", rl.KeyH, gol.KeyH},
		{"clear", rl.KeyC, gol.KeyC},
		{"fill", rl.KeyA, gol.KeyA},
		{"invert", rl.KeyI, gol.KeyI},
		{"randomize", rl.KeyR, gol.KeyR},
		{"theme", rl.KeyT, gol.KeyT},
		{"equal is plus", rl.KeyEqual, gol.KeyPlus},
		{"keypad plus", rl.KeyKpAdd, gol.KeyPlus},
		{"keypad equal", rl.KeyKpEqual, gol.KeyPlus},
		{"minus", rl.KeyMinus, gol.KeyMinus},
		{"keypad minus", rl.KeyKpSubtract, gol.KeyMinus},
		{"space", rl.KeySpace, gol.KeySpace},
		{"escape", rl.KeyEscape, gol.KeyEscape},
		{"enter", rl.KeyEnter, gol.KeyEnter},
		{"keypad enter", rl.KeyKpEnter, gol.KeyEnter},
		{"unbound", rl.KeyQ, gol.KeyNone},
		{"no key", 0, gol.KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateKey(tt.code); got != tt.want {
				t.Errorf("translateKey(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
