package game

import (
	"math/rand/v2"

	"github.com/pthm-cable/multisim/life"
)

// newSource returns the generator behind KeyR. Windowed and headless games
// share it so a seed reproduces the same grids in both.
func newSource(seed int64) life.Source {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}
