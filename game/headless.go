package game

import (
	"github.com/pthm-cable/multisim/gol"
	"github.com/pthm-cable/multisim/telemetry"
)

// UpdateHeadless advances the Game of Life by one simulated frame of DT
// seconds without touching raylib.
func (g *Game) UpdateHeadless() {
	g.frameTimer.BeginFrame()
	g.frameTimer.Enter(telemetry.PhaseInput)
	in := gol.FrameInput{
		DT:        g.dt,
		ViewportW: g.cfg.Headless.Width,
		ViewportH: g.cfg.Headless.Height,
		Key:       g.scriptedKey(),
	}
	g.frame++

	g.frameTimer.Enter(telemetry.PhaseRun)
	g.life.Run(in)
	g.frameTimer.EndFrame()
}

// scriptedKey seeds the grid on the first frame, then leaves help and starts
// the simulation.
func (g *Game) scriptedKey() gol.Key {
	if g.frame == 0 {
		return gol.KeyR
	}
	switch g.life.Mode() {
	case gol.HelpMode:
		return gol.KeyEnter
	case gol.DesignMode:
		return gol.KeySpace
	}
	return gol.KeyNone
}
