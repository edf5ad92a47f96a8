package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/multisim/gol"
	"github.com/pthm-cable/multisim/renderer"
	"github.com/pthm-cable/multisim/telemetry"
	"github.com/pthm-cable/multisim/ui"
)

// Draw renders the active scene.
func (g *Game) Draw() {
	g.frameTimer.Enter(telemetry.PhaseDraw)

	rl.BeginDrawing()
	switch g.scene {
	case sceneMenu:
		switch g.selector.Draw(g.screenW, g.screenH) {
		case entryLife:
			g.scene = sceneLife
		case entryQuit:
			g.quit = true
		}
	case sceneLife:
		g.drawLife()
	}
	rl.EndDrawing()

	g.frameTimer.EndFrame()
}

func (g *Game) drawLife() {
	l := g.life
	cx, cy := l.Cursor()
	g.lifeRenderer.Draw(renderer.LifeFrame{
		Grid:           l.Universe(),
		Theme:          l.Theme(),
		Scale:          l.Scale(),
		Mode:           l.Mode(),
		CursorX:        cx,
		CursorY:        cy,
		UpdateInterval: l.UpdateInterval(),
		IntervalStep:   g.cfg.Life.IntervalStep,
		ScreenWidth:    g.screenW,
		ScreenHeight:   g.screenH,
	})
	if l.Mode() == gol.HelpMode {
		return
	}

	grid := l.Universe()
	g.hud.Draw(ui.HUDData{
		Generation:     l.Generation(),
		Population:     grid.Population(),
		GridW:          grid.Width(),
		GridH:          grid.Height(),
		UpdateInterval: l.UpdateInterval(),
		Theme:          l.Theme().String(),
		Mode:           l.Mode().String(),
		ResizePending:  l.ResizePending(),
		FPS:            rl.GetFPS(),
	}, g.screenW)
	g.perfPanel.Draw(g.frameTimer.Stats(), g.screenW, g.screenH)
}
