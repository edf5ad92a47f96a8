// Package renderer draws simulation state with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/multisim/gol"
	"github.com/pthm-cable/multisim/life"
	"github.com/pthm-cable/multisim/theme"
)

// LifeFrame is everything needed to draw one Game of Life frame.
type LifeFrame struct {
	Grid             life.View
	Theme            theme.Theme
	Scale            int
	Mode             gol.Mode
	CursorX, CursorY int
	UpdateInterval   float64
	IntervalStep     float64

	ScreenWidth  int32
	ScreenHeight int32
}

// LifeRenderer draws the grid, the design cursor and the help screen.
type LifeRenderer struct {
	designFontSize int32
}

// NewLifeRenderer creates a new Game of Life renderer.
func NewLifeRenderer() *LifeRenderer {
	return &LifeRenderer{designFontSize: 25}
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Draw renders the frame. Must be called between rl.BeginDrawing and
// rl.EndDrawing.
func (r *LifeRenderer) Draw(f LifeFrame) {
	pal := f.Theme.Palette()
	rl.ClearBackground(toRL(pal.Background))

	if f.Mode == gol.HelpMode {
		r.drawHelp(f, pal)
		return
	}

	r.drawCells(f)

	if f.Mode == gol.DesignMode {
		s := int32(f.Scale)
		rl.DrawRectangleLines(int32(f.CursorX)*s, int32(f.CursorY)*s, s, s, toRL(pal.Accent))
		rl.DrawText("[DESIGN MODE]", 3, f.ScreenHeight-r.designFontSize, r.designFontSize, toRL(pal.Accent))
	}
}

// drawCells fills every live cell; dead cells show the cleared background.
func (r *LifeRenderer) drawCells(f LifeFrame) {
	s := int32(f.Scale)
	w, h := f.Grid.Width(), f.Grid.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !f.Grid.Get(x, y).IsAlive() {
				continue
			}
			rl.DrawRectangle(int32(x)*s, int32(y)*s, s, s, toRL(f.Theme.CellColor(x, y)))
		}
	}
}
