package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/multisim/telemetry"
)

// HUDData holds all the data needed to render the Game of Life status line.
type HUDData struct {
	Generation     uint64
	Population     int
	GridW, GridH   int
	UpdateInterval float64
	Theme          string
	Mode           string
	ResizePending  bool
	FPS            int32
}

// StatusLine formats the one-line summary drawn by the HUD.
func StatusLine(d HUDData) string {
	s := fmt.Sprintf("Gen: %d | Pop: %d | Grid: %dx%d | Step: %.2fs | %s | %s",
		d.Generation, d.Population, d.GridW, d.GridH, d.UpdateInterval, d.Theme, d.Mode)
	if d.ResizePending {
		s += " | resizing"
	}
	return s
}

// HUD renders the heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the status line in a strip along the top of the screen.
func (h *HUD) Draw(data HUDData, screenWidth int32) {
	t := h.renderer.Theme
	text := StatusLine(data)
	width := rl.MeasureText(text, t.FontSize) + t.Padding*2 + 60
	x, y := AnchorTopRight.Position(width, t.LineHeight+t.Padding, screenWidth, 0, 4)

	h.renderer.DrawPanel(x, y, width, t.LineHeight+t.Padding)
	rl.DrawText(text, x+t.Padding, y+t.Padding/2, t.FontSize, t.ValueColor)
	rl.DrawText(fmt.Sprintf("%d fps", data.FPS), x+width-t.Padding-50, y+t.Padding/2, t.FontSize, t.LabelColor)
}

// PerfPanel renders the frame timing breakdown.
type PerfPanel struct {
	renderer *Renderer
	visible  bool
}

// NewPerfPanel creates a new, hidden performance panel.
func NewPerfPanel() *PerfPanel {
	return &PerfPanel{renderer: NewRenderer()}
}

// Toggle switches panel visibility.
func (p *PerfPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Draw renders the performance panel in the bottom-right corner.
func (p *PerfPanel) Draw(stats telemetry.FrameStats, screenWidth, screenHeight int32) {
	if !p.visible {
		return
	}
	r := p.renderer
	const width, height = 200, 130
	x, y := AnchorBottomRight.Position(width, height, screenWidth, screenHeight, 10)

	r.DrawPanel(x, y, width, height)
	x += r.Theme.Padding
	y = r.DrawSectionHeader(x, y+r.Theme.Padding, "Frame Timing")
	y = r.DrawLabelValue(x, y, "Mean", stats.Mean.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "P95", stats.P95.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%.0f", stats.FPS()))
	for _, phase := range telemetry.Phases() {
		y = r.DrawLabelValue(x, y, phase.String(), fmt.Sprintf("%5.1f%%", stats.Share(phase)))
	}
}
