package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/multisim/theme"
)

// Help screen font sizes
const (
	helpFontM = 24
	helpFontL = 30
	helpGap   = 48
)

// HelpLines returns the control legend shown on the help screen.
func HelpLines(th theme.Theme, interval, step float64) []string {
	return []string{
		"Left mouse  - make cell alive",
		"Right mouse - make cell dead",
		"Space       - pause/unpause game",
		"H           - help menu",
		"C           - clear the board",
		"A           - fill the board with live cells",
		"I           - invert the cells",
		"R           - generate a random pattern",
		fmt.Sprintf("T           - switch theme (currently: %s)", th),
		fmt.Sprintf("+           - add %.2f to update time (%.2f)", step, interval),
		fmt.Sprintf("-           - subtract %.2f from update time (%.2f)", step, interval),
	}
}

func (r *LifeRenderer) drawHelp(f LifeFrame, pal theme.Palette) {
	fg := toRL(pal.Foreground)
	ac := toRL(pal.Accent)

	y := int32(0)
	rl.DrawText("CONTROLS", 2, y, helpFontL, ac)
	y += helpFontL

	for _, line := range HelpLines(f.Theme, f.UpdateInterval, f.IntervalStep) {
		rl.DrawText(line, 3, y, helpFontM, fg)
		y += helpFontM
	}
	y += helpGap

	rl.DrawText("To exit to the main menu press Escape", 4, y, helpFontL, ac)
	y += helpFontL
	rl.DrawText("Press Enter or H to start drawing!", 4, y, helpFontL, ac)
}
