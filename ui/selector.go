package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Selector button layout
const (
	buttonWidth   = 260
	buttonHeight  = 48
	buttonSpacing = 16
	titleFontSize = 60
)

// SelectorEntry is one button on the title screen.
type SelectorEntry struct {
	Label string
	ID    int
}

// Selector is the title screen listing the available simulations.
type Selector struct {
	title   string
	entries []SelectorEntry
}

// NewSelector creates a title screen with one button per entry.
func NewSelector(title string, entries ...SelectorEntry) *Selector {
	return &Selector{title: title, entries: entries}
}

// Entries returns the buttons in display order.
func (s *Selector) Entries() []SelectorEntry {
	return s.entries
}

// ButtonRects lays the buttons out in a centered column.
func (s *Selector) ButtonRects(screenW, screenH int32) []rl.Rectangle {
	n := int32(len(s.entries))
	total := n*buttonHeight + max(n-1, 0)*buttonSpacing
	top := (screenH-total)/2 + titleFontSize/2

	rects := make([]rl.Rectangle, n)
	for i := range rects {
		rects[i] = rl.Rectangle{
			X:      float32((screenW - buttonWidth) / 2),
			Y:      float32(top + int32(i)*(buttonHeight+buttonSpacing)),
			Width:  buttonWidth,
			Height: buttonHeight,
		}
	}
	return rects
}

// Draw renders the title screen and returns the ID of the entry clicked
// this frame, or -1.
func (s *Selector) Draw(screenW, screenH int32) int {
	rl.ClearBackground(rl.Black)

	tw := rl.MeasureText(s.title, titleFontSize)
	rl.DrawText(s.title, (screenW-tw)/2, screenH/6, titleFontSize, rl.White)

	selected := -1
	for i, rect := range s.ButtonRects(screenW, screenH) {
		if gui.Button(rect, s.entries[i].Label) {
			selected = s.entries[i].ID
		}
	}
	return selected
}
