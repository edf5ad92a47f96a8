// Package theme defines the color palettes the Game of Life renderer can use.
// The controller only cycles the selection; colors are consumed by renderers.
package theme

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme selects a palette.
type Theme int

const (
	Default Theme = iota
	Gruvbox
	Matrix
	Midnight

	count
)

// Palette holds the three colors a theme provides.
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
	Accent     color.RGBA
}

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

var palettes = [count]Palette{
	Default:  {Background: hex(0x000000), Foreground: hex(0xffffff), Accent: hex(0x00e430)},
	Gruvbox:  {Background: hex(0x282828), Foreground: hex(0xebdbb2), Accent: hex(0xcc241d)},
	Matrix:   {Background: hex(0x131721), Foreground: hex(0x32c603), Accent: hex(0x0079f1)},
	Midnight: {Background: hex(0x0d1017), Foreground: hex(0xffffff), Accent: hex(0xd65d0e)},
}

var names = [count]string{
	Default:  "Default",
	Gruvbox:  "Gruvbox",
	Matrix:   "Matrix",
	Midnight: "Midnight",
}

// Next returns the theme after t, wrapping back to Default.
func (t Theme) Next() Theme {
	return (t + 1) % count
}

// Palette returns the colors for t. Unknown values fall back to Default.
func (t Theme) Palette() Palette {
	if t < 0 || t >= count {
		return palettes[Default]
	}
	return palettes[t]
}

// CellColor returns the color of a live cell at (x, y). Midnight shades cells
// by position, saturating at 255; every other theme uses its foreground.
func (t Theme) CellColor(x, y int) color.RGBA {
	if t == Midnight {
		return color.RGBA{R: channel(x), G: channel(y), B: 100, A: 255}
	}
	return t.Palette().Foreground
}

func channel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

func (t Theme) String() string {
	if t < 0 || t >= count {
		return fmt.Sprintf("Theme(%d)", int(t))
	}
	return names[t]
}

// Parse looks a theme up by name, ignoring case.
func Parse(name string) (Theme, error) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return Theme(i), nil
		}
	}
	return Default, fmt.Errorf("unknown theme %q", name)
}
