package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/multisim/gol"
)

// keyBindings maps raylib key codes to controller keys.
var keyBindings = map[int32]gol.Key{
	rl.KeyH:          gol.KeyH,
	rl.KeyC:          gol.KeyC,
	rl.KeyA:          gol.KeyA,
	rl.KeyI:          gol.KeyI,
	rl.KeyR:          gol.KeyR,
	rl.KeyT:          gol.KeyT,
	rl.KeyEqual:      gol.KeyPlus,
	rl.KeyKpAdd:      gol.KeyPlus,
	rl.KeyKpEqual:    gol.KeyPlus,
	rl.KeyMinus:      gol.KeyMinus,
	rl.KeyKpSubtract: gol.KeyMinus,
	rl.KeySpace:      gol.KeySpace,
	rl.KeyEscape:     gol.KeyEscape,
	rl.KeyEnter:      gol.KeyEnter,
	rl.KeyKpEnter:    gol.KeyEnter,
}

// translateKey maps a raylib key code, returning KeyNone for unbound keys.
func translateKey(code int32) gol.Key {
	return keyBindings[code]
}

// pollKey drains raylib's key queue and returns the most recent bound key.
// The controller takes at most one key per frame.
func pollKey() gol.Key {
	key := gol.KeyNone
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		if k := translateKey(code); k != gol.KeyNone {
			key = k
		}
	}
	return key
}

// pollInput samples keyboard, mouse and window state for this frame.
func (g *Game) pollInput() gol.FrameInput {
	mouse := rl.GetMousePosition()
	w, h := screenSize()
	return gol.FrameInput{
		DT:        float64(rl.GetFrameTime()),
		ViewportW: w,
		ViewportH: h,
		Key:       pollKey(),
		PointerX:  float64(mouse.X),
		PointerY:  float64(mouse.Y),
		Paint:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Erase:     rl.IsMouseButtonDown(rl.MouseButtonRight),
	}
}

// handleWindowKeys processes keys owned by the host rather than a scene.
func (g *Game) handleWindowKeys() {
	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.perfPanel.Toggle()
	}
	w, h := screenSize()
	g.screenW, g.screenH = int32(w), int32(h)
}

func screenSize() (w, h int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}
