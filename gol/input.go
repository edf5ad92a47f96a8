package gol

// Key is a symbolic key the controller reacts to. Hosts translate their own
// key codes into these.
type Key int

const (
	KeyNone Key = iota
	KeyH        // toggle help
	KeyC        // clear
	KeyA        // fill alive
	KeyI        // invert
	KeyR        // randomize
	KeyT        // cycle theme
	KeyPlus     // slower updates
	KeyMinus    // faster updates
	KeySpace    // toggle design/simulation
	KeyEscape   // leave help
	KeyEnter    // leave help
)

// FrameInput is everything the host samples once per frame.
type FrameInput struct {
	// DT is the elapsed frame time in seconds.
	DT float64

	ViewportW int
	ViewportH int

	// Key is the most recent key pressed this frame, or KeyNone.
	Key Key

	PointerX float64
	PointerY float64

	// Paint and Erase report whether the paint and erase buttons are held.
	Paint bool
	Erase bool
}
