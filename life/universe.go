package life

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned for a zero or negative width or height.
	ErrInvalidDimensions = errors.New("life: invalid dimensions")
	// ErrOutOfBounds is returned when writing outside the logical grid.
	ErrOutOfBounds = errors.New("life: coordinates out of bounds")
)

// Source supplies random values for Randomize. *math/rand/v2.Rand satisfies it.
type Source interface {
	Uint32() uint32
}

// View is the read-only surface of a Universe handed to renderers.
type View interface {
	Width() int
	Height() int
	Get(x, y int) Cell
	Population() int
}

// Universe is a bounded board of cells.
//
// The backing store is allocated with a capacity (stride x rows) that never
// shrinks; the logical width and height move freely inside it. Every cell
// outside the logical area is kept Dead, so a grow within capacity always
// exposes Dead cells.
type Universe struct {
	width, height int
	stride, rows  int

	cells []Cell
	next  []Cell
}

// New creates a universe of the given size with every cell Dead.
func New(width, height int) (*Universe, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "new universe %dx%d", width, height)
	}
	n := width * height
	return &Universe{
		width:  width,
		height: height,
		stride: width,
		rows:   height,
		cells:  make([]Cell, n),
		next:   make([]Cell, n),
	}, nil
}

// Width returns the logical width in cells.
func (u *Universe) Width() int { return u.width }

// Height returns the logical height in cells.
func (u *Universe) Height() int { return u.height }

// Capacity returns the allocated dimensions of the backing store.
func (u *Universe) Capacity() (w, h int) { return u.stride, u.rows }

// Contains reports whether (x, y) lies inside the logical grid.
func (u *Universe) Contains(x, y int) bool {
	return x >= 0 && x < u.width && y >= 0 && y < u.height
}

// Get returns the cell at (x, y). Coordinates outside the grid read as Dead.
func (u *Universe) Get(x, y int) Cell {
	if !u.Contains(x, y) {
		return Dead
	}
	return u.cells[y*u.stride+x]
}

// Set writes the cell at (x, y).
func (u *Universe) Set(x, y int, c Cell) error {
	if !u.Contains(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "set (%d,%d) on %dx%d", x, y, u.width, u.height)
	}
	u.cells[y*u.stride+x] = c
	return nil
}

// Fill sets every cell to c.
func (u *Universe) Fill(c Cell) {
	u.each(func(Cell) Cell { return c })
}

// Invert flips every cell. Applying it twice restores the grid.
func (u *Universe) Invert() {
	u.each(Cell.Flip)
}

// Randomize replaces every cell using src. A cell comes up Alive when the
// drawn value is even or divisible by 7, which leaves roughly 57% alive.
func (u *Universe) Randomize(src Source) {
	u.each(func(Cell) Cell {
		v := src.Uint32()
		return CellFromBool(v%2 == 0 || v%7 == 0)
	})
}

// each replaces every logical cell with fn(cell), row by row.
func (u *Universe) each(fn func(Cell) Cell) {
	for y := 0; y < u.height; y++ {
		row := u.cells[y*u.stride : y*u.stride+u.width]
		for x := range row {
			row[x] = fn(row[x])
		}
	}
}

// Resize changes the logical dimensions.
//
// Within capacity only the logical size changes and cells left outside the new
// bounds are cleared. Beyond capacity the store is reallocated to cover both
// the old capacity and the target, and the overlapping region is copied at the
// same coordinates.
func (u *Universe) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "resize %dx%d to %dx%d", u.width, u.height, width, height)
	}
	if width == u.width && height == u.height {
		return nil
	}

	if width <= u.stride && height <= u.rows {
		u.clip(width, height)
		u.width, u.height = width, height
		clear(u.next)
		return nil
	}

	stride := max(u.stride, width)
	rows := max(u.rows, height)
	cells := make([]Cell, stride*rows)

	copyW := min(u.width, width)
	copyH := min(u.height, height)
	for y := 0; y < copyH; y++ {
		copy(cells[y*stride:y*stride+copyW], u.cells[y*u.stride:y*u.stride+copyW])
	}

	u.cells = cells
	u.next = make([]Cell, stride*rows)
	u.stride, u.rows = stride, rows
	u.width, u.height = width, height
	return nil
}

// clip clears every cell of the current logical area that falls outside
// width x height.
func (u *Universe) clip(width, height int) {
	for y := 0; y < u.height; y++ {
		from := width
		if y >= height {
			from = 0
		}
		if from >= u.width {
			continue
		}
		clear(u.cells[y*u.stride+from : y*u.stride+u.width])
	}
}

// Population counts the Alive cells.
func (u *Universe) Population() int {
	n := 0
	for y := 0; y < u.height; y++ {
		for _, c := range u.cells[y*u.stride : y*u.stride+u.width] {
			if c == Alive {
				n++
			}
		}
	}
	return n
}

// Snapshot returns a row-major copy of the logical grid, indexed y*width+x.
func (u *Universe) Snapshot() []Cell {
	out := make([]Cell, u.width*u.height)
	for y := 0; y < u.height; y++ {
		copy(out[y*u.width:(y+1)*u.width], u.cells[y*u.stride:y*u.stride+u.width])
	}
	return out
}

// Equal reports whether both universes have the same size and cells.
func (u *Universe) Equal(o *Universe) bool {
	if o == nil || u.width != o.width || u.height != o.height {
		return false
	}
	for y := 0; y < u.height; y++ {
		for x := 0; x < u.width; x++ {
			if u.cells[y*u.stride+x] != o.cells[y*o.stride+x] {
				return false
			}
		}
	}
	return true
}

// CellsForPixels rounds a pixel extent up to a whole multiple of scale and
// returns how many cells that is. The result is never below 1.
func CellsForPixels(pixels, scale int) int {
	if scale <= 0 {
		scale = 1
	}
	if pixels <= 0 {
		return 1
	}
	return (pixels + scale - 1) / scale
}
