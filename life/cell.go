// Package life implements the Game of Life universe: the two-state cell, the
// bounded grid that holds them, and the double-buffered generation step.
package life

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// CellFromBool maps true to Alive and false to Dead.
func CellFromBool(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

// Next applies Conway's rule: survival on 2 or 3 live neighbors, birth on
// exactly 3, death otherwise.
func (c Cell) Next(liveNeighbors int) Cell {
	switch c {
	case Alive:
		if liveNeighbors == 2 || liveNeighbors == 3 {
			return Alive
		}
		return Dead
	default:
		if liveNeighbors == 3 {
			return Alive
		}
		return Dead
	}
}

// Flip returns the opposite state.
func (c Cell) Flip() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// IsAlive reports whether the cell is Alive.
func (c Cell) IsAlive() bool { return c == Alive }

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
