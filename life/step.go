package life

// StepStats summarizes one generation.
type StepStats struct {
	Births     int
	Deaths     int
	Population int
}

// LiveNeighbors counts Alive cells in the Moore neighborhood of (x, y).
// Positions off the grid count as Dead; there is no wraparound.
func (u *Universe) LiveNeighbors(x, y int) int {
	minX := max(0, x-1)
	maxX := min(u.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(u.height-1, y+1)

	count := 0
	for ny := minY; ny <= maxY; ny++ {
		row := ny * u.stride
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if u.cells[row+nx] == Alive {
				count++
			}
		}
	}
	return count
}

// Step advances the universe by one generation. Every cell is computed from
// the current buffer into the spare one, then the two are swapped, so no cell
// sees a partially updated generation.
func (u *Universe) Step() StepStats {
	var stats StepStats
	for y := 0; y < u.height; y++ {
		row := y * u.stride
		for x := 0; x < u.width; x++ {
			cur := u.cells[row+x]
			nxt := cur.Next(u.LiveNeighbors(x, y))
			u.next[row+x] = nxt

			switch {
			case cur == Dead && nxt == Alive:
				stats.Births++
			case cur == Alive && nxt == Dead:
				stats.Deaths++
			}
			if nxt == Alive {
				stats.Population++
			}
		}
	}
	u.cells, u.next = u.next, u.cells
	return stats
}
