package tetris

// Snapshot is a self-contained copy of everything a renderer needs. It shares
// no memory with the board it was taken from.
type Snapshot struct {
	Rows    int
	Columns int
	Scale   int

	// Cells holds the locked grid, indexed [row][column].
	Cells [][]Shape

	ActiveShape Shape
	ActiveColor Color
	Active      []Point
	// Ghost is where the active piece would lock if dropped now.
	Ghost []Point

	Score int
	Lines int
	State State
	Stats *Stats
}

// Snapshot copies the board's current state.
func (b *Board) Snapshot() Snapshot {
	cells := make([][]Shape, len(b.grid))
	for row := range b.grid {
		cells[row] = make([]Shape, len(b.grid[row]))
		copy(cells[row], b.grid[row])
	}

	ghost := b.active.Clone()
	ghost.origin.Y += b.DropDistance()

	return Snapshot{
		Rows:        b.cfg.Rows,
		Columns:     b.cfg.Columns,
		Scale:       b.cfg.Scale,
		Cells:       cells,
		ActiveShape: b.active.Shape(),
		ActiveColor: b.active.Color(),
		Active:      b.active.Projected(),
		Ghost:       ghost.Projected(),
		Score:       b.score,
		Lines:       b.stats.Rows,
		State:       b.state,
		Stats:       b.stats.Clone(),
	}
}

// Occupied reports whether the locked cell at (x, y) is filled.
func (s Snapshot) Occupied(x, y int) bool {
	return s.At(x, y) != NoShape
}

// At returns the locked shape at (x, y), or NoShape outside the grid.
func (s Snapshot) At(x, y int) Shape {
	if y < 0 || y >= len(s.Cells) || x < 0 || x >= len(s.Cells[y]) {
		return NoShape
	}
	return s.Cells[y][x]
}

func (s Snapshot) String() string {
	active := make(map[Point]bool, len(s.Active))
	for _, p := range s.Active {
		active[p] = true
	}

	buf := make([]byte, 0, (s.Columns+1)*s.Rows)
	for y := range s.Rows {
		for x := range s.Columns {
			switch {
			case active[Point{X: x, Y: y}] && s.State == Active:
				buf = append(buf, '@')
			case s.Occupied(x, y):
				buf = append(buf, '#')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
