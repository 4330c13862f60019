package tetris

// State is the lifecycle state of a board.
type State uint8

const (
	// Active means the current piece accepts commands.
	Active State = iota
	// GameOver means a freshly spawned piece overlapped the stack. It is
	// terminal.
	GameOver
)

func (s State) String() string {
	switch s {
	case Active:
		return "Active"
	case GameOver:
		return "GameOver"
	default:
		return "State(?)"
	}
}

// Board owns the settled cells and the falling piece and enforces the rules:
// every committed position of the active piece lies inside the grid and
// covers only empty cells.
//
// Every piece command builds a moved clone of the active piece, validates it
// and commits it only when it fits; a rejected command changes nothing.
//
// A Board is not safe for concurrent use. game.Session serializes access for
// concurrent drivers.
type Board struct {
	cfg    Config
	source ShapeSource

	grid   [][]Shape
	active *Piece

	score int
	state State
	stats *Stats

	onGameOver []func(score int)
}

// NewBoard creates an empty board and spawns its first piece.
func NewBoard(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source := cfg.Source
	if source == nil {
		source = NewUniformSource(cfg.Seed)
	}

	grid := make([][]Shape, cfg.Rows)
	for row := range grid {
		grid[row] = make([]Shape, cfg.Columns)
	}

	b := &Board{
		cfg:    cfg,
		source: source,
		grid:   grid,
		stats:  newStats(),
	}
	b.spawn()

	return b, nil
}

func (b *Board) Config() Config {
	return b.cfg
}

func (b *Board) Rows() int {
	return b.cfg.Rows
}

func (b *Board) Columns() int {
	return b.cfg.Columns
}

func (b *Board) Score() int {
	return b.score
}

// Lines returns the number of rows cleared so far.
func (b *Board) Lines() int {
	return b.stats.Rows
}

func (b *Board) State() State {
	return b.state
}

// Stats returns a copy of the board's counters.
func (b *Board) Stats() *Stats {
	return b.stats.Clone()
}

// Active returns a copy of the falling piece.
func (b *Board) Active() *Piece {
	return b.active.Clone()
}

// Cell returns the shape locked at column x, row y, or NoShape when the cell
// is empty or outside the grid.
func (b *Board) Cell(x, y int) Shape {
	if !b.inside(x, y) {
		return NoShape
	}
	return b.grid[y][x]
}

// SetCell places a locked cell of the given shape, or empties it with
// NoShape. It refuses cells outside the grid and cells covered by the active
// piece, so it can never break the board's invariant.
func (b *Board) SetCell(x, y int, shape Shape) bool {
	if !b.inside(x, y) || (shape != NoShape && !shape.Valid()) {
		return false
	}
	if shape != NoShape {
		for _, p := range b.active.Projected() {
			if p.X == x && p.Y == y {
				return false
			}
		}
	}
	b.grid[y][x] = shape
	return true
}

// OnGameOver registers fn to be called with the final score when the board
// reaches GameOver. Callbacks run once, in registration order.
func (b *Board) OnGameOver(fn func(score int)) {
	b.onGameOver = append(b.onGameOver, fn)
}

// Fits reports whether the candidate piece lies entirely inside the grid and
// covers only empty cells.
func (b *Board) Fits(candidate *Piece) bool {
	return b.inBounds(candidate) && !b.overlaps(candidate)
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.cfg.Columns && y >= 0 && y < b.cfg.Rows
}

func (b *Board) inBounds(candidate *Piece) bool {
	for _, p := range candidate.Projected() {
		if !b.inside(p.X, p.Y) {
			return false
		}
	}
	return true
}

// overlaps only inspects cells that are inside the grid.
func (b *Board) overlaps(candidate *Piece) bool {
	for _, p := range candidate.Projected() {
		if b.inside(p.X, p.Y) && b.grid[p.Y][p.X] != NoShape {
			return true
		}
	}
	return false
}

// try applies move to a clone of the active piece and commits the clone if
// it fits.
func (b *Board) try(move func(*Piece)) bool {
	if b.state == GameOver {
		return false
	}

	candidate := b.active.Clone()
	move(candidate)
	if !b.Fits(candidate) {
		return false
	}

	b.active = candidate
	return true
}

// Tick moves the active piece down one row. When it cannot move, the piece is
// locked, completed rows are cleared, a new piece is spawned and Tick
// returns false. Tick also returns false once the game is over.
func (b *Board) Tick() bool {
	if b.state == GameOver {
		return false
	}
	if b.try((*Piece).MoveDown) {
		return true
	}

	b.lock()
	b.ClearCompletedRows()
	b.spawn()
	return false
}

// MoveDown is Tick.
func (b *Board) MoveDown() bool {
	return b.Tick()
}

func (b *Board) MoveLeft() {
	b.try((*Piece).MoveLeft)
}

func (b *Board) MoveRight() {
	b.try((*Piece).MoveRight)
}

func (b *Board) RotateClockwise() {
	b.try((*Piece).RotateClockwise)
}

func (b *Board) RotateCounterClockwise() {
	b.try((*Piece).RotateCounterClockwise)
}

// HardDrop ticks until the active piece locks and returns how many rows it
// fell first.
func (b *Board) HardDrop() int {
	rows := 0
	for b.Tick() {
		rows++
	}
	return rows
}

// DropDistance returns how many rows the active piece can fall before it
// would lock.
func (b *Board) DropDistance() int {
	probe := b.active.Clone()
	rows := 0
	for {
		probe.MoveDown()
		if !b.Fits(probe) {
			return rows
		}
		rows++
	}
}

func (b *Board) lock() {
	shape := b.active.Shape()
	for _, p := range b.active.Projected() {
		b.grid[p.Y][p.X] = shape
	}
	b.stats.Locked++
}

// ClearCompletedRows removes every row whose cells are all locked, scanning
// top to bottom. Each removal shifts the rows above it down by one, empties
// the top row and adds RowReward to the score. It returns the number of rows
// removed.
func (b *Board) ClearCompletedRows() int {
	cleared := 0
	for row := range b.grid {
		if !b.completed(row) {
			continue
		}
		b.removeRow(row)
		b.score += RowReward
		b.stats.Rows++
		cleared++
	}
	return cleared
}

func (b *Board) completed(row int) bool {
	for _, cell := range b.grid[row] {
		if cell == NoShape {
			return false
		}
	}
	return true
}

func (b *Board) removeRow(target int) {
	for row := target; row > 0; row-- {
		copy(b.grid[row], b.grid[row-1])
	}
	clear(b.grid[0])
}

func (b *Board) spawn() {
	origin := b.cfg.SpawnOrigin()
	piece := NewPiece(b.source.Next(), origin.X, origin.Y)
	piece.legacyRotation = b.cfg.LegacyRotation

	b.active = piece
	b.stats.recordSpawn(piece.Shape())

	if b.overlaps(piece) {
		b.state = GameOver
		for _, fn := range b.onGameOver {
			fn(b.score)
		}
	}
}
