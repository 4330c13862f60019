package tetris

import "strings"

// Point is a column/row coordinate on the board. Y grows downwards.
type Point struct {
	X, Y int
}

// Piece is the falling shape: a square occupancy grid anchored on the board
// by the grid's top-left corner. A Piece does no bounds checking; the Board
// validates every candidate position before committing it.
type Piece struct {
	shape  Shape
	cells  [][]bool
	origin Point

	// legacyRotation makes both rotation directions use the
	// counter-clockwise transform.
	legacyRotation bool
}

// NewPiece creates a piece of the given shape in its spawn orientation with
// its grid's top-left corner at (x, y).
func NewPiece(shape Shape, x, y int) *Piece {
	if !shape.Valid() {
		panic("tetris: cannot create piece of shape " + shape.String())
	}
	return &Piece{
		shape:  shape,
		cells:  shape.Layout(),
		origin: Point{X: x, Y: y},
	}
}

func (p *Piece) Shape() Shape {
	return p.shape
}

func (p *Piece) Color() Color {
	return p.shape.Color()
}

func (p *Piece) Origin() Point {
	return p.origin
}

// Size returns the side length of the piece's grid.
func (p *Piece) Size() int {
	return len(p.cells)
}

// Cells returns a copy of the occupancy grid, indexed [row][column].
func (p *Piece) Cells() [][]bool {
	return copyGrid(p.cells)
}

// Projected returns the board coordinates of every occupied cell, in
// row-major order.
func (p *Piece) Projected() []Point {
	points := make([]Point, 0, 4)
	for row := range p.cells {
		for col, filled := range p.cells[row] {
			if filled {
				points = append(points, Point{X: p.origin.X + col, Y: p.origin.Y + row})
			}
		}
	}
	return points
}

func (p *Piece) MoveDown() {
	p.origin.Y++
}

func (p *Piece) MoveLeft() {
	p.origin.X--
}

func (p *Piece) MoveRight() {
	p.origin.X++
}

// RotateClockwise turns the piece a quarter turn clockwise. Squares never
// change and Towers toggle between their vertical and horizontal bars.
func (p *Piece) RotateClockwise() {
	switch p.shape {
	case Square:
		return
	case Tower:
		p.toggleTower()
	default:
		if p.legacyRotation {
			p.cells = rotateCounterClockwise(p.cells)
			return
		}
		p.cells = rotateClockwise(p.cells)
	}
}

// RotateCounterClockwise turns the piece a quarter turn counter-clockwise,
// with the same Square and Tower exceptions as RotateClockwise.
func (p *Piece) RotateCounterClockwise() {
	switch p.shape {
	case Square:
		return
	case Tower:
		p.toggleTower()
	default:
		p.cells = rotateCounterClockwise(p.cells)
	}
}

// The generic transform would shift a 4-wide bar between the second and
// third column on every turn, so the Tower only has two fixed layouts.
func (p *Piece) toggleTower() {
	if p.cells[0][1] {
		p.cells = copyGrid(towerHorizontal)
		return
	}
	p.cells = Tower.Layout()
}

// Clone returns an independent copy that can be moved without touching p.
func (p *Piece) Clone() *Piece {
	return &Piece{
		shape:          p.shape,
		cells:          copyGrid(p.cells),
		origin:         p.origin,
		legacyRotation: p.legacyRotation,
	}
}

func (p *Piece) String() string {
	var sb strings.Builder
	for _, row := range p.cells {
		for col, filled := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if filled {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func rotateClockwise(cells [][]bool) [][]bool {
	size := len(cells)
	rotated := newGrid(size)
	for i := range size {
		for j := range size {
			rotated[j][size-1-i] = cells[i][j]
		}
	}
	return rotated
}

func rotateCounterClockwise(cells [][]bool) [][]bool {
	size := len(cells)
	rotated := newGrid(size)
	for i := range size {
		for j := range size {
			rotated[size-1-j][i] = cells[i][j]
		}
	}
	return rotated
}
