package tetris

// Shape identifies one of the seven piece variants. The zero value NoShape
// marks an empty board cell.
type Shape uint8

const (
	NoShape Shape = iota
	Tower
	Square
	LightningLeft
	LightningRight
	HammerLeft
	HammerRight
	Hat
)

// ShapeCount is the number of playable shapes.
const ShapeCount = 7

var shapeNames = [...]string{
	NoShape:        "None",
	Tower:          "Tower",
	Square:         "Square",
	LightningLeft:  "LightningLeft",
	LightningRight: "LightningRight",
	HammerLeft:     "HammerLeft",
	HammerRight:    "HammerRight",
	Hat:            "Hat",
}

var baseLayouts = [...][][]bool{
	Tower: {
		{false, true, false, false},
		{false, true, false, false},
		{false, true, false, false},
		{false, true, false, false},
	},
	Square: {
		{true, true},
		{true, true},
	},
	LightningLeft: {
		{false, false, true},
		{false, true, true},
		{false, true, false},
	},
	LightningRight: {
		{true, false, false},
		{true, true, false},
		{false, true, false},
	},
	HammerLeft: {
		{true, true, false},
		{false, true, false},
		{false, true, false},
	},
	HammerRight: {
		{false, true, true},
		{false, true, false},
		{false, true, false},
	},
	Hat: {
		{true, false, false},
		{true, true, false},
		{true, false, false},
	},
}

var towerHorizontal = [][]bool{
	{false, false, false, false},
	{true, true, true, true},
	{false, false, false, false},
	{false, false, false, false},
}

// Shapes returns every playable shape in declaration order.
func Shapes() []Shape {
	return []Shape{Tower, Square, LightningLeft, LightningRight, HammerLeft, HammerRight, Hat}
}

// Valid reports whether s is one of the seven playable shapes.
func (s Shape) Valid() bool {
	return s >= Tower && s <= Hat
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "Shape(?)"
}

// Layout returns a fresh copy of the shape's spawn orientation.
// It returns nil for NoShape.
func (s Shape) Layout() [][]bool {
	if !s.Valid() {
		return nil
	}
	return copyGrid(baseLayouts[s])
}

// Color returns the color tied to the shape.
func (s Shape) Color() Color {
	return Color(s)
}

func newGrid(size int) [][]bool {
	grid := make([][]bool, size)
	for i := range grid {
		grid[i] = make([]bool, size)
	}
	return grid
}

func copyGrid(src [][]bool) [][]bool {
	dst := make([][]bool, len(src))
	for i := range src {
		dst[i] = make([]bool, len(src[i]))
		copy(dst[i], src[i])
	}
	return dst
}
