package tetris

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by NewBoard when the configuration cannot
// hold a game.
var ErrInvalidConfig = errors.New("tetris: invalid config")

const (
	DefaultRows    = 18
	DefaultColumns = 10
	DefaultScale   = 35

	// MinDimension fits the tallest and widest layout (the Tower).
	MinDimension = 4

	// RowReward is added to the score for every cleared row.
	RowReward = 10
)

// Config fixes a board's geometry and piece generation for its whole life.
type Config struct {
	Rows    int
	Columns int

	// Scale is the side of one cell in pixels. The board ignores it; it is
	// carried in snapshots for renderers.
	Scale int

	// Seed feeds the default uniform source when Source is nil. Zero seeds
	// from the clock.
	Seed uint64

	// Source overrides how shapes are picked.
	Source ShapeSource

	// LegacyRotation makes clockwise rotation use the counter-clockwise
	// transform, matching the classic behaviour where both rotation keys
	// turn 3x3 pieces the same way.
	LegacyRotation bool
}

// DefaultConfig returns an 18x10 board with 35 pixel cells.
func DefaultConfig() Config {
	return Config{
		Rows:    DefaultRows,
		Columns: DefaultColumns,
		Scale:   DefaultScale,
	}
}

func (c Config) Validate() error {
	if c.Rows < MinDimension {
		return fmt.Errorf("%w: rows %d below minimum %d", ErrInvalidConfig, c.Rows, MinDimension)
	}
	if c.Columns < MinDimension {
		return fmt.Errorf("%w: columns %d below minimum %d", ErrInvalidConfig, c.Columns, MinDimension)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale %d must be positive", ErrInvalidConfig, c.Scale)
	}
	return nil
}

// SpawnOrigin is where every new piece's grid is anchored.
func (c Config) SpawnOrigin() Point {
	return Point{X: c.Columns/2 - 2, Y: 0}
}
