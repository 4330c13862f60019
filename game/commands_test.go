package game_test

import (
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	b := newBoard(t, tetris.Hat)
	start := b.Active().Origin()

	assert.True(t, game.Apply(b, game.MoveLeft))
	assert.Equal(t, start.X-1, b.Active().Origin().X)

	assert.True(t, game.Apply(b, game.MoveRight))
	assert.Equal(t, start, b.Active().Origin())

	before := b.Active().Cells()
	assert.True(t, game.Apply(b, game.RotateClockwise))
	assert.NotEqual(t, before, b.Active().Cells())
	assert.True(t, game.Apply(b, game.RotateCounterClockwise))
	assert.Equal(t, before, b.Active().Cells())

	assert.True(t, game.Apply(b, game.SoftDrop))
	assert.Equal(t, start.Y+1, b.Active().Origin().Y)

	assert.False(t, game.Apply(b, game.HardDrop))
	assert.Equal(t, 1, b.Stats().Locked)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "HardDrop", game.HardDrop.String())
	assert.Equal(t, "Action(?)", game.Action(200).String())
}

func TestCommandsFlushInOrder(t *testing.T) {
	b := newBoard(t, tetris.Square)
	s := game.NewSession(b)

	s.Push(game.MoveLeft)
	s.Push(game.MoveLeft)
	s.Push(game.MoveRight)
	s.Once(0)

	assert.Equal(t, 2, s.Snapshot().Active[0].X)
}

func TestCommandsDeferRunsAfterActions(t *testing.T) {
	b := newBoard(t, tetris.Square)

	var c game.Commands
	var seenX int
	c.Push(game.MoveRight)
	c.Defer(func() { seenX = b.Active().Origin().X })
	c.Push(game.MoveRight)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.Flush(b))
	assert.Equal(t, 5, seenX)
	assert.Equal(t, 0, c.Len())

	assert.Equal(t, 0, c.Flush(b), "flush resets the buffer")
}
