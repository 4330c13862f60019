package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	b := newTestBoard(t, tetris.DefaultRows, tetris.DefaultColumns, tetris.Square)
	fill(t, b, tetris.Hat, tetris.Point{X: 0, Y: 17})

	snap := b.Snapshot()

	assert.Equal(t, tetris.DefaultRows, snap.Rows)
	assert.Equal(t, tetris.DefaultColumns, snap.Columns)
	assert.Equal(t, tetris.DefaultScale, snap.Scale)
	assert.Equal(t, tetris.Square, snap.ActiveShape)
	assert.Equal(t, tetris.Amber, snap.ActiveColor)
	assert.Equal(t, []tetris.Point{{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 1}}, snap.Active)
	assert.Equal(t, []tetris.Point{{X: 3, Y: 16}, {X: 4, Y: 16}, {X: 3, Y: 17}, {X: 4, Y: 17}}, snap.Ghost)
	assert.Equal(t, tetris.Active, snap.State)
	assert.True(t, snap.Occupied(0, 17))
	assert.Equal(t, tetris.Hat, snap.At(0, 17))
	assert.Equal(t, tetris.NoShape, snap.At(-1, 17))
	assert.Equal(t, 1, snap.Stats.Spawned(tetris.Square))
}

func TestSnapshotIsIndependent(t *testing.T) {
	b := newTestBoard(t, tetris.DefaultRows, tetris.DefaultColumns, tetris.Square)

	snap := b.Snapshot()
	snap.Cells[17][0] = tetris.Hat
	snap.Active[0] = tetris.Point{X: 9, Y: 9}

	assert.Equal(t, tetris.NoShape, b.Cell(0, 17))
	assert.Equal(t, tetris.Point{X: 3, Y: 0}, b.Active().Origin())

	b.HardDrop()
	assert.False(t, snap.Occupied(3, 17), "old snapshot does not see later moves")
}

func TestSnapshotString(t *testing.T) {
	b := newTestBoard(t, 4, 4, tetris.Square)
	fill(t, b, tetris.Hat, tetris.Point{X: 3, Y: 3})

	assert.Equal(t, "@@..\n@@..\n....\n...#\n", b.Snapshot().String())
}
