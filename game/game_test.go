package game_test

import (
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/require"
)

func newBoard(t testing.TB, shapes ...tetris.Shape) *tetris.Board {
	t.Helper()

	cfg := tetris.DefaultConfig()
	cfg.Source = tetris.NewSequenceSource(shapes...)

	b, err := tetris.NewBoard(cfg)
	require.NoError(t, err)
	return b
}

// recordingSystem remembers what it saw each frame.
type recordingSystem struct {
	frames []float64
	scores []int
}

func (s *recordingSystem) Execute(frame *game.UpdateFrame) {
	s.frames = append(s.frames, frame.DeltaTime)
	s.scores = append(s.scores, frame.Board.Score())
}

// queueingSystem pushes an action through the frame's command buffer.
type queueingSystem struct {
	action game.Action
}

func (s *queueingSystem) Execute(frame *game.UpdateFrame) {
	frame.Commands.Push(s.action)
}
