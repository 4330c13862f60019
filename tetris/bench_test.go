package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
)

func BenchmarkTick(b *testing.B) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 1
	board, _ := tetris.NewBoard(cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if board.State() == tetris.GameOver {
			b.StopTimer()
			board, _ = tetris.NewBoard(cfg)
			b.StartTimer()
		}
		board.Tick()
	}
}

func BenchmarkRotate(b *testing.B) {
	board := newTestBoard(b, tetris.DefaultRows, tetris.DefaultColumns, tetris.Hat)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.RotateClockwise()
	}
}

func BenchmarkSnapshot(b *testing.B) {
	board := newTestBoard(b, tetris.DefaultRows, tetris.DefaultColumns, tetris.Square)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Snapshot()
	}
}

func BenchmarkClearRows(b *testing.B) {
	board := newTestBoard(b, tetris.DefaultRows, tetris.DefaultColumns, tetris.Square)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for x := range board.Columns() {
			board.SetCell(x, board.Rows()-1, tetris.Tower)
		}
		b.StartTimer()
		board.ClearCompletedRows()
	}
}
