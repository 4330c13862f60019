package tetris_test

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// ExampleBoard drops a square next to a half-filled floor row. The row
// completes, is cleared and everything above it moves down.
func ExampleBoard() {
	cfg := tetris.DefaultConfig()
	cfg.Rows = 4
	cfg.Columns = 4
	cfg.Source = tetris.NewSequenceSource(tetris.Square)

	board, err := tetris.NewBoard(cfg)
	if err != nil {
		panic(err)
	}
	board.SetCell(2, 3, tetris.Hat)
	board.SetCell(3, 3, tetris.Hat)

	fmt.Print(board.Snapshot())

	rows := board.HardDrop()
	fmt.Printf("dropped %d rows, score %d\n", rows, board.Score())
	fmt.Print(board.Snapshot())

	// Output:
	// @@..
	// @@..
	// ....
	// ..##
	// dropped 2 rows, score 10
	// @@..
	// @@..
	// ....
	// ##..
}

// ExampleBoard_OnGameOver shows the terminal notification: the second piece
// cannot spawn because the first one locked right at the top.
func ExampleBoard_OnGameOver() {
	cfg := tetris.DefaultConfig()
	cfg.Source = tetris.NewSequenceSource(tetris.Square)

	board, err := tetris.NewBoard(cfg)
	if err != nil {
		panic(err)
	}
	board.SetCell(3, 2, tetris.Hat)
	board.OnGameOver(func(score int) {
		fmt.Println("final score:", score)
	})

	fmt.Println("moved:", board.Tick())
	fmt.Println("state:", board.State())

	// Output:
	// final score: 0
	// moved: false
	// state: GameOver
}
