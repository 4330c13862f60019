package game_test

import (
	"fmt"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

// ExampleSession shows a driving loop: gravity runs as a system while input
// arrives through Push, and the renderer reads snapshots.
func ExampleSession() {
	cfg := tetris.DefaultConfig()
	cfg.Source = tetris.NewSequenceSource(tetris.Square)

	board, err := tetris.NewBoard(cfg)
	if err != nil {
		panic(err)
	}

	session := game.NewSession(board)
	session.Register(&game.GravitySystem{Interval: 0.5})

	session.Push(game.MoveLeft)
	session.Once(0.5)

	snap := session.Snapshot()
	fmt.Printf("piece at %v\n", snap.Active[0])

	session.Push(game.HardDrop)
	session.Once(0.1)

	snap = session.Snapshot()
	fmt.Printf("locked: %v, score: %d\n", snap.Occupied(2, 17), snap.Score)

	// Output:
	// piece at {2 1}
	// locked: true, score: 0
}
