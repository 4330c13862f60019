package game

import "github.com/plus3/blockfall/tetris"

// Action is a player command against the active piece.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	RotateClockwise
	RotateCounterClockwise
	// SoftDrop moves the piece down one row, locking it if it cannot move.
	SoftDrop
	// HardDrop drops the piece until it locks.
	HardDrop
)

var actionNames = [...]string{
	MoveLeft:               "MoveLeft",
	MoveRight:              "MoveRight",
	RotateClockwise:        "RotateClockwise",
	RotateCounterClockwise: "RotateCounterClockwise",
	SoftDrop:               "SoftDrop",
	HardDrop:               "HardDrop",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Action(?)"
}

// Apply performs the action on the board. It reports whether the piece kept
// falling: false when a drop locked it, true for every other action.
func Apply(board *tetris.Board, action Action) bool {
	switch action {
	case MoveLeft:
		board.MoveLeft()
	case MoveRight:
		board.MoveRight()
	case RotateClockwise:
		board.RotateClockwise()
	case RotateCounterClockwise:
		board.RotateCounterClockwise()
	case SoftDrop:
		return board.Tick()
	case HardDrop:
		board.HardDrop()
		return false
	}
	return true
}
