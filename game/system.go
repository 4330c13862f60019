package game

import "github.com/plus3/blockfall/tetris"

// System is a behaviour run by a Session once per frame, in registration
// order. Systems may mutate the board directly: they run on the session's
// single writer.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is what a system sees during one Session.Once call.
type UpdateFrame struct {
	DeltaTime float64
	Board     *tetris.Board
	// Commands is flushed into Board after every system ran.
	Commands *Commands
	// Stats is the scheduler state at the start of the frame.
	Stats *SchedulerStats
}

func newUpdateFrame(dt float64, board *tetris.Board, stats *SchedulerStats) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Board:     board,
		Commands:  newCommands(),
		Stats:     stats,
	}
}

// DefaultGravity is the reference fall rate of two rows per second.
const DefaultGravity = 0.5

// GravitySystem ticks the board once every Interval seconds of frame time.
// A long frame catches up with several ticks.
type GravitySystem struct {
	Interval    float64
	accumulator float64
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultGravity
	}

	s.accumulator += frame.DeltaTime
	for s.accumulator >= interval {
		s.accumulator -= interval
		frame.Board.Tick()
	}
}
