package game

import (
	"context"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// SchedulerStats provides statistics about session frames.
type SchedulerStats struct {
	SystemCount int
	Frames      int64
	Actions     int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Result is delivered once when a session's game ends.
type Result struct {
	Score  int
	Lines  int
	Pieces int
}

// Session is the single writer of a board. Input from any goroutine is
// queued with Push or applied through the synchronous methods; the driving
// loop calls Once or Run. Every access to the board, including snapshots,
// happens under one lock, so renderers never see a half-applied lock.
type Session struct {
	mu          sync.Mutex
	board       *tetris.Board
	input       *Commands
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
	actions     int64

	done       chan struct{}
	over       bool
	result     Result
	onGameOver []func(Result)
}

// NewSession takes ownership of board. Callers must not use the board
// directly afterwards.
func NewSession(board *tetris.Board) *Session {
	if board == nil {
		panic("game: nil board")
	}

	s := &Session{
		board: board,
		input: newCommands(),
		done:  make(chan struct{}),
	}
	board.OnGameOver(s.end)

	if board.State() == tetris.GameOver {
		s.end(board.Score())
		close(s.done)
	}

	return s
}

func (s *Session) end(score int) {
	stats := s.board.Stats()
	s.over = true
	s.result = Result{
		Score:  score,
		Lines:  stats.Rows,
		Pieces: stats.TotalSpawned(),
	}
}

// Register appends a system to the per-frame pipeline.
func (s *Session) Register(system System) {
	if system == nil {
		panic("game: nil system")
	}

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// OnGameOver registers fn to receive the result when the game ends. It runs
// outside the session lock, so it may call back into the session. If the game
// has already ended, fn is called before OnGameOver returns.
func (s *Session) OnGameOver(fn func(Result)) {
	s.mu.Lock()
	if s.over {
		result := s.result
		s.mu.Unlock()
		fn(result)
		return
	}
	s.onGameOver = append(s.onGameOver, fn)
	s.mu.Unlock()
}

// Push queues an action for the next frame. Safe from any goroutine.
func (s *Session) Push(action Action) {
	s.input.Push(action)
}

// Apply performs an action immediately under the session lock.
func (s *Session) Apply(action Action) bool {
	return s.mutate(func(b *tetris.Board) bool {
		s.actions++
		return Apply(b, action)
	})
}

// Tick moves the active piece down one row immediately, as Board.Tick.
func (s *Session) Tick() bool {
	return s.mutate(func(b *tetris.Board) bool {
		return b.Tick()
	})
}

// HardDrop drops the active piece immediately and returns the rows it fell.
func (s *Session) HardDrop() int {
	var rows int
	s.mutate(func(b *tetris.Board) bool {
		rows = b.HardDrop()
		return false
	})
	return rows
}

func (s *Session) mutate(fn func(*tetris.Board) bool) bool {
	s.mu.Lock()
	wasOver := s.over
	ok := fn(s.board)
	notify := s.finishLocked(wasOver)
	s.mu.Unlock()

	notify()
	return ok
}

// Once runs one frame: queued input, then every system in order, then the
// commands systems queued. dt is the frame time in seconds.
func (s *Session) Once(dt float64) {
	s.mu.Lock()
	wasOver := s.over

	frame := newUpdateFrame(dt, s.board, s.statsLocked())
	s.actions += int64(s.input.Flush(s.board))

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.actions += int64(frame.Commands.Flush(s.board))
	s.frames++

	notify := s.finishLocked(wasOver)
	s.mu.Unlock()

	notify()
}

// finishLocked closes Done on the transition to game over and returns the
// callbacks to run once the lock is released.
func (s *Session) finishLocked(wasOver bool) func() {
	if wasOver || !s.over {
		return func() {}
	}

	close(s.done)
	result := s.result
	callbacks := slices.Clone(s.onGameOver)
	return func() {
		for _, fn := range callbacks {
			fn(result)
		}
	}
}

// Run calls Once every interval until the game ends, returning nil, or ctx
// is done, returning its error.
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Snapshot returns a consistent copy of the board for rendering.
func (s *Session) Snapshot() tetris.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Snapshot()
}

// Done is closed when the game ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Result returns the final result once the game has ended.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.over
}

// Stats returns statistics about frame execution.
func (s *Session) Stats() *SchedulerStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked()
}

func (s *Session) statsLocked() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Actions:     s.actions,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
