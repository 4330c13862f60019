package game

import (
	"sync"

	"github.com/plus3/blockfall/tetris"
)

// Commands buffers player actions and deferred functions until the session
// owner flushes them into the board. Pushing is safe from any goroutine;
// only the owner flushes.
type Commands struct {
	mu      sync.Mutex
	actions []Action
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues an action.
func (c *Commands) Push(action Action) {
	c.mu.Lock()
	c.actions = append(c.actions, action)
	c.mu.Unlock()
}

// Defer queues a function to run after all queued actions were applied.
// Functions deferred on an UpdateFrame run on the session's writer with the
// session lock held; they must use the frame's board, not the Session.
func (c *Commands) Defer(fn func()) {
	c.mu.Lock()
	c.defers = append(c.defers, fn)
	c.mu.Unlock()
}

// Len returns the number of queued actions.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.actions)
}

// Flush applies queued actions in order, then runs deferred functions, and
// resets the buffer. Actions queued while flushing wait for the next flush.
// It returns the number of actions applied.
func (c *Commands) Flush(board *tetris.Board) int {
	c.mu.Lock()
	actions := c.actions
	defers := c.defers
	c.actions = nil
	c.defers = nil
	c.mu.Unlock()

	for _, action := range actions {
		Apply(board, action)
	}

	for _, fn := range defers {
		fn()
	}

	return len(actions)
}
