package engine

import "github.com/plus3/futris/tetris"

// Commands buffers board mutations queued during a frame. Systems never touch
// the board directly; the Scheduler flushes the buffer once every system has
// run, so all mutations are applied serially and in queue order.
type Commands struct {
	ops    []op
	defers []func()
}

type opKind uint8

const (
	opCommand opKind = iota
	opTick
)

type op struct {
	kind opKind
	cmd  tetris.Command
}

func newCommands() *Commands {
	return &Commands{}
}

// Queue queues a player command.
func (c *Commands) Queue(cmd tetris.Command) {
	c.ops = append(c.ops, op{kind: opCommand, cmd: cmd})
}

// Tick queues one step of gravity.
func (c *Commands) Tick() {
	c.ops = append(c.ops, op{kind: opTick})
}

// Defer queues a function to run after every board mutation of the frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued board mutations.
func (c *Commands) Len() int {
	return len(c.ops)
}

// Flush applies every queued mutation to board, runs deferred functions and
// resets the buffer.
func (c *Commands) Flush(board *tetris.Playfield) {
	for _, o := range c.ops {
		switch o.kind {
		case opCommand:
			board.Apply(o.cmd)
		case opTick:
			board.Tick()
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.ops = c.ops[:0]
	c.defers = c.defers[:0]
}
