package engine

import "github.com/plus3/futris/tetris"

// InputSource yields the commands decoded since the previous poll.
type InputSource interface {
	Poll() []tetris.Command
}

// ChannelInput is an InputSource fed from another goroutine, typically a
// terminal or network event reader. Sends never block; commands arriving
// while the buffer is full are dropped.
type ChannelInput struct {
	ch chan tetris.Command
}

// NewChannelInput creates a ChannelInput holding up to buffer pending commands.
func NewChannelInput(buffer int) *ChannelInput {
	return &ChannelInput{ch: make(chan tetris.Command, buffer)}
}

// Send offers cmd to the frame loop and reports whether it was accepted.
func (c *ChannelInput) Send(cmd tetris.Command) bool {
	select {
	case c.ch <- cmd:
		return true
	default:
		return false
	}
}

// Poll drains every pending command without blocking.
func (c *ChannelInput) Poll() []tetris.Command {
	var cmds []tetris.Command
	for {
		select {
		case cmd := <-c.ch:
			cmds = append(cmds, cmd)
		default:
			return cmds
		}
	}
}

// InputSystem queues every command its source produced this frame.
type InputSystem struct {
	Source InputSource
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	for _, cmd := range s.Source.Poll() {
		frame.Commands.Queue(cmd)
	}
}
