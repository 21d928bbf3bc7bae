package main

import (
	"github.com/plus3/futris/tetris"
)

// RandomInput is an engine.InputSource emitting up to perFrame uniformly
// chosen commands on every poll.
type RandomInput struct {
	src      tetris.Source
	perFrame int
	buf      []tetris.Command
}

func NewRandomInput(src tetris.Source, perFrame int) *RandomInput {
	return &RandomInput{
		src:      src,
		perFrame: max(perFrame, 0),
	}
}

func (r *RandomInput) Poll() []tetris.Command {
	r.buf = r.buf[:0]
	if r.perFrame == 0 {
		return r.buf
	}

	n := r.src.IntN(r.perFrame + 1)
	for range n {
		r.buf = append(r.buf, tetris.AllCommands[r.src.IntN(len(tetris.AllCommands))])
	}
	return r.buf
}
