package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/futris/tetris"
)

// Held keys repeat after repeatDelay ticks, then every repeatRate ticks.
const (
	repeatDelay = 12
	repeatRate  = 4
)

type binding struct {
	key     ebiten.Key
	command tetris.Command
	repeats bool
}

var keymap = []binding{
	{ebiten.KeyUp, tetris.RotateRight, false},
	{ebiten.KeyLeft, tetris.MoveLeft, true},
	{ebiten.KeyRight, tetris.MoveRight, true},
	{ebiten.KeyDown, tetris.SoftDrop, true},
	{ebiten.KeySpace, tetris.HardDrop, false},
}

// KeyboardInput is an engine.InputSource reading Ebiten key state.
type KeyboardInput struct {
	// Suspended reports whether another consumer, such as the ImGui
	// overlay, owns the keyboard this frame.
	Suspended func() bool

	buf []tetris.Command
}

func (k *KeyboardInput) Poll() []tetris.Command {
	k.buf = k.buf[:0]
	if k.Suspended != nil && k.Suspended() {
		return nil
	}

	for _, b := range keymap {
		if fires(inpututil.KeyPressDuration(b.key), b.repeats) {
			k.buf = append(k.buf, b.command)
		}
	}
	return k.buf
}

// fires reports whether a key held for duration ticks emits a command this tick.
func fires(duration int, repeats bool) bool {
	if duration == 1 {
		return true
	}
	if !repeats || duration < repeatDelay {
		return false
	}
	return (duration-repeatDelay)%repeatRate == 0
}
