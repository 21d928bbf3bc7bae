package main

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
)

type control uint8

const (
	controlRestart control = iota
	controlRedraw
)

// commandFor maps a key event to a board command. Arrow keys and the vi
// motions h, j, k, l are both accepted.
func commandFor(ev *tcell.EventKey) (tetris.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return tetris.RotateRight, true
	case tcell.KeyLeft:
		return tetris.MoveLeft, true
	case tcell.KeyRight:
		return tetris.MoveRight, true
	case tcell.KeyDown:
		return tetris.SoftDrop, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return tetris.RotateRight, true
		case 'h':
			return tetris.MoveLeft, true
		case 'l':
			return tetris.MoveRight, true
		case 'j':
			return tetris.SoftDrop, true
		case ' ':
			return tetris.HardDrop, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func isRestart(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'r'
}

// readEvents translates terminal events until the screen is finalized or the
// player quits. It runs on its own goroutine; PollEvent blocks.
func readEvents(screen tcell.Screen, input *engine.ChannelInput, controls chan<- control, cancel context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			send(controls, controlRedraw)
		case *tcell.EventKey:
			switch {
			case isQuit(ev):
				cancel()
				return
			case isRestart(ev):
				send(controls, controlRestart)
			default:
				if cmd, ok := commandFor(ev); ok && !input.Send(cmd) {
					log.Printf("Dropped %s: input buffer full", cmd)
				}
			}
		}
	}
}

func send(controls chan<- control, c control) {
	select {
	case controls <- c:
	default:
	}
}

// ControlSystem handles restart and redraw requests on the frame goroutine.
type ControlSystem struct {
	Requests <-chan control
	Session  *engine.Session
	Screen   tcell.Screen
}

func (s *ControlSystem) Execute(frame *engine.UpdateFrame) {
	for {
		select {
		case c := <-s.Requests:
			s.handle(frame, c)
		default:
			return
		}
	}
}

func (s *ControlSystem) handle(frame *engine.UpdateFrame, c control) {
	switch c {
	case controlRedraw:
		frame.Commands.Defer(s.Screen.Sync)
	case controlRestart:
		if frame.Board.InProgress() {
			return
		}
		frame.Commands.Defer(func() {
			if err := s.Session.Restart(); err != nil {
				log.Printf("Restart failed: %v", err)
				return
			}
			log.Printf("Game %d started", s.Session.Games())
		})
	}
}
