package engine

import "github.com/plus3/futris/tetris"

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Board     *tetris.Playfield
}

func newUpdateFrame(dt float64, board *tetris.Playfield) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Board:     board,
	}
}
