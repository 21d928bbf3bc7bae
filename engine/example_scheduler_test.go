package engine_test

import (
	"fmt"

	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
)

// ScoreSystem reports the score once per frame after the previous frame's
// commands have been applied.
type ScoreSystem struct{}

func (s *ScoreSystem) Execute(frame *engine.UpdateFrame) {
	board := frame.Board
	frame.Commands.Defer(func() {
		fmt.Printf("placed=%d score=%d\n", board.Placed(), board.Score())
	})
}

// ExampleSession builds a game loop out of systems. Input and gravity only
// queue commands; the scheduler applies them to the board in order once every
// system of the frame has run, then executes deferred functions.
func ExampleSession() {
	input := engine.NewChannelInput(8)
	session, err := engine.NewSession(tetris.DefaultConfig(), tetris.NewSource(1),
		&engine.InputSystem{Source: input},
		&engine.GravitySystem{Curve: engine.DefaultCurve()},
		&ScoreSystem{},
	)
	if err != nil {
		panic(err)
	}

	input.Send(tetris.MoveLeft)
	session.Update(1.0 / 60)

	input.Send(tetris.HardDrop)
	session.Update(1.0 / 60)

	fmt.Println("in progress:", session.Board().InProgress())

	// Output:
	// placed=0 score=0
	// placed=1 score=0
	// in progress: true
}
