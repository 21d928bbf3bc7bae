package tetris_test

import (
	"fmt"

	"github.com/plus3/futris/tetris"
)

type fixedSource tetris.ShapeKind

func (f fixedSource) IntN(int) int { return int(f) }

// ExamplePlayfield drives a board through a few commands and a hard drop.
// The board only changes through Apply and Tick, so a driver can read its
// state at any point between calls.
func ExamplePlayfield() {
	board, err := tetris.NewPlayfield(tetris.DefaultConfig(), fixedSource(tetris.KindI))
	if err != nil {
		panic(err)
	}

	board.Apply(tetris.MoveLeft)
	board.Tick()
	fmt.Println("piece at", board.Piece().X, board.Piece().Y)

	board.Apply(tetris.HardDrop)
	for cell := range board.Settled() {
		fmt.Println("settled", cell.X, cell.Y)
	}
	fmt.Println("placed", board.Placed(), "in progress", board.InProgress())

	// Output:
	// piece at 2 1
	// settled 2 29
	// settled 3 29
	// settled 4 29
	// settled 5 29
	// placed 1 in progress true
}
