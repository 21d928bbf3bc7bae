package engine_test

import (
	"testing"

	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
	"github.com/stretchr/testify/require"
)

type fixedSource tetris.ShapeKind

func (f fixedSource) IntN(int) int { return int(f) }

func newBoard(t *testing.T, kind tetris.ShapeKind) *tetris.Playfield {
	t.Helper()
	board, err := tetris.NewPlayfield(tetris.DefaultConfig(), fixedSource(kind))
	require.NoError(t, err)
	return board
}

// endGame stacks hard drops until the board tops out.
func endGame(t *testing.T, board *tetris.Playfield) {
	t.Helper()
	for i := 0; i < 100 && board.InProgress(); i++ {
		board.Apply(tetris.HardDrop)
	}
	require.False(t, board.InProgress())
}

// scriptSystem queues a fixed list of commands on its first frame.
type scriptSystem struct {
	Commands     []tetris.Command
	ExecuteCount int
}

func (s *scriptSystem) Execute(frame *engine.UpdateFrame) {
	if s.ExecuteCount == 0 {
		for _, cmd := range s.Commands {
			frame.Commands.Queue(cmd)
		}
	}
	s.ExecuteCount++
}
