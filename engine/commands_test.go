package engine_test

import (
	"testing"

	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
	"github.com/stretchr/testify/assert"
)

// deferSystem queues a tick and a deferred read of the board.
type deferSystem struct {
	SeenY []int
}

func (s *deferSystem) Execute(frame *engine.UpdateFrame) {
	frame.Commands.Tick()
	frame.Commands.Defer(func() {
		s.SeenY = append(s.SeenY, frame.Board.Piece().Y)
	})
	frame.Commands.Tick()
}

func TestCommandsApplyBeforeDefers(t *testing.T) {
	board := newBoard(t, tetris.KindT)
	scheduler := engine.NewScheduler(board)
	sys := &deferSystem{}
	scheduler.Register(sys)

	scheduler.Once(0)
	scheduler.Once(0)

	assert.Equal(t, []int{2, 4}, sys.SeenY)
	assert.Equal(t, 4, board.Piece().Y)
}

func TestCommandsKeepQueueOrder(t *testing.T) {
	board := newBoard(t, tetris.KindI)
	scheduler := engine.NewScheduler(board)
	scheduler.Register(&scriptSystem{Commands: []tetris.Command{
		tetris.RotateRight,
		tetris.MoveRight,
		tetris.MoveRight,
		tetris.MoveRight,
		tetris.MoveRight,
		tetris.HardDrop,
	}})

	scheduler.Once(0)

	landing := board.LastLanding()
	assert.Equal(t, 1, board.Placed())
	assert.Equal(t, [4]tetris.Point{{X: 9, Y: 26}, {X: 9, Y: 27}, {X: 9, Y: 28}, {X: 9, Y: 29}}, landing.Cells)
}

type countSystem struct {
	Pending []int
}

func (s *countSystem) Execute(frame *engine.UpdateFrame) {
	s.Pending = append(s.Pending, frame.Commands.Len())
	frame.Commands.Queue(tetris.MoveLeft)
	s.Pending = append(s.Pending, frame.Commands.Len())
}

func TestCommandsResetEachFrame(t *testing.T) {
	scheduler := engine.NewScheduler(newBoard(t, tetris.KindT))
	sys := &countSystem{}
	scheduler.Register(sys)

	scheduler.Once(0)
	scheduler.Once(0)

	assert.Equal(t, []int{0, 1, 0, 1}, sys.Pending)
}
