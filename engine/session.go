package engine

import (
	"fmt"

	"github.com/plus3/futris/tetris"
)

// Session owns a board, the scheduler driving it and statistics spanning
// every game played. GameOver is terminal for a board; Restart replaces it.
type Session struct {
	cfg       tetris.Config
	src       tetris.Source
	stats     *Stats
	scheduler *Scheduler
	started   int
}

// NewSession builds the first board and registers systems on a scheduler
// bound to it.
func NewSession(cfg tetris.Config, src tetris.Source, systems ...System) (*Session, error) {
	s := &Session{
		cfg:   cfg,
		src:   src,
		stats: NewStats(),
	}

	board, err := s.newBoard()
	if err != nil {
		return nil, err
	}

	s.scheduler = NewScheduler(board)
	for _, system := range systems {
		s.scheduler.Register(system)
	}
	return s, nil
}

func (s *Session) newBoard() (*tetris.Playfield, error) {
	board, err := tetris.NewPlayfield(s.cfg, s.src, s.stats)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.started++
	return board, nil
}

// Restart discards the current board and starts a new game.
func (s *Session) Restart() error {
	board, err := s.newBoard()
	if err != nil {
		return err
	}
	s.scheduler.Reset(board)
	return nil
}

// Update runs one frame.
func (s *Session) Update(dt float64) {
	s.scheduler.Once(dt)
}

func (s *Session) Board() *tetris.Playfield { return s.scheduler.Board() }
func (s *Session) Scheduler() *Scheduler     { return s.scheduler }
func (s *Session) Stats() *Stats             { return s.stats }
func (s *Session) Config() tetris.Config     { return s.cfg }

// Games returns how many boards the session has started.
func (s *Session) Games() int { return s.started }
