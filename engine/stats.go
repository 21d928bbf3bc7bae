package engine

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/futris/tetris"
)

// Stats accumulates placement statistics across every game of a session.
// It observes boards through tetris.LandingObserver.
type Stats struct {
	kinds  *intmap.Map[tetris.ShapeKind, int]
	clears *intmap.Map[int, int]
	games  int
	best   int
}

func NewStats() *Stats {
	return &Stats{
		kinds:  intmap.New[tetris.ShapeKind, int](tetris.NumKinds),
		clears: intmap.New[int, int](4),
	}
}

// Landed implements tetris.LandingObserver.
func (s *Stats) Landed(board *tetris.Playfield, landing tetris.Landing) {
	n, _ := s.kinds.Get(landing.Kind)
	s.kinds.Put(landing.Kind, n+1)

	if landing.Lines > 0 {
		c, _ := s.clears.Get(landing.Lines)
		s.clears.Put(landing.Lines, c+1)
	}

	if board.Score() > s.best {
		s.best = board.Score()
	}
	if landing.GameOver {
		s.games++
	}
}

// Placed returns how many pieces of kind have landed.
func (s *Stats) Placed(kind tetris.ShapeKind) int {
	n, _ := s.kinds.Get(kind)
	return n
}

// Kinds returns placement counts indexed by ShapeKind.
func (s *Stats) Kinds() [tetris.NumKinds]int {
	var out [tetris.NumKinds]int
	for _, kind := range tetris.Kinds {
		out[kind] = s.Placed(kind)
	}
	return out
}

// Clears returns how many placements cleared exactly lines rows.
func (s *Stats) Clears(lines int) int {
	n, _ := s.clears.Get(lines)
	return n
}

// Tetrises is shorthand for Clears(4).
func (s *Stats) Tetrises() int {
	return s.Clears(4)
}

// Finished returns how many games have ended.
func (s *Stats) Finished() int {
	return s.games
}

// BestScore returns the highest score any observed board reached.
func (s *Stats) BestScore() int {
	return s.best
}

// Reset discards every counter.
func (s *Stats) Reset() {
	s.kinds.Clear()
	s.clears.Clear()
	s.games = 0
	s.best = 0
}
