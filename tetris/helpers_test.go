package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays kinds in order, wrapping around.
type scriptedSource struct {
	kinds []ShapeKind
	calls int
}

func script(kinds ...ShapeKind) *scriptedSource {
	return &scriptedSource{kinds: kinds}
}

func (s *scriptedSource) IntN(n int) int {
	k := s.kinds[s.calls%len(s.kinds)]
	s.calls++
	return int(k) % n
}

func newBoard(t *testing.T, kinds ...ShapeKind) *Playfield {
	t.Helper()
	board, err := NewPlayfield(DefaultConfig(), script(kinds...))
	require.NoError(t, err)
	return board
}

// fill settles every column of row y except the listed holes.
func fill(p *Playfield, y int, holes ...int) {
	for x := 0; x < p.cfg.Width; x++ {
		skip := false
		for _, h := range holes {
			if h == x {
				skip = true
			}
		}
		if !skip {
			p.cells[p.index(x, y)] = Settled(Color(KindZ))
		}
	}
}

func settledCount(p *Playfield) int {
	n := 0
	for range p.Settled() {
		n++
	}
	return n
}

func applyAll(p *Playfield, cmds ...Command) {
	for _, cmd := range cmds {
		p.Apply(cmd)
	}
}
