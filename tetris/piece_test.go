package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPieceSpawnsAtOrigin(t *testing.T) {
	p := NewPiece(KindS, 10)
	assert.Equal(t, Piece{X: 4, Y: 0, Kind: KindS, Rotation: 0}, p)
	assert.Equal(t, [4]Point{{5, 0}, {6, 0}, {4, 1}, {5, 1}}, p.Cells())
	assert.Equal(t, Color(KindS), p.Color())
}

func TestPieceCandidatesDoNotMutate(t *testing.T) {
	p := Piece{X: 2, Y: 5, Kind: KindT}

	assert.Equal(t, [4]Point{{2, 5}, {1, 6}, {2, 6}, {3, 6}}, p.Offset(-1, 0))
	assert.Equal(t, [4]Point{{3, 6}, {2, 7}, {3, 7}, {4, 7}}, p.Offset(0, 1))
	assert.Equal(t, [4]Point{{3, 5}, {3, 6}, {3, 7}, {4, 6}}, p.Rotated())

	assert.Equal(t, Piece{X: 2, Y: 5, Kind: KindT}, p)
}

func TestPieceRotationClosure(t *testing.T) {
	for _, kind := range Kinds {
		p := Piece{X: 3, Y: 3, Kind: kind}
		start := p.Cells()
		for range 4 {
			p.rotate()
		}
		assert.Equal(t, 0, p.Rotation)
		assert.Equal(t, start, p.Cells(), "kind %s", kind)
	}
}
