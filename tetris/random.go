package tetris

import "math/rand/v2"

// Source produces uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed Source seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomKind draws a kind uniformly from all seven. Samples a misbehaving
// source returns outside [0, NumKinds) are folded back into range.
func RandomKind(src Source) ShapeKind {
	n := src.IntN(NumKinds) % NumKinds
	if n < 0 {
		n += NumKinds
	}
	return ShapeKind(n)
}

// RandomPiece returns a freshly spawned piece of a random kind.
func RandomPiece(src Source, width int) Piece {
	return NewPiece(RandomKind(src), width)
}
