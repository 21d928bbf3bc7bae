package tetris

import "image/color"

// Piece is the falling tetromino. X and Y anchor the top-left corner of the
// shape's local frame in board coordinates.
type Piece struct {
	X, Y     int
	Kind     ShapeKind
	Rotation int
}

// NewPiece returns a piece of kind in rotation 0 at the spawn position for a
// board of the given width.
func NewPiece(kind ShapeKind, width int) Piece {
	return Piece{
		X:    SpawnOrigin(kind, width),
		Y:    0,
		Kind: kind,
	}
}

// Cells returns the absolute cells the piece occupies.
func (p Piece) Cells() [4]Point {
	return p.cellsAt(p.Rotation, 0, 0)
}

// Offset returns the cells the piece would occupy after moving by (dx, dy).
func (p Piece) Offset(dx, dy int) [4]Point {
	return p.cellsAt(p.Rotation, dx, dy)
}

// Rotated returns the cells the piece would occupy after one clockwise turn.
func (p Piece) Rotated() [4]Point {
	return p.cellsAt(p.Rotation+1, 0, 0)
}

// Color is the color of the piece's kind.
func (p Piece) Color() color.RGBA {
	return Color(p.Kind)
}

func (p Piece) cellsAt(rotation, dx, dy int) [4]Point {
	tiles := Tiles(p.Kind, rotation)
	origin := Point{X: p.X + dx, Y: p.Y + dy}
	for i := range tiles {
		tiles[i] = tiles[i].Add(origin)
	}
	return tiles
}

func (p *Piece) rotate() {
	p.Rotation = normalizeRotation(p.Rotation + 1)
}
