package tetris

import "image/color"

//go:generate go tool stringer -type=ShapeKind -trimprefix=Kind

// ShapeKind identifies one of the seven tetrominoes.
type ShapeKind uint8

const (
	KindI ShapeKind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// NumKinds is the size of the ShapeKind domain.
const NumKinds = 7

// Kinds lists every ShapeKind in declaration order.
var Kinds = [NumKinds]ShapeKind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// Point is a (column, row) pair. Rows grow downwards.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

type shapeDef struct {
	tiles  [4][4]Point
	color  color.RGBA
	offset int // spawn column relative to width/2
}

// Offsets are hand-authored per rotation instead of rotated around a pivot.
var shapeTable = [NumKinds]shapeDef{
	KindI: {
		tiles: [4][4]Point{
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		},
		color:  color.RGBA{R: 0, G: 186, B: 212, A: 255},
		offset: -2,
	},
	KindO: {
		tiles: [4][4]Point{
			{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		},
		color:  color.RGBA{R: 255, G: 235, B: 59, A: 255},
		offset: -2,
	},
	KindT: {
		tiles: [4][4]Point{
			{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
			{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {0, 1}},
		},
		color:  color.RGBA{R: 156, G: 38, B: 176, A: 255},
		offset: -2,
	},
	KindS: {
		tiles: [4][4]Point{
			{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		},
		color:  color.RGBA{R: 140, G: 194, B: 74, A: 255},
		offset: -1,
	},
	KindZ: {
		tiles: [4][4]Point{
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
			{{2, 0}, {2, 1}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
			{{1, 0}, {1, 1}, {0, 1}, {0, 2}},
		},
		color:  color.RGBA{R: 242, G: 66, B: 54, A: 255},
		offset: -2,
	},
	KindJ: {
		tiles: [4][4]Point{
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{2, 0}, {2, 1}, {2, 2}, {1, 2}},
		},
		color:  color.RGBA{R: 33, G: 150, B: 242, A: 255},
		offset: -2,
	},
	KindL: {
		tiles: [4][4]Point{
			{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		},
		color:  color.RGBA{R: 255, G: 153, B: 0, A: 255},
		offset: -2,
	},
}

// normalizeRotation maps any integer onto 0..3.
func normalizeRotation(rotation int) int {
	return ((rotation % 4) + 4) % 4
}

// Valid reports whether k is one of the seven kinds.
func (k ShapeKind) Valid() bool {
	return k < NumKinds
}

// Tiles returns the four local offsets of kind in the given rotation state.
func Tiles(kind ShapeKind, rotation int) [4]Point {
	return shapeTable[kind%NumKinds].tiles[normalizeRotation(rotation)]
}

// Color returns the color settled cells of kind are painted with.
func Color(kind ShapeKind) color.RGBA {
	return shapeTable[kind%NumKinds].color
}

// SpawnOrigin returns the column a new piece of kind is anchored at so that
// it appears centered on a board of the given width.
func SpawnOrigin(kind ShapeKind, width int) int {
	return width/2 + shapeTable[kind%NumKinds].offset
}
