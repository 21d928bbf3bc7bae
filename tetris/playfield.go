package tetris

import (
	"fmt"
	"image/color"
	"iter"
)

// maxClearRows bounds how many rows a single four-cell piece can complete.
const maxClearRows = 4

// Cell is one square of the settled grid: either empty or settled with the
// color of the piece that landed there.
type Cell struct {
	color   color.RGBA
	settled bool
}

// Empty is the unoccupied cell.
var Empty = Cell{}

// Settled returns a cell occupied with color c.
func Settled(c color.RGBA) Cell {
	return Cell{color: c, settled: true}
}

// IsSettled reports whether the cell is occupied.
func (c Cell) IsSettled() bool {
	return c.settled
}

// Color returns the settled color. Empty cells report the zero color.
func (c Cell) Color() color.RGBA {
	return c.color
}

// Landing records the outcome of a single piece placement.
type Landing struct {
	Kind     ShapeKind
	Cells    [4]Point
	Rows     []int // cleared row indices, top to bottom
	Lines    int
	Points   int
	GameOver bool
}

// LandingObserver is notified after every placement, once the board has been
// compacted and the next piece assigned.
type LandingObserver interface {
	Landed(board *Playfield, landing Landing)
}

// Playfield is the board state machine. It is the only mutator of its grid
// and active piece; every change goes through Apply or Tick.
type Playfield struct {
	cfg       Config
	src       Source
	observers []LandingObserver

	inProgress bool
	cells      []Cell // row-major, cfg.Width*cfg.Height
	piece      Piece
	score      int
	lines      int
	placed     int
	last       Landing
}

// NewPlayfield creates an in-progress board with an empty grid and a random
// first piece drawn from src.
func NewPlayfield(cfg Config, src Source, observers ...LandingObserver) (*Playfield, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new playfield: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("new playfield: %w: nil random source", ErrInvalidConfig)
	}

	p := &Playfield{
		cfg:        cfg,
		src:        src,
		observers:  observers,
		inProgress: true,
		cells:      make([]Cell, cfg.Width*cfg.Height),
	}
	p.spawn()
	return p, nil
}

// Apply executes a player command. Commands after game over and unknown
// commands are ignored.
func (p *Playfield) Apply(cmd Command) {
	if !p.inProgress {
		return
	}

	switch cmd {
	case RotateRight:
		p.rotate()
	case MoveLeft:
		p.shift(-1)
	case MoveRight:
		p.shift(1)
	case SoftDrop:
		p.gravity()
	case HardDrop:
		p.drop()
	}
}

// Tick applies one step of gravity.
func (p *Playfield) Tick() {
	if !p.inProgress {
		return
	}
	p.gravity()
}

// IllegalPosition reports whether any of cells lies left, right or below the
// board, or on a settled cell. Cells above the top row are legal.
func (p *Playfield) IllegalPosition(cells [4]Point) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= p.cfg.Width || c.Y >= p.cfg.Height {
			return true
		}
		if c.Y >= 0 && p.cells[p.index(c.X, c.Y)].settled {
			return true
		}
	}
	return false
}

func (p *Playfield) rotate() {
	if !p.IllegalPosition(p.piece.Rotated()) {
		p.piece.rotate()
	}
}

func (p *Playfield) shift(dx int) {
	if !p.IllegalPosition(p.piece.Offset(dx, 0)) {
		p.piece.X += dx
	}
}

func (p *Playfield) gravity() {
	if p.IllegalPosition(p.piece.Offset(0, 1)) {
		p.land()
		return
	}
	p.piece.Y++
}

func (p *Playfield) drop() {
	for !p.IllegalPosition(p.piece.Offset(0, 1)) {
		p.piece.Y++
	}
	p.land()
}

func (p *Playfield) land() {
	cells := p.piece.Cells()
	landing := Landing{Kind: p.piece.Kind, Cells: cells}

	settled := Settled(p.piece.Color())
	for _, c := range cells {
		if p.inBounds(c.X, c.Y) {
			p.cells[p.index(c.X, c.Y)] = settled
		}
	}
	p.placed++

	if lockedOut(cells) {
		p.inProgress = false
		landing.GameOver = true
	} else {
		landing.Rows = p.fullRows()
		landing.Lines = len(landing.Rows)
		if landing.Lines > 0 {
			p.clearRows(landing.Rows)
			landing.Points = landing.Lines * landing.Lines * p.cfg.ScorePerLine
			p.score += landing.Points
			p.lines += landing.Lines
		}
	}

	p.spawn()
	landing.GameOver = landing.GameOver || !p.inProgress
	p.last = landing

	for _, o := range p.observers {
		o.Landed(p, landing)
	}
}

// lockedOut reports whether a landed piece touches the top row or above it.
// Only the just landed cells are inspected.
func lockedOut(cells [4]Point) bool {
	for _, c := range cells {
		if c.Y <= 0 {
			return true
		}
	}
	return false
}

func (p *Playfield) fullRows() []int {
	var rows []int
	for y := 0; y < p.cfg.Height; y++ {
		if p.rowFull(y) {
			rows = append(rows, y)
			if len(rows) == maxClearRows {
				break
			}
		}
	}
	return rows
}

func (p *Playfield) rowFull(y int) bool {
	row := p.cells[y*p.cfg.Width : (y+1)*p.cfg.Width]
	for _, c := range row {
		if !c.settled {
			return false
		}
	}
	return true
}

// clearRows removes the given rows (sorted ascending) and drops every row
// above by the number of cleared rows beneath it. The vacated top rows are
// emptied.
func (p *Playfield) clearRows(rows []int) {
	w := p.cfg.Width
	write := rows[len(rows)-1]
	next := len(rows) - 1
	for read := write; read >= 0; read-- {
		if next >= 0 && rows[next] == read {
			next--
			continue
		}
		if read != write {
			copy(p.cells[write*w:(write+1)*w], p.cells[read*w:(read+1)*w])
		}
		write--
	}
	for y := write; y >= 0; y-- {
		clear(p.cells[y*w : (y+1)*w])
	}
}

// spawn assigns a new random piece. A piece that cannot appear without
// overlapping settled cells ends the game.
func (p *Playfield) spawn() {
	p.piece = RandomPiece(p.src, p.cfg.Width)
	if p.IllegalPosition(p.piece.Cells()) {
		p.inProgress = false
	}
}

func (p *Playfield) inBounds(x, y int) bool {
	return x >= 0 && x < p.cfg.Width && y >= 0 && y < p.cfg.Height
}

func (p *Playfield) index(x, y int) int {
	return y*p.cfg.Width + x
}

// InProgress reports whether the game is still running.
func (p *Playfield) InProgress() bool { return p.inProgress }

// Score returns the accumulated score.
func (p *Playfield) Score() int { return p.score }

// Lines returns the total number of cleared rows.
func (p *Playfield) Lines() int { return p.lines }

// Placed returns the number of pieces that have landed.
func (p *Playfield) Placed() int { return p.placed }

// Level starts at 1 and rises every Config.LinesPerLevel cleared rows.
func (p *Playfield) Level() int { return p.lines/p.cfg.LinesPerLevel + 1 }

func (p *Playfield) Width() int  { return p.cfg.Width }
func (p *Playfield) Height() int { return p.cfg.Height }

// Config returns the parameters the board was built with.
func (p *Playfield) Config() Config { return p.cfg }

// Cell returns the grid cell at (x, y). Coordinates off the board read as
// Empty.
func (p *Playfield) Cell(x, y int) Cell {
	if !p.inBounds(x, y) {
		return Empty
	}
	return p.cells[p.index(x, y)]
}

// Settled iterates over every occupied cell, top row first.
func (p *Playfield) Settled() iter.Seq2[Point, color.RGBA] {
	return func(yield func(Point, color.RGBA) bool) {
		for i, c := range p.cells {
			if !c.settled {
				continue
			}
			if !yield(Point{X: i % p.cfg.Width, Y: i / p.cfg.Width}, c.color) {
				return
			}
		}
	}
}

// Piece returns a copy of the active piece.
func (p *Playfield) Piece() Piece { return p.piece }

// PieceCells returns the absolute cells of the active piece.
func (p *Playfield) PieceCells() [4]Point { return p.piece.Cells() }

// PieceColor returns the color of the active piece.
func (p *Playfield) PieceColor() color.RGBA { return p.piece.Color() }

// GhostCells returns where the active piece would rest after a hard drop.
func (p *Playfield) GhostCells() [4]Point {
	dy := 0
	for !p.IllegalPosition(p.piece.Offset(0, dy+1)) {
		dy++
	}
	return p.piece.Offset(0, dy)
}

// LastLanding returns the most recent placement, or the zero Landing if no
// piece has landed yet.
func (p *Playfield) LastLanding() Landing { return p.last }
