package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/futris/debugui"
	debugui_ebiten "github.com/plus3/futris/debugui/ebiten"
	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
)

type Point = tetris.Point

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	gridColor       = color.RGBA{40, 40, 52, 255}
	borderColor     = color.RGBA{120, 120, 140, 255}
	ghostAlpha      = uint8(70)
)

// Game implements ebiten.Game on top of an engine.Session.
type Game struct {
	session *engine.Session
	keys    *KeyboardInput
	origin  Point

	// Set only with -debug.
	overlay *debugui.ImguiSystem
	backend *debugui_ebiten.ImguiBackend

	over bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.overlay != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Toggle()
	}

	board := g.session.Board()
	if !board.InProgress() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Restart(); err != nil {
			return err
		}
		g.over = false
		log.Printf("Game %d started", g.session.Games())
	}

	if g.backend != nil {
		g.backend.BeginFrame()
	}
	g.session.Update(1.0 / 60.0)
	if g.backend != nil {
		g.backend.EndFrame()
	}

	board = g.session.Board()
	if !board.InProgress() && !g.over {
		g.over = true
		log.Printf("Game over: score=%d lines=%d placed=%d", board.Score(), board.Lines(), board.Placed())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	board := g.session.Board()
	g.drawGrid(screen, board)

	for p, c := range board.Settled() {
		g.drawCell(screen, p, c)
	}

	if board.InProgress() {
		ghost := fade(board.PieceColor(), ghostAlpha)
		for _, p := range board.GhostCells() {
			g.drawCell(screen, p, ghost)
		}
		for _, p := range board.PieceCells() {
			g.drawCell(screen, p, board.PieceColor())
		}
	}

	g.drawSidebar(screen, board)

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) drawGrid(screen *ebiten.Image, board *tetris.Playfield) {
	x := float32(g.origin.X)
	y := float32(g.origin.Y)
	w := float32(board.Width() * CellSize)
	h := float32(board.Height() * CellSize)

	for col := 1; col < board.Width(); col++ {
		cx := x + float32(col*CellSize)
		vector.StrokeLine(screen, cx, y, cx, y+h, 1, gridColor, false)
	}
	for row := 1; row < board.Height(); row++ {
		cy := y + float32(row*CellSize)
		vector.StrokeLine(screen, x, cy, x+w, cy, 1, gridColor, false)
	}
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)
}

// fade scales a premultiplied color to alpha.
func fade(c color.RGBA, alpha uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(alpha) / 255) }
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), scale(c.A)}
}

// drawCell skips rows above the board; pieces spawn partly out of view.
func (g *Game) drawCell(screen *ebiten.Image, p Point, c color.RGBA) {
	if p.Y < 0 {
		return
	}
	x := float32(g.origin.X + p.X*CellSize)
	y := float32(g.origin.Y + p.Y*CellSize)
	vector.DrawFilledRect(screen, x+1, y+1, CellSize-2, CellSize-2, c, false)
}

func (g *Game) drawSidebar(screen *ebiten.Image, board *tetris.Playfield) {
	x := g.origin.X + board.Width()*CellSize + Margin
	y := g.origin.Y

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", board.Score()), x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", board.Level()), x, y+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", board.Lines()), x, y+40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best:  %d", g.session.Stats().BestScore()), x, y+60)

	if !board.InProgress() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", x, y+100)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", x, y+120)
	}

	ebitenutil.DebugPrintAt(screen, "Arrows: move/rotate", x, y+160)
	ebitenutil.DebugPrintAt(screen, "Space:  hard drop", x, y+180)
	if g.overlay != nil {
		ebitenutil.DebugPrintAt(screen, "F1:     debug panels", x, y+200)
	}
}
