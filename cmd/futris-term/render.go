package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
)

// Each board cell is two columns wide so cells look square.
const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RenderSystem draws the session's board once the frame's commands have been
// applied.
type RenderSystem struct {
	Screen  tcell.Screen
	Session *engine.Session

	over bool
}

func (r *RenderSystem) Execute(frame *engine.UpdateFrame) {
	frame.Commands.Defer(r.draw)
}

func (r *RenderSystem) draw() {
	board := r.Session.Board()
	if !board.InProgress() && !r.over {
		log.Printf("Game over: score=%d lines=%d placed=%d", board.Score(), board.Lines(), board.Placed())
	}
	r.over = !board.InProgress()

	r.Screen.Clear()
	r.drawBorder(board)

	for p, c := range board.Settled() {
		r.drawCell(p, '█', tcell.StyleDefault.Foreground(rgb(c)))
	}

	if board.InProgress() {
		ghost := tcell.StyleDefault.Foreground(rgb(board.PieceColor()))
		for _, p := range board.GhostCells() {
			r.drawCell(p, '░', ghost)
		}
		solid := tcell.StyleDefault.Foreground(rgb(board.PieceColor()))
		for _, p := range board.PieceCells() {
			r.drawCell(p, '█', solid)
		}
	}

	r.drawSidebar(board)
	r.Screen.Show()
}

// drawCell renders board point p at its screen offset; the border occupies
// the first row and column.
func (r *RenderSystem) drawCell(p tetris.Point, ch rune, style tcell.Style) {
	if p.Y < 0 {
		return
	}
	x := 1 + p.X*cellWidth
	y := 1 + p.Y
	for i := range cellWidth {
		r.Screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *RenderSystem) drawBorder(board *tetris.Playfield) {
	w := board.Width()*cellWidth + 1
	h := board.Height() + 1

	for x := 1; x < w; x++ {
		r.Screen.SetContent(x, 0, '─', nil, borderStyle)
		r.Screen.SetContent(x, h, '─', nil, borderStyle)
	}
	for y := 1; y < h; y++ {
		r.Screen.SetContent(0, y, '│', nil, borderStyle)
		r.Screen.SetContent(w, y, '│', nil, borderStyle)
	}
	r.Screen.SetContent(0, 0, '┌', nil, borderStyle)
	r.Screen.SetContent(w, 0, '┐', nil, borderStyle)
	r.Screen.SetContent(0, h, '└', nil, borderStyle)
	r.Screen.SetContent(w, h, '┘', nil, borderStyle)
}

func (r *RenderSystem) drawSidebar(board *tetris.Playfield) {
	x := board.Width()*cellWidth + 4
	stats := r.Session.Stats()

	r.drawText(x, 1, titleStyle, "FUTRIS")
	r.drawText(x, 3, textStyle, fmt.Sprintf("Score  %d", board.Score()))
	r.drawText(x, 4, textStyle, fmt.Sprintf("Level  %d", board.Level()))
	r.drawText(x, 5, textStyle, fmt.Sprintf("Lines  %d", board.Lines()))
	r.drawText(x, 6, textStyle, fmt.Sprintf("Best   %d", stats.BestScore()))
	r.drawText(x, 7, textStyle, fmt.Sprintf("Game   %d", r.Session.Games()))

	if !board.InProgress() {
		r.drawText(x, 9, titleStyle, "GAME OVER")
		r.drawText(x, 10, textStyle, "r to restart")
	}

	r.drawText(x, 12, borderStyle, "←→/hl  move")
	r.drawText(x, 13, borderStyle, "↑/k    rotate")
	r.drawText(x, 14, borderStyle, "↓/j    soft drop")
	r.drawText(x, 15, borderStyle, "space  hard drop")
	r.drawText(x, 16, borderStyle, "q/esc  quit")
}

func (r *RenderSystem) drawText(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.Screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
