package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
)

// GameInfo is a snapshot of the values the game panel shows.
type GameInfo struct {
	Score      int
	BestScore  int
	Level      int
	Lines      int
	Placed     int
	Games      int
	Finished   int
	InProgress bool
	Piece      tetris.Piece
	Kinds      [tetris.NumKinds]int
	Clears     [4]int // index n holds clears of n+1 rows
}

// Snapshot reads the session without modifying it.
func Snapshot(session *engine.Session) GameInfo {
	board := session.Board()
	stats := session.Stats()

	info := GameInfo{
		Score:      board.Score(),
		BestScore:  stats.BestScore(),
		Level:      board.Level(),
		Lines:      board.Lines(),
		Placed:     board.Placed(),
		Games:      session.Games(),
		Finished:   stats.Finished(),
		InProgress: board.InProgress(),
		Piece:      board.Piece(),
		Kinds:      stats.Kinds(),
	}
	for n := range info.Clears {
		info.Clears[n] = stats.Clears(n + 1)
	}
	return info
}

// GamePanel shows score, progress and placement statistics.
type GamePanel struct {
	session *engine.Session
}

func NewGamePanel(session *engine.Session) *GamePanel {
	return &GamePanel{session: session}
}

func (g *GamePanel) Render() {
	info := Snapshot(g.session)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 210), imgui.CondOnce)
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := "playing"
	if !info.InProgress {
		state = "game over"
	}
	imgui.Text(fmt.Sprintf("Game %d (%s)", info.Games, state))
	imgui.Text(fmt.Sprintf("Score: %d  Best: %d", info.Score, info.BestScore))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d  Placed: %d", info.Level, info.Lines, info.Placed))
	imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d) r%d", info.Piece.Kind, info.Piece.X, info.Piece.Y, info.Piece.Rotation))
	imgui.Separator()

	if imgui.TreeNodeStr("Placements") {
		for _, kind := range tetris.Kinds {
			imgui.BulletText(fmt.Sprintf("%s: %d", kind, info.Kinds[kind]))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Clears") {
		for n, count := range info.Clears {
			imgui.BulletText(fmt.Sprintf("%d rows: %d", n+1, count))
		}
		imgui.TreePop()
	}

	imgui.End()
}
