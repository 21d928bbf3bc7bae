package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/futris/debugui"
	debugui_ebiten "github.com/plus3/futris/debugui/ebiten"
	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
)

const (
	CellSize   = 20
	Margin     = 20
	SideWidth  = 180
	DebugWidth = 340
)

func main() {
	defaults := tetris.DefaultConfig()
	width := flag.Int("width", defaults.Width, "Board width in cells.")
	height := flag.Int("height", defaults.Height, "Board height in cells.")
	seed := flag.Uint64("seed", 0, "Random seed for piece selection; 0 picks one from the clock.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay (toggle with F1).")
	flag.Parse()

	cfg := defaults
	cfg.Width = *width
	cfg.Height = *height
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Starting futris %dx%d with seed %d", cfg.Width, cfg.Height, *seed)

	game := &Game{
		keys:   &KeyboardInput{},
		origin: Point{X: Margin, Y: Margin},
	}

	screenW := cfg.Width*CellSize + SideWidth + Margin*2
	screenH := cfg.Height*CellSize + Margin*2

	systems := []engine.System{
		&engine.InputSystem{Source: game.keys},
		&engine.GravitySystem{Curve: engine.DefaultCurve()},
	}

	if *debug {
		screenW += DebugWidth
		game.origin.X += DebugWidth
		game.backend = debugui_ebiten.NewImguiBackend("futris", screenW, screenH)
		game.overlay = &debugui.ImguiSystem{}
		game.keys.Suspended = func() bool { return game.overlay.InputState.WantCaptureKeyboard }
		systems = append(systems, game.overlay)
	} else {
		ebiten.SetWindowTitle("futris")
	}
	ebiten.SetWindowSize(screenW, screenH)

	session, err := engine.NewSession(cfg, tetris.NewSource(*seed), systems...)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	game.session = session
	if game.overlay != nil {
		game.overlay.Items = debugui.DefaultItems(session)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
