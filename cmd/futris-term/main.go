package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
)

const frameInterval = 16 * time.Millisecond

func main() {
	defaults := tetris.DefaultConfig()
	width := flag.Int("width", defaults.Width, "Board width in cells.")
	height := flag.Int("height", 20, "Board height in cells.")
	seed := flag.Uint64("seed", 0, "Random seed for piece selection; 0 picks one from the clock.")
	debugFlag := flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName+".")
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := defaults
	cfg.Width = *width
	cfg.Height = *height
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing a crash, otherwise the trace is
	// written into raw mode and lost.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Printf("panic: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "futris-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	input := engine.NewChannelInput(32)
	controls := make(chan control, 8)
	render := &RenderSystem{Screen: screen}
	ctl := &ControlSystem{Requests: controls, Screen: screen}

	session, err := engine.NewSession(cfg, tetris.NewSource(*seed),
		&engine.InputSystem{Source: input},
		&engine.GravitySystem{Curve: engine.DefaultCurve()},
		ctl,
		render,
	)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to start session: %v", err)
	}
	ctl.Session = session
	render.Session = session

	log.Printf("Starting futris-term %dx%d with seed %d", cfg.Width, cfg.Height, *seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go readEvents(screen, input, controls, cancel)

	session.Scheduler().Run(ctx, frameInterval)

	stats := session.Stats()
	log.Printf("Exiting after %d games, best score %d", session.Games(), stats.BestScore())
}
