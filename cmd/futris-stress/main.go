package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
)

func main() {
	defaults := tetris.DefaultConfig()
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	width := flag.Int("width", defaults.Width, "Board width in cells.")
	height := flag.Int("height", defaults.Height, "Board height in cells.")
	seed := flag.Uint64("seed", 1, "Seed for both piece selection and the command stream.")
	perFrame := flag.Int("commands", 4, "Maximum random commands queued per frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting futris stress test...")

	// 1. Setup session and systems
	cfg := defaults
	cfg.Width = *width
	cfg.Height = *height

	input := NewRandomInput(tetris.NewSource(*seed+1), *perFrame)
	session, err := engine.NewSession(cfg, tetris.NewSource(*seed),
		&engine.InputSystem{Source: input},
		&engine.GravitySystem{Curve: engine.DefaultCurve()},
	)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	// 2. Run the simulation loop
	report := &Report{
		Duration: *duration,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Seed:     *seed,
		PerFrame: *perFrame,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	var pieces, lines int
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			session.Update(float64(deltaTime) / float64(time.Second))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++

			if board := session.Board(); !board.InProgress() {
				pieces += board.Placed()
				lines += board.Lines()
				if err := session.Restart(); err != nil {
					log.Fatalf("Failed to restart: %v", err)
				}
			}
		}
	}

	board := session.Board()
	report.Pieces = pieces + board.Placed()
	report.Lines = lines + board.Lines()
	report.Games = session.Games()
	report.Finished = session.Stats().Finished()
	report.BestScore = session.Stats().BestScore()
	for n := range report.Clears {
		report.Clears[n] = session.Stats().Clears(n + 1)
	}
	report.Systems = session.Scheduler().GetStats().Systems

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
