package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:  time.Second,
		Width:     10,
		Height:    30,
		Seed:      7,
		Games:     3,
		Finished:  2,
		Pieces:    120,
		Lines:     9,
		BestScore: 500,
		Clears:    [4]int{5, 2, 0, 0},
		TotalTime: 2 * time.Second,
		Systems: []engine.SystemStats{
			{Name: "GravitySystem", ExecutionCount: 10},
		},
		GCPauseMetrics: true,
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Board:** 10x30")
	assert.Contains(t, out, "**Games Started:** 3 (2 finished)")
	assert.Contains(t, out, "**Pieces Placed:** 120 (60.0/s)")
	assert.Contains(t, out, "**Clears:** 1x5 2x2 3x0 4x0")
	assert.Contains(t, out, "**GravitySystem:** runs=10")
	assert.Contains(t, out, "## GC Pause Durations")
}

func TestRandomInput(t *testing.T) {
	input := NewRandomInput(tetris.NewSource(3), 4)
	for range 100 {
		cmds := input.Poll()
		assert.LessOrEqual(t, len(cmds), 4)
		for _, cmd := range cmds {
			assert.Contains(t, tetris.AllCommands[:], cmd)
		}
	}

	assert.Empty(t, NewRandomInput(tetris.NewSource(3), 0).Poll())
}
