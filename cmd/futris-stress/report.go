package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/futris/engine"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Width    int
	Height   int
	Seed     uint64
	PerFrame int

	// Game results
	Games     int
	Finished  int
	Pieces    int
	Lines     int
	BestScore int
	Clears    [4]int

	// Performance results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Systems        []engine.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// PiecesPerSecond is the placement throughput over the whole run.
func (r *Report) PiecesPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.Pieces) / r.TotalTime.Seconds()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# futris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}}
- **Max Commands Per Frame:** {{.PerFrame}}

## Game Results
- **Games Started:** {{.Games}} ({{.Finished}} finished)
- **Pieces Placed:** {{.Pieces}} ({{printf "%.1f" .PiecesPerSecond}}/s)
- **Lines Cleared:** {{.Lines}}
- **Best Score:** {{.BestScore}}
- **Clears:**{{range $i, $n := .Clears}} {{inc $i}}x{{$n}}{{end}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}
- **{{.Name}}:** runs={{.ExecutionCount}} avg={{.AvgDuration}} max={{.MaxDuration}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
