package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration       time.Duration
	Rows           int
	Columns        int
	ActionsPerTick int
	Seed           uint64

	// Results
	Games          int
	TotalLines     int
	TotalActions   int64
	Scores         ScoreStats
	Spawned        map[tetris.Shape]int
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// ShapeTally is one row of the spawn table.
type ShapeTally struct {
	Shape tetris.Shape
	Count int
}

// Record adds a finished game to the report.
func (r *Report) Record(result game.Result, spawned *tetris.Stats, stats *game.SchedulerStats) {
	r.Games++
	r.TotalLines += result.Lines
	r.TotalActions += stats.Actions
	r.Scores.Samples = append(r.Scores.Samples, result.Score)

	for _, shape := range tetris.Shapes() {
		r.Spawned[shape] += spawned.Spawned(shape)
	}
}

// ShapeCounts lists spawn counts in shape order.
func (r *Report) ShapeCounts() []ShapeTally {
	counts := make([]ShapeTally, 0, tetris.ShapeCount)
	for _, shape := range tetris.Shapes() {
		counts = append(counts, ShapeTally{Shape: shape, Count: r.Spawned[shape]})
	}
	return counts
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

type ScoreStats struct {
	Min     int
	Max     int
	Avg     float64
	Samples []int
}

func (s *ScoreStats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	total := 0
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.Columns}}x{{.Rows}}
- **Bot Actions Per Frame:** {{.ActionsPerTick}}
- **Seed:** {{.Seed}}

## Game Results
- **Games Finished:** {{.Games}}
- **Lines Cleared:** {{.TotalLines}}
- **Actions Applied:** {{.TotalActions}}
- **Score:**
  - **Avg:** {{printf "%.1f" .Scores.Avg}}
  - **Min:** {{.Scores.Min}}
  - **Max:** {{.Scores.Max}}

## Pieces Spawned
| Shape | Count |
|-------|-------|
{{- range .ShapeCounts}}
| {{.Shape}} | {{.Count}} |
{{- end}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Memory Usage (MB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
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
