package main

import (
	"fmt"
	"image"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/marium/ecs"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Fish     int
	Sprites  int
	Viewport image.Point

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	Systems        []ecs.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

// Finalize computes Min, Max, Avg and P99 from Samples.
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

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P99 = sorted[(len(sorted)*99+99)/100-1]
}

// TicksPerSecond is the achieved simulation rate.
func (r *Report) TicksPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalTicks) / r.TotalTime.Seconds()
}

// AllocPerTick is the heap allocated per simulation tick, in bytes.
func (r *Report) AllocPerTick() uint64 {
	if r.TotalTicks <= 0 {
		return 0
	}
	return (r.MemStatsEnd.TotalAlloc - r.MemStatsStart.TotalAlloc) / uint64(r.TotalTicks)
}

// GCCycles is the number of collections that ran during the test.
func (r *Report) GCCycles() uint32 {
	return r.MemStatsEnd.NumGC - r.MemStatsStart.NumGC
}

// GCPause is the total stop-the-world time spent during the test.
func (r *Report) GCPause() time.Duration {
	return time.Duration(r.MemStatsEnd.PauseTotalNs - r.MemStatsStart.PauseTotalNs)
}

const reportTemplate = `
# Aquarium Stress Test Report

## Setup
- **Run Duration:** {{.Duration}}
- **Fish:** {{.Fish}} across {{.Sprites}} sprite sizes
- **Viewport:** {{.Viewport.X}}x{{.Viewport.Y}}

## Ticks
- **Completed:** {{.TotalTicks}} in {{.TotalTime}} ({{printf "%.1f" .TicksPerSecond}}/s)
- **Duration:** avg {{.TickTime.Avg}}, min {{.TickTime.Min}}, p99 {{.TickTime.P99}}, max {{.TickTime.Max}}
{{range .Systems}}
- **{{.Name}}:** avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs{{end}}

## Memory
- **Heap In Use:** {{mib .MemStatsEnd.HeapInuse}} MiB
- **Allocated Per Tick:** {{.AllocPerTick}} B
{{if .GCPauseMetrics}}
- **GC Cycles:** {{.GCCycles}}
- **GC Pause:** {{.GCPause}}
{{end}}`

var reportFuncs = template.FuncMap{
	"mib": func(b uint64) string {
		return fmt.Sprintf("%.2f", float64(b)/(1<<20))
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
