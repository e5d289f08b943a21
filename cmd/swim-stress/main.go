// Command swim-stress runs the aquarium headless as fast as it can and
// prints a tick throughput report.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"runtime"
	"time"

	"github.com/plus3/marium/aquarium"
	"github.com/plus3/marium/config"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	population := flag.Int("fish", 10000, "The number of fish to simulate.")
	width := flag.Int("width", 1920, "Width of the simulated viewport.")
	height := flag.Int("height", 1080, "Height of the simulated viewport.")
	sprites := flag.Int("sprites", 8, "Number of distinct sprite sizes in the pool.")
	maxSpeed := flag.Int("max-speed", 5, "Maximum per-axis speed in pixels per tick.")
	seed := flag.Uint64("seed", 1, "Random seed for the population.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log, err := config.NewLogger(config.LoggingConfig{Level: "info", Format: "console"})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	log.Info("populating aquarium", zap.Int("fish", *population), zap.Int("sprites", *sprites))
	sim, err := aquarium.New(aquarium.Options{
		Population: *population,
		Interval:   time.Millisecond,
		MaxSpeed:   *maxSpeed,
		Seed:       *seed,
		Bounds:     aquarium.NewBoundary(*width, *height, aquarium.Insets{}),
		Sprites:    spriteSizes(*sprites),
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}

	report := &Report{
		Duration:       *duration,
		Fish:           *population,
		Sprites:        *sprites,
		Viewport:       image.Pt(*width, *height),
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running simulation", zap.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report.TotalTicks, report.TotalTime = drive(ctx, sim, &report.TickTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Systems = sim.Frame().Stats.Systems

	log.Info("simulation finished", zap.Int64("ticks", report.TotalTicks))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")
	return nil
}

// drive steps sim back to back until ctx is done, recording each tick's
// duration in stats.
func drive(ctx context.Context, sim *aquarium.Simulation, stats *Stats) (int64, time.Duration) {
	start := time.Now()
	var ticks int64

	for ctx.Err() == nil {
		tickStart := time.Now()
		sim.Step()
		stats.Samples = append(stats.Samples, time.Since(tickStart))
		ticks++

		// Drain the signal like a renderer would.
		select {
		case <-sim.Redraw():
		default:
		}
	}
	return ticks, time.Since(start)
}

// spriteSizes makes n distinct sprite extents between 16x8 and 128x64.
func spriteSizes(n int) []image.Point {
	sizes := make([]image.Point, max(n, 1))
	for i := range sizes {
		w := 16 + (i*37)%113
		sizes[i] = image.Pt(w, max(w/2, 8))
	}
	return sizes
}
