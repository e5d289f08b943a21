package main

import (
	"bytes"
	"context"
	"image"
	"testing"
	"time"

	"github.com/plus3/marium/aquarium"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	var s Stats
	for i := 1; i <= 100; i++ {
		s.Samples = append(s.Samples, time.Duration(i)*time.Millisecond)
	}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 100*time.Millisecond, s.Max)
	assert.Equal(t, 50500*time.Microsecond, s.Avg)
	assert.Equal(t, 99*time.Millisecond, s.P99)

	single := Stats{Samples: []time.Duration{time.Second}}
	single.Finalize()
	assert.Equal(t, time.Second, single.P99)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestSpriteSizes(t *testing.T) {
	sizes := spriteSizes(8)
	require.Len(t, sizes, 8)
	for _, size := range sizes {
		assert.GreaterOrEqual(t, size.X, 16)
		assert.GreaterOrEqual(t, size.Y, 8)
	}
	assert.Len(t, spriteSizes(0), 1)
}

func TestDriveAndReport(t *testing.T) {
	sim, err := aquarium.New(aquarium.Options{
		Population: 50,
		Interval:   time.Millisecond,
		MaxSpeed:   5,
		Seed:       3,
		Bounds:     aquarium.NewBoundary(640, 480, aquarium.Insets{}),
		Sprites:    spriteSizes(4),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	report := &Report{Duration: 20 * time.Millisecond, Fish: 50, Sprites: 4, Viewport: image.Pt(640, 480)}
	report.TotalTicks, report.TotalTime = drive(ctx, sim, &report.TickTime)
	report.TickTime.Finalize()
	report.Systems = sim.Frame().Stats.Systems

	require.Positive(t, report.TotalTicks)
	assert.Len(t, report.TickTime.Samples, int(report.TotalTicks))
	assert.Equal(t, uint64(report.TotalTicks), sim.Frame().Tick)
	assert.Positive(t, report.TicksPerSecond())

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "# Aquarium Stress Test Report")
	assert.Contains(t, out, "**Viewport:** 640x480")
	assert.Contains(t, out, "SwimSystem")
	assert.Contains(t, out, "PublishSystem")
	assert.NotContains(t, out, "GC Pause")

	report.GCPauseMetrics = true
	report.MemStatsStart.NumGC, report.MemStatsEnd.NumGC = 2, 5
	buf.Reset()
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "**GC Cycles:** 3")
}

func TestReportAllocPerTick(t *testing.T) {
	r := &Report{TotalTicks: 4}
	r.MemStatsStart.TotalAlloc = 1000
	r.MemStatsEnd.TotalAlloc = 1800
	assert.Equal(t, uint64(200), r.AllocPerTick())

	assert.Zero(t, (&Report{}).AllocPerTick())
}
