package debugui

import (
	"time"

	"github.com/plus3/marium/ecs"
	"github.com/shirou/gopsutil/v3/process"
)

// PerformanceStatsComponent shows UI frame times next to world counts.
type PerformanceStatsComponent struct {
	frames history
}

// ArchetypeViewerComponent lists the archetypes of the inspected world.
type ArchetypeViewerComponent struct {
	rows           []ecs.ArchetypeStats
	selectedArchId *uint32
	sortColumn     int
	sortAscending  bool
}

// SystemTimingsComponent tabulates per-system durations of the inspected scheduler.
type SystemTimingsComponent struct {
	tickCost      history
	lastTick      uint64
	sortColumn    int
	sortAscending bool
}

// ProcessStatsComponent samples CPU and memory use of the running process.
type ProcessStatsComponent struct {
	proc     *process.Process
	interval time.Duration
	last     time.Time

	cpu     history
	rssMB   float32
	threads int32
	err     error
}

// FrameTimer measures the time between UI frames. Stored as a singleton.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() FrameTimer {
	return FrameTimer{lastFrameTime: time.Now()}
}

// GetDeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	if ft.lastFrameTime.IsZero() {
		ft.lastFrameTime = now
	}
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
