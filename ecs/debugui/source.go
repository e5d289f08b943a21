package debugui

import "github.com/plus3/marium/ecs"

// Source supplies the statistics shown by the debug windows. It is polled
// from the UI goroutine, which is usually not the goroutine that owns the
// inspected world, so implementations hand out snapshots.
type Source interface {
	SchedulerStats() *ecs.SchedulerStats
	StorageStats() *ecs.StorageStats
}

// SourceRef holds the Source as a singleton.
type SourceRef struct {
	Source Source
}
