package debugui

import (
	"time"

	"github.com/plus3/marium/ecs"
)

// Options size the sample histories kept by the debug windows.
type Options struct {
	FrameHistory    int
	TickHistory     int
	ProcessInterval time.Duration
}

var DefaultOptions = Options{
	FrameHistory:    120,
	TickHistory:     120,
	ProcessInterval: time.Second,
}

func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[ImguiInputState](registry)
	ecs.RegisterComponent[PerformanceStatsComponent](registry)
	ecs.RegisterComponent[ArchetypeViewerComponent](registry)
	ecs.RegisterComponent[SystemTimingsComponent](registry)
	ecs.RegisterComponent[ProcessStatsComponent](registry)
	ecs.RegisterComponent[FrameTimer](registry)
	ecs.RegisterComponent[SourceRef](registry)
}

// SpawnDebugUI adds the debug windows and their singletons to storage.
func SpawnDebugUI(storage *ecs.Storage, source Source, opts Options) {
	ecs.NewSingleton[SourceRef](storage, SourceRef{Source: source})
	ecs.NewSingleton[FrameTimer](storage, NewFrameTimer())
	ecs.NewSingleton[ImguiInputState](storage)

	storage.Spawn(NewPerformanceStatsComponent(opts.FrameHistory))
	storage.Spawn(NewArchetypeViewerComponent())
	storage.Spawn(NewSystemTimingsComponent(opts.TickHistory))
	storage.Spawn(NewProcessStatsComponent(opts.ProcessInterval, opts.TickHistory))
}

// WindowsSystem feeds the debug windows from the Source singleton and
// queues their render calls.
type WindowsSystem struct {
	Performance ecs.Query[struct{ *PerformanceStatsComponent }]
	Archetypes  ecs.Query[struct{ *ArchetypeViewerComponent }]
	Timings     ecs.Query[struct{ *SystemTimingsComponent }]
	Process     ecs.Query[struct{ *ProcessStatsComponent }]

	Source ecs.Singleton[SourceRef]
	Timer  ecs.Singleton[FrameTimer]
}

func (w *WindowsSystem) Execute(frame *ecs.UpdateFrame) {
	sched, stats := w.update(time.Now())

	for item := range w.Performance.Iter() {
		c := item.PerformanceStatsComponent
		frame.Commands.Defer(func() { c.Render(stats, sched) })
	}
	for item := range w.Archetypes.Iter() {
		frame.Commands.Defer(item.ArchetypeViewerComponent.Render)
	}
	for item := range w.Timings.Iter() {
		c := item.SystemTimingsComponent
		frame.Commands.Defer(func() { c.Render(sched) })
	}
	for item := range w.Process.Iter() {
		frame.Commands.Defer(item.ProcessStatsComponent.Render)
	}
}

// update records the samples for this frame and returns the stats it read.
func (w *WindowsSystem) update(now time.Time) (*ecs.SchedulerStats, *ecs.StorageStats) {
	var (
		sched *ecs.SchedulerStats
		stats *ecs.StorageStats
	)
	if ref := w.Source.Get(); ref != nil && ref.Source != nil {
		sched = ref.Source.SchedulerStats()
		stats = ref.Source.StorageStats()
	}

	var dt float32
	if timer := w.Timer.Get(); timer != nil {
		dt = timer.GetDeltaTime()
	}

	for item := range w.Performance.Iter() {
		item.Record(dt)
	}
	for item := range w.Archetypes.Iter() {
		item.Update(stats)
	}
	for item := range w.Timings.Iter() {
		item.Record(sched)
	}
	for item := range w.Process.Iter() {
		item.Sample(now)
	}
	return sched, stats
}
