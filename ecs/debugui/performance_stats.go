package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/marium/ecs"
)

func NewPerformanceStatsComponent(historyFrames int) PerformanceStatsComponent {
	return PerformanceStatsComponent{frames: newHistory(historyFrames)}
}

// Record adds one UI frame duration, in seconds.
func (ps *PerformanceStatsComponent) Record(deltaTime float32) {
	ps.frames.Push(deltaTime * 1000)
}

// AverageFrameTime is the mean recorded frame time in milliseconds.
func (ps *PerformanceStatsComponent) AverageFrameTime() float32 {
	return ps.frames.Average()
}

func (ps *PerformanceStatsComponent) Render(stats *ecs.StorageStats, sched *ecs.SchedulerStats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if sched != nil {
		imgui.Text(fmt.Sprintf("Ticks: %d", sched.Ticks))
	}
	if stats != nil {
		imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
		imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
		imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))
	}

	avg := ps.AverageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	if samples := ps.frames.Ordered(); len(samples) > 0 {
		imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
	}

	if stats != nil && imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}
