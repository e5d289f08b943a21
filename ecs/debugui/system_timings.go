package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/marium/ecs"
)

const (
	sysColumnName = iota
	sysColumnAvg
	sysColumnMin
	sysColumnMax
	sysColumnLast
)

func NewSystemTimingsComponent(historyTicks int) SystemTimingsComponent {
	return SystemTimingsComponent{
		tickCost:      newHistory(historyTicks),
		sortColumn:    sysColumnName,
		sortAscending: true,
	}
}

// Record adds the cost of the latest tick in stats, once per tick.
func (st *SystemTimingsComponent) Record(stats *ecs.SchedulerStats) {
	if stats == nil || stats.Ticks == st.lastTick {
		return
	}
	st.lastTick = stats.Ticks

	var total time.Duration
	for _, sys := range stats.Systems {
		total += sys.LastDuration
	}
	st.tickCost.Push(millis(total))
}

func (st *SystemTimingsComponent) Render(stats *ecs.SchedulerStats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(420, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 260), imgui.CondOnce)
	if !imgui.BeginV("System Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	if stats == nil {
		imgui.Text("No scheduler stats yet")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("System Count: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Tick Cost: %.3f ms avg, %.3f ms peak", st.tickCost.Average(), st.tickCost.Max()))
	if samples := st.tickCost.Ordered(); len(samples) > 0 {
		imgui.PlotLinesFloatPtr("##tickcost", &samples[0], int32(len(samples)))
	}
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("Systems", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableSetupColumn("Last (ms)")
		imgui.TableHeadersRow()

		if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			st.sortColumn = int(spec.ColumnIndex())
			st.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		systems := append([]ecs.SystemStats(nil), stats.Systems...)
		sortSystems(systems, st.sortColumn, st.sortAscending)

		for _, sys := range systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(sys.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.AvgDuration)))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.MinDuration)))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.MaxDuration)))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.LastDuration)))
		}
		imgui.EndTable()
	}

	imgui.End()
}

func sortSystems(systems []ecs.SystemStats, column int, ascending bool) {
	less := func(a, b ecs.SystemStats) bool {
		switch column {
		case sysColumnAvg:
			return a.AvgDuration < b.AvgDuration
		case sysColumnMin:
			return a.MinDuration < b.MinDuration
		case sysColumnMax:
			return a.MaxDuration < b.MaxDuration
		case sysColumnLast:
			return a.LastDuration < b.LastDuration
		default:
			return a.Name < b.Name
		}
	}

	sort.SliceStable(systems, func(i, j int) bool {
		if ascending {
			return less(systems[i], systems[j])
		}
		return less(systems[j], systems[i])
	})
}

func millis(d time.Duration) float32 {
	return float32(d.Microseconds()) / 1000
}
