package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/marium/ecs"
)

const (
	archColumnID = iota
	archColumnComponents
	archColumnCompCount
	archColumnEntities
)

func NewArchetypeViewerComponent() ArchetypeViewerComponent {
	return ArchetypeViewerComponent{
		sortColumn:    archColumnEntities,
		sortAscending: false,
	}
}

// Update copies the archetype breakdown out of stats and sorts it.
func (av *ArchetypeViewerComponent) Update(stats *ecs.StorageStats) {
	av.rows = av.rows[:0]
	if stats != nil {
		av.rows = append(av.rows, stats.ArchetypeBreakdown...)
	}
	sortArchetypes(av.rows, av.sortColumn, av.sortAscending)
}

// Selected returns the archetype picked in the table, if any.
func (av *ArchetypeViewerComponent) Selected() *uint32 {
	return av.selectedArchId
}

func (av *ArchetypeViewerComponent) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 300), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Archetype Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	maxEntityCount := 0
	for _, arch := range av.rows {
		maxEntityCount = max(maxEntityCount, arch.EntityCount)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ArchetypeTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Archetype ID")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Comp Count")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			av.sortColumn = int(spec.ColumnIndex())
			av.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortArchetypes(av.rows, av.sortColumn, av.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, arch := range av.rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := av.selectedArchId != nil && *av.selectedArchId == arch.ID
			if imgui.SelectableBoolV(fmt.Sprintf("0x%X", arch.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				id := arch.ID
				av.selectedArchId = &id
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(arch.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(arch.ComponentTypes)))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", arch.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(arch.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

func sortArchetypes(rows []ecs.ArchetypeStats, column int, ascending bool) {
	less := func(a, b ecs.ArchetypeStats) bool {
		switch column {
		case archColumnID:
			return a.ID < b.ID
		case archColumnComponents:
			return strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case archColumnCompCount:
			return len(a.ComponentTypes) < len(b.ComponentTypes)
		default:
			return a.EntityCount < b.EntityCount
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})
}
