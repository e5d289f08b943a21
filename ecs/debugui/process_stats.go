package debugui

import (
	"fmt"
	"os"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/shirou/gopsutil/v3/process"
)

// NewProcessStatsComponent samples the current process at most once per
// interval. A process handle that cannot be opened is reported in the window.
func NewProcessStatsComponent(interval time.Duration, historySamples int) ProcessStatsComponent {
	proc, err := process.NewProcess(int32(os.Getpid()))
	return ProcessStatsComponent{
		proc:     proc,
		interval: interval,
		cpu:      newHistory(historySamples),
		err:      err,
	}
}

// Sample refreshes CPU, memory and thread figures if interval has passed
// since the previous sample.
func (ps *ProcessStatsComponent) Sample(now time.Time) {
	if ps.proc == nil || (!ps.last.IsZero() && now.Sub(ps.last) < ps.interval) {
		return
	}
	ps.last = now

	cpu, err := ps.proc.Percent(0)
	if err != nil {
		ps.err = fmt.Errorf("cpu percent: %w", err)
		return
	}
	mem, err := ps.proc.MemoryInfo()
	if err != nil {
		ps.err = fmt.Errorf("memory info: %w", err)
		return
	}
	threads, err := ps.proc.NumThreads()
	if err != nil {
		ps.err = fmt.Errorf("thread count: %w", err)
		return
	}

	ps.cpu.Push(float32(cpu))
	ps.rssMB = float32(mem.RSS) / (1 << 20)
	ps.threads = threads
	ps.err = nil
}

func (ps *ProcessStatsComponent) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(420, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Process", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if ps.err != nil {
		imgui.Text(ps.err.Error())
	}
	imgui.Text(fmt.Sprintf("PID: %d", os.Getpid()))
	imgui.Text(fmt.Sprintf("RSS: %.1f MiB", ps.rssMB))
	imgui.Text(fmt.Sprintf("Threads: %d", ps.threads))
	imgui.Text(fmt.Sprintf("CPU: %.1f%% avg, %.1f%% peak", ps.cpu.Average(), ps.cpu.Max()))
	if samples := ps.cpu.Ordered(); len(samples) > 0 {
		imgui.PlotLinesFloatPtr("##cpu", &samples[0], int32(len(samples)))
	}

	imgui.End()
}
