package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/marium/aquarium"
	"github.com/plus3/marium/config"
	"github.com/plus3/marium/ecs"
	"github.com/plus3/marium/ecs/debugui"
	debugui_ebiten "github.com/plus3/marium/ecs/debugui/ebiten"
)

// overlay is the debug UI. It runs its own storage and scheduler on the
// ebiten goroutine and reads the simulation through published frames.
type overlay struct {
	visible   bool
	scheduler *ecs.Scheduler
	backend   *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

// frameSource exposes the stats carried by the latest frame.
type frameSource struct {
	sim *aquarium.Simulation
}

func (s frameSource) SchedulerStats() *ecs.SchedulerStats { return s.sim.Frame().Stats }
func (s frameSource) StorageStats() *ecs.StorageStats { return s.sim.Frame().World }

func newOverlay(sim *aquarium.Simulation, window config.WindowConfig) *overlay {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[debugui_ebiten.ImguiBackend](registry)
	debugui.RegisterDebugUIComponents(registry)

	storage := ecs.NewStorage(registry)
	backend := ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage,
		debugui_ebiten.NewImguiBackend(window.Title, window.Width, window.Height))

	debugui.SpawnDebugUI(storage, frameSource{sim}, debugui.DefaultOptions)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})
	scheduler.Register(&debugui.WindowsSystem{})

	return &overlay{
		visible:   true,
		scheduler: scheduler,
		backend:   backend,
	}
}

func (o *overlay) Update() {
	o.backend.Get().BeginFrame()
	o.scheduler.Once(1.0 / float64(ebiten.TPS()))
	o.backend.Get().EndFrame()
}

func (o *overlay) Draw(screen *ebiten.Image) {
	o.backend.Get().Draw(screen)
}

func (o *overlay) Layout(width, height int) {
	o.backend.Get().Layout(width, height)
}
