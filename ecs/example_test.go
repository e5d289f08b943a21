package ecs_test

import (
	"fmt"

	"github.com/plus3/marium/ecs"
)

// ExampleView shows typed access to entities through a view struct.
// Embedding ecs.EntityId makes the view report which entity it is looking at.
func ExampleView() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 0})
	storage.Spawn(Position{X: 10, Y: 10}, Velocity{DX: 0, DY: 1})

	view := ecs.NewView[struct {
		ecs.EntityId
		*Position
		*Velocity
	}](storage)

	for _, fish := range view.Iter() {
		fish.Position.X += fish.Velocity.DX
		fish.Position.Y += fish.Velocity.DY
		fmt.Printf("entity %d at (%.0f, %.0f)\n", fish.EntityId.Index(), fish.Position.X, fish.Position.Y)
	}

	// Output:
	// entity 0 at (1, 0)
	// entity 1 at (10, 11)
}

// ExampleNewSingleton demonstrates world-wide data that belongs to no entity.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	tank := ecs.NewSingleton[TankConfig](storage, TankConfig{Width: 800, Height: 600})
	tank.Get().Height = 580

	var same *TankConfig
	if storage.ReadSingleton(&same) {
		fmt.Printf("tank %dx%d\n", same.Width, same.Height)
	}

	var schedule *FeedingSchedule
	fmt.Println("schedule present:", storage.ReadSingleton(&schedule))

	// Output:
	// tank 800x580
	// schedule present: false
}

type driftSystem struct {
	Fish ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *driftSystem) Execute(frame *ecs.UpdateFrame) {
	for fish := range s.Fish.Iter() {
		fish.Position.X += fish.Velocity.DX
	}
}

// ExampleScheduler runs a system for a few ticks.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	storage := ecs.NewStorage(registry)

	id := storage.Spawn(Position{}, Velocity{DX: 2})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&driftSystem{})
	for i := 0; i < 3; i++ {
		scheduler.Once(0.1)
	}

	fmt.Printf("x=%.0f after %d ticks\n", ecs.ReadComponent[Position](storage, id).X, scheduler.GetStats().Ticks)

	// Output:
	// x=6 after 3 ticks
}
