package ecs_test

import "github.com/plus3/marium/ecs"

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Species struct {
	Name string
}

type Hunger struct {
	Current int
	Max     int
}

// Named primitives are valid components too.
type Depth float64
type Tag string

type TankConfig struct {
	Width, Height int
}

type FeedingSchedule struct {
	Meals int
}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Species](registry)
	ecs.RegisterComponent[Hunger](registry)
	ecs.RegisterComponent[Depth](registry)
	ecs.RegisterComponent[Tag](registry)
	return registry
}
