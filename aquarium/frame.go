package aquarium

import "github.com/plus3/marium/ecs"

// FishState is the drawable part of a fish at the end of a tick.
type FishState struct {
	Position Position
	Facing   Facing
	Sprite   Sprite
}

// Frame is an immutable snapshot of the aquarium published after each tick.
// Readers on other goroutines may hold on to a Frame for as long as they like;
// the simulation never writes to one after publishing it.
type Frame struct {
	Tick  uint64
	Fish  []FishState
	Stats *ecs.SchedulerStats
	// World summarises the simulation storage. The population is fixed, so
	// every frame shares the summary taken when the aquarium was built.
	World *ecs.StorageStats
}
