package aquarium

import (
	"iter"

	"github.com/plus3/marium/ecs"
)

// SwimSystem moves every fish one tick inside the boundary.
type SwimSystem struct {
	Fish   ecs.Query[Fish]
	Bounds ecs.Singleton[Boundary]
}

func (s *SwimSystem) Execute(frame *ecs.UpdateFrame) {
	bounds := *s.Bounds.Get()
	for fish := range s.Fish.Iter() {
		fish.Update(bounds)
	}
}

// PublishSystem snapshots every fish into a Frame and hands it to publish.
// It must be registered after the systems that move fish.
type PublishSystem struct {
	Fish ecs.Query[Fish]

	publish func(*Frame)
	stats   func() *ecs.SchedulerStats
	world   *ecs.StorageStats
}

func (s *PublishSystem) Execute(frame *ecs.UpdateFrame) {
	s.publish(s.snapshot(frame.Tick, s.Fish.Iter(), s.Fish.Len()))
}

// snapshot builds the Frame for tick from fish. count sizes the slice.
func (s *PublishSystem) snapshot(tick uint64, fish iter.Seq[Fish], count int) *Frame {
	out := &Frame{
		Tick:  tick,
		Fish:  make([]FishState, 0, count),
		World: s.world,
	}
	for f := range fish {
		out.Fish = append(out.Fish, f.State())
	}
	if s.stats != nil {
		out.Stats = s.stats()
	}
	return out
}
