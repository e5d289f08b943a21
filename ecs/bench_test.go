package ecs_test

import (
	"testing"

	"github.com/plus3/marium/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkReadComponent(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.ReadComponent[Position](storage, id)
	}
}

func BenchmarkViewIter(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	for i := 0; i < 1000; i++ {
		storage.Spawn(Position{X: float32(i)}, Velocity{DX: 1})
	}
	view := ecs.NewView[swimmer](storage)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, item := range view.Iter() {
			item.Position.X += item.Velocity.DX
		}
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	for i := 0; i < 1000; i++ {
		storage.Spawn(Position{X: float32(i)}, Velocity{DX: 1})
	}
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MovementSystem{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scheduler.Once(1.0 / 60.0)
	}
}
