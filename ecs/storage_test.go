package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/marium/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		archetypeId uint32
		index       uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("archetype=%d,index=%d", tt.archetypeId, tt.index), func(t *testing.T) {
			entityId := ecs.NewEntityId(tt.archetypeId, tt.index)
			assert.Equal(t, tt.archetypeId, entityId.ArchetypeId())
			assert.Equal(t, tt.index, entityId.Index())
		})
	}
}

func TestSpawnAndGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 3, Y: 4}, Species{Name: "guppy"})
	assert.NotZero(t, id.ArchetypeId())

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, float32(3), pos.X)
	assert.Equal(t, float32(4), pos.Y)

	species := ecs.ReadComponent[Species](storage, id)
	require.NotNil(t, species)
	assert.Equal(t, "guppy", species.Name)

	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.Nil(t, storage.GetComponent(id, reflect.TypeFor[Velocity]()))
}

func TestComponentOrderDoesNotChangeArchetype(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Velocity{}, Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.Equal(t, uint32(0), a.Index())
	assert.Equal(t, uint32(1), b.Index())
	assert.Len(t, storage.Archetypes(), 1)
}

func TestComponentPointersSurviveGrowth(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 7})
	pos := ecs.ReadComponent[Position](storage, first)

	// Enough spawns to allocate several blocks.
	for i := 0; i < 500; i++ {
		storage.Spawn(Position{X: float32(i)})
	}

	pos.X = 99
	assert.Equal(t, float32(99), ecs.ReadComponent[Position](storage, first).X)
}

func TestHasComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{}, Depth(3.5))

	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Depth]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
	assert.False(t, storage.HasComponent(ecs.NewEntityId(42, 0), reflect.TypeFor[Position]()))
}

func TestGetArchetype(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	assert.Nil(t, storage.GetArchetype(Position{}, Velocity{}))

	id := storage.Spawn(Position{}, Velocity{})

	archetype := storage.GetArchetype(Velocity{}, Position{})
	require.NotNil(t, archetype)
	assert.Equal(t, id.ArchetypeId(), archetype.ID())
	assert.Equal(t, 1, archetype.Len())

	byTypes := storage.GetArchetypeByTypes([]reflect.Type{reflect.TypeFor[Velocity](), reflect.TypeFor[Position]()})
	assert.Same(t, archetype, byTypes)
}

func TestArchetypesKeepCreationOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Tag("a"))
	storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Species{})
	storage.Spawn(Tag("b"))

	archetypes := storage.Archetypes()
	require.Len(t, archetypes, 3)
	assert.True(t, archetypes[0].HasComponent(reflect.TypeFor[Tag]()))
	assert.True(t, archetypes[1].HasComponent(reflect.TypeFor[Velocity]()))
	assert.True(t, archetypes[2].HasComponent(reflect.TypeFor[Species]()))
	assert.Equal(t, 2, archetypes[0].Len())
}

func TestArchetypeIter(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var ids []ecs.EntityId
	for i := 0; i < 3; i++ {
		ids = append(ids, storage.Spawn(Hunger{Current: i}))
	}

	var seen []ecs.EntityId
	for id := range storage.GetArchetype(Hunger{}).Iter() {
		seen = append(seen, id)
	}
	assert.Equal(t, ids, seen)
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
	assert.Panics(t, func() { storage.Spawn(FeedingSchedule{}) }, "unregistered component")
}

func TestSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var cfg *TankConfig
	assert.False(t, storage.ReadSingleton(&cfg))

	storage.AddSingleton(TankConfig{Width: 800, Height: 600})
	require.True(t, storage.ReadSingleton(&cfg))
	assert.Equal(t, 800, cfg.Width)

	accessor := ecs.NewSingleton[TankConfig](storage)
	assert.Same(t, cfg, accessor.Get())

	// Replacing keeps earlier pointers valid.
	storage.AddSingleton(&TankConfig{Width: 640, Height: 480})
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, accessor.Get().Height)
}

func TestSingletonAccessorBeforeCreation(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var s ecs.Singleton[FeedingSchedule]
	s.Init(storage)
	assert.False(t, s.Exists())
	assert.Nil(t, s.Get())

	storage.AddSingleton(FeedingSchedule{Meals: 2})
	assert.True(t, s.Exists())
	assert.Equal(t, 2, s.Get().Meals)
}

func TestReadSingletonRequiresDoublePointer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	assert.Panics(t, func() {
		var cfg TankConfig
		storage.ReadSingleton(&cfg)
	})
}

func TestCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.SingletonCount)

	storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Species{Name: "tetra"})
	ecs.NewSingleton[TankConfig](storage, TankConfig{Width: 1})
	ecs.NewSingleton[FeedingSchedule](storage)

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 2, stats.SingletonCount)

	require.Len(t, stats.ArchetypeBreakdown, 2)
	assert.Equal(t, 2, stats.ArchetypeBreakdown[0].EntityCount)
	assert.Len(t, stats.ArchetypeBreakdown[0].ComponentTypes, 2)
	assert.Equal(t, 1, stats.ArchetypeBreakdown[1].EntityCount)
	assert.Equal(t, []string{"ecs_test.FeedingSchedule", "ecs_test.TankConfig"}, stats.SingletonTypes)
}
