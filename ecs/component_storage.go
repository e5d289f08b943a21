package ecs

import (
	"iter"
	"reflect"
)

// componentStorage is a type-erased, append-only column of one component type.
type componentStorage interface {
	Append(item any) int
	Get(index int) any
	Len() int
	Iter() iter.Seq[int]
}

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage has its own registry so independent worlds (the simulation and
// the debug overlay, for instance) never share columns.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() componentStorage {
		return &blockStorage[T]{}
	}
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentStorage {
	return r.factories[t]
}

const blockSize = 64

// blockStorage stores components of type T in fixed-size blocks so that
// pointers handed out by Get stay valid while the column grows.
type blockStorage[T any] struct {
	blocks []*[blockSize]T
	length int
}

func (cs *blockStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	index := cs.length
	blockIdx := index / blockSize
	if blockIdx >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, new([blockSize]T))
	}

	cs.blocks[blockIdx][index%blockSize] = value
	cs.length++
	return index
}

// Get returns a pointer to the component at the given index, or nil if out of range.
func (cs *blockStorage[T]) Get(index int) any {
	if index < 0 || index >= cs.length {
		return nil
	}
	return &cs.blocks[index/blockSize][index%blockSize]
}

func (cs *blockStorage[T]) Len() int {
	return cs.length
}

func (cs *blockStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.length; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
