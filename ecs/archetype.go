package ecs

import (
	"iter"
	"reflect"
	"slices"
	"strings"
)

func compareTypeNames(a, b reflect.Type) int {
	return strings.Compare(a.String(), b.String())
}

// Archetype represents a unique combination of component types.
// Entities are appended and never removed, so slot order is spawn order.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []componentStorage
}

// NewArchetype creates a new archetype with the given ID and sorted component types
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]componentStorage, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

// Spawn appends one entity with the given components and returns its slot index.
// Components are matched to columns by type, so their order does not matter.
func (a *Archetype) Spawn(components []any) uint32 {
	var slot int
	for _, comp := range components {
		idx := a.columnOf(componentType(comp))
		if idx == -1 {
			panic("component type " + componentType(comp).String() + " is not part of this archetype")
		}
		slot = a.storages[idx].Append(comp)
	}
	return uint32(slot)
}

func (a *Archetype) columnOf(compType reflect.Type) int {
	return slices.Index(a.types, compType)
}

// GetComponent returns a pointer to the component of the given type for the entity at entityIndex
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	idx := a.columnOf(compType)
	if idx == -1 {
		return nil
	}
	return a.storages[idx].Get(int(entityIndex))
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return a.columnOf(compType) != -1
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of entities stored in this archetype
func (a *Archetype) Len() int {
	if len(a.storages) == 0 {
		return 0
	}
	return a.storages[0].Len()
}

// Iter returns an iterator over all EntityIds in this archetype in spawn order
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}

		for index := range a.storages[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
