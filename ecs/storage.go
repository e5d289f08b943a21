package ecs

import (
	"reflect"
	"slices"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// iface represents the internal memory layout of an interface{}.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

type singletonEntry struct {
	typ     reflect.Type
	dataPtr unsafe.Pointer
}

// Storage is the main ECS storage.
// It is not safe for concurrent use: one goroutine owns it and everything
// else reads published copies.
type Storage struct {
	archetypes *intmap.Map[uint32, *Archetype]
	// order holds archetypes in creation order so iteration is deterministic.
	order      []*Archetype
	singletons map[reflect.Type]*singletonEntry
	registry   *ComponentRegistry
}

// NewStorage creates a new ECS storage with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: make(map[reflect.Type]*singletonEntry),
		registry:   registry,
	}
}

// GetArchetype returns the archetype holding exactly the given component kinds, if one exists
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	archetype, _ := s.archetypes.Get(hashTypesToUint32(types))
	return archetype
}

// GetArchetypeByTypes returns an archetype (if one exists) based on reflect.Type
func (s *Storage) GetArchetypeByTypes(types []reflect.Type) *Archetype {
	sorted := slices.Clone(types)
	slices.SortFunc(sorted, compareTypeNames)
	archetype, _ := s.archetypes.Get(hashTypesToUint32(sorted))
	return archetype
}

// Archetypes returns every archetype in creation order
func (s *Storage) Archetypes() []*Archetype {
	return s.order
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	archetypeId := hashTypesToUint32(types)
	archetype, exists := s.archetypes.Get(archetypeId)
	if !exists {
		archetype = NewArchetype(archetypeId, types, s.registry)
		s.archetypes.Put(archetypeId, archetype)
		s.order = append(s.order, archetype)
	}
	return archetype
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	archetype := s.archetypeFor(extractComponentTypes(components))
	entityIndex := archetype.Spawn(components)
	return NewEntityId(archetype.id, entityIndex)
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return false
	}
	return archetype.HasComponent(compType)
}

// AddSingleton stores value as the singleton of its type. An existing singleton
// is overwritten in place so pointers obtained earlier stay valid.
func (s *Storage) AddSingleton(value any) {
	typ := componentType(value)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if entry := s.singletons[typ]; entry != nil {
		reflect.NewAt(typ, entry.dataPtr).Elem().Set(v)
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(v)
	s.singletons[typ] = &singletonEntry{
		typ:     typ,
		dataPtr: ptr.UnsafePointer(),
	}
}

// ReadSingleton points *out at the singleton of type T and reports whether it exists.
// out must be a **T.
func (s *Storage) ReadSingleton(out any) bool {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Ptr || target.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton requires a pointer to a pointer")
	}

	typ := target.Elem().Type().Elem()
	entry := s.getSingletonEntry(typ)
	if entry == nil {
		return false
	}

	target.Elem().Set(reflect.NewAt(typ, entry.dataPtr))
	return true
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	return s.singletons[typ]
}

func componentType(comp any) reflect.Type {
	compType := reflect.TypeOf(comp)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}
	return compType
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentType(comp)

		// Components are value types: structs or named primitives.
		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	slices.SortFunc(types, compareTypeNames)
	return types
}

// hashTypesToUint32 generates a uint32 hash for a sorted slice of types
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261     // FNV-1a 32-bit offset basis
	const prime uint32 = 16777619 // FNV-1a 32-bit prime

	for _, t := range types {
		// The runtime type descriptor address is unique per type.
		ptr := (*iface)(unsafe.Pointer(&t)).data
		val := uint32(uintptr(ptr))

		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uintptr(ptr) >> 32)
		}

		h ^= val
		h *= prime
	}

	return h
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the T component of entityId, or nil if it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
