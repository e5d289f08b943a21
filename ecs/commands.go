package ecs

// Commands buffers work that must not run while systems iterate storage.
// Everything queued during a tick runs, in order, once all systems have executed.
type Commands struct {
	spawns [][]any
	defers []func()
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all queued commands to storage, resetting the buffer state.
// Spawns run before deferred functions.
func (c *Commands) Flush(storage *Storage) {
	for _, components := range c.spawns {
		storage.Spawn(components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.spawns)
	clear(c.defers)
	c.spawns = c.spawns[:0]
	c.defers = c.defers[:0]
}
