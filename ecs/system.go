package ecs

// System represents a behavior that operates on entities with specific components.
// Systems may declare Query and Singleton fields, which the Scheduler initializes
// on registration, as well as custom state fields that persist between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}
