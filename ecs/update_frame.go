package ecs

// UpdateFrame is handed to every system during one scheduler tick.
type UpdateFrame struct {
	// Tick counts scheduler runs, starting at 1.
	Tick      uint64
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(tick uint64, dt float64, storage *Storage, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		Tick:      tick,
		DeltaTime: dt,
		Commands:  commands,
		Storage:   storage,
	}
}
