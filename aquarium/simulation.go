package aquarium

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"github.com/plus3/marium/ecs"
	"go.uber.org/zap"
)

var (
	ErrNoSprites          = errors.New("aquarium: sprite pool is empty")
	ErrNegativePopulation = errors.New("aquarium: population must not be negative")
	ErrInvalidInterval    = errors.New("aquarium: tick interval must be positive")
	ErrInvalidMaxSpeed    = errors.New("aquarium: max speed must not be negative")
	ErrInvalidSpriteSize  = errors.New("aquarium: sprite sizes must be positive")
	ErrEmptyBoundary      = errors.New("aquarium: boundary is empty")
)

// Options configure a Simulation.
type Options struct {
	Population int
	Interval   time.Duration
	MaxSpeed   int
	Seed       uint64
	Bounds     Boundary
	// Sprites holds the pixel size of every pool member, in pool order.
	Sprites []image.Point
	Logger  *zap.Logger
}

// Simulation owns the aquarium world and the scheduler that advances it.
// Only the goroutine running Run (or calling Step) touches the world; every
// other goroutine reads published Frames.
type Simulation struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	interval  time.Duration
	fish      []ecs.EntityId
	world     *ecs.StorageStats
	publisher *PublishSystem
	log       *zap.Logger

	latest atomic.Pointer[Frame]
	redraw chan struct{}
}

// New builds the world, spawns the population and publishes the initial frame.
func New(opts Options) (*Simulation, error) {
	switch {
	case len(opts.Sprites) == 0:
		return nil, ErrNoSprites
	case opts.Population < 0:
		return nil, fmt.Errorf("%w: %d", ErrNegativePopulation, opts.Population)
	case opts.Interval <= 0:
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, opts.Interval)
	case opts.MaxSpeed < 0:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxSpeed, opts.MaxSpeed)
	case opts.Bounds.Rect.Empty():
		return nil, ErrEmptyBoundary
	}
	for i, size := range opts.Sprites {
		if size.X <= 0 || size.Y <= 0 {
			return nil, fmt.Errorf("%w: sprite %d is %v", ErrInvalidSpriteSize, i, size)
		}
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	ecs.NewSingleton[Boundary](storage, opts.Bounds)

	s := &Simulation{
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
		interval:  opts.Interval,
		log:       log,
		redraw:    make(chan struct{}, 1),
	}

	s.fish = Populate(storage, NewRand(opts.Seed), opts.Bounds, opts.Sprites, opts.Population, opts.MaxSpeed)
	s.world = storage.CollectStats()

	s.publisher = &PublishSystem{
		publish: s.publish,
		stats:   s.scheduler.GetStats,
		world:   s.world,
	}
	s.scheduler.Register(&SwimSystem{})
	s.scheduler.Register(s.publisher)

	// Tick 0: the population as spawned.
	s.publish(s.publisher.snapshot(0, ecs.NewView[Fish](storage).Values(), len(s.fish)))

	log.Debug("aquarium populated",
		zap.Int("fish", len(s.fish)),
		zap.Uint64("seed", opts.Seed),
		zap.Stringer("bounds", opts.Bounds.Rect),
	)
	return s, nil
}

// Run ticks the simulation every interval until ctx is cancelled.
// A tick that overruns its slot simply delays the next one.
func (s *Simulation) Run(ctx context.Context) {
	s.log.Info("simulation started", zap.Duration("interval", s.interval), zap.Int("fish", len(s.fish)))
	s.scheduler.Run(ctx, s.interval)
	s.log.Info("simulation stopped", zap.Uint64("ticks", s.scheduler.GetStats().Ticks))
}

// Step runs exactly one tick on the calling goroutine.
func (s *Simulation) Step() {
	s.scheduler.Once(s.interval.Seconds())
}

// Frame returns the most recently published frame. It is never nil.
func (s *Simulation) Frame() *Frame {
	return s.latest.Load()
}

// Redraw delivers a value whenever a frame has been published since the last
// receive. Publishing never waits for a reader.
func (s *Simulation) Redraw() <-chan struct{} {
	return s.redraw
}

// Fish returns the ids of the population in iteration order.
func (s *Simulation) Fish() []ecs.EntityId {
	return s.fish
}

// Storage exposes the world for inspection. It must only be used from the
// goroutine that drives the simulation.
func (s *Simulation) Storage() *ecs.Storage {
	return s.storage
}

func (s *Simulation) publish(frame *Frame) {
	s.latest.Store(frame)
	select {
	case s.redraw <- struct{}{}:
	default:
	}
}

