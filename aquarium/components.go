package aquarium

import (
	"image"

	"github.com/plus3/marium/ecs"
)

// Position is the top-left corner of a fish's sprite, in pixels.
type Position struct {
	X, Y float32
}

// Velocity is the per-tick displacement of a fish, in pixels.
type Velocity struct {
	DX, DY float32
}

// Facing is the direction a fish's sprite should face when drawn.
type Facing uint8

const (
	// FacingWest is how sprite assets are drawn: unmodified.
	FacingWest Facing = iota
	// FacingEast sprites are mirrored horizontally on draw.
	FacingEast
)

// FacingFor derives the facing from the horizontal velocity.
// A fish that is not moving horizontally faces west.
func FacingFor(dx float32) Facing {
	if dx > 0 {
		return FacingEast
	}
	return FacingWest
}

// Mirrored reports whether the sprite must be flipped to face this way.
func (f Facing) Mirrored() bool {
	return f != FacingWest
}

func (f Facing) String() string {
	switch f {
	case FacingWest:
		return "west"
	case FacingEast:
		return "east"
	default:
		return "unknown"
	}
}

// Sprite references a member of the shared sprite pool.
type Sprite struct {
	Index int
	Size  image.Point
}

// Insets are the margins removed from the viewport to form the boundary.
type Insets struct {
	Top, Left, Bottom, Right int
}

// Boundary is the region fish must stay within. It is stored as a singleton
// and never changes once the simulation is built.
type Boundary struct {
	Rect image.Rectangle
}

// NewBoundary computes the boundary of a width x height viewport minus insets.
// Insets that meet or cross leave an empty boundary; the corners are never
// swapped back into a valid rectangle.
func NewBoundary(width, height int, insets Insets) Boundary {
	return Boundary{
		Rect: image.Rectangle{
			Min: image.Pt(insets.Left, insets.Top),
			Max: image.Pt(width-insets.Right, height-insets.Bottom),
		},
	}
}

// Span returns the inclusive range a sprite's top-left corner may occupy on
// each axis. When the sprite is larger than the boundary the range collapses
// to the boundary's minimum.
func (b Boundary) Span(size image.Point) (lo, hi image.Point) {
	lo = b.Rect.Min
	hi = b.Rect.Max.Sub(size)
	hi.X = max(hi.X, lo.X)
	hi.Y = max(hi.Y, lo.Y)
	return lo, hi
}

// RegisterComponents registers every aquarium component with registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Facing](registry)
	ecs.RegisterComponent[Sprite](registry)
}
