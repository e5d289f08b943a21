package aquarium

import "github.com/plus3/marium/ecs"

// Fish is the view of one swimming entity.
type Fish struct {
	ecs.EntityId
	*Position
	*Velocity
	*Facing
	*Sprite
}

// Update advances the fish by one tick. Position moves by velocity, then each
// axis is checked on its own: a fish that left its span is clamped back to the
// nearest edge and that velocity component is negated. Facing is recomputed
// from the horizontal velocity afterwards.
func (f Fish) Update(bounds Boundary) {
	lo, hi := bounds.Span(f.Sprite.Size)

	f.Position.X, f.Velocity.DX = reflectAxis(f.Position.X+f.Velocity.DX, f.Velocity.DX, lo.X, hi.X)
	f.Position.Y, f.Velocity.DY = reflectAxis(f.Position.Y+f.Velocity.DY, f.Velocity.DY, lo.Y, hi.Y)

	*f.Facing = FacingFor(f.Velocity.DX)
}

func reflectAxis(pos, vel float32, lo, hi int) (float32, float32) {
	switch {
	case pos < float32(lo):
		return float32(lo), -vel
	case pos > float32(hi):
		return float32(hi), -vel
	default:
		return pos, vel
	}
}

// State copies the fish's drawable fields.
func (f Fish) State() FishState {
	return FishState{
		Position: *f.Position,
		Facing:   *f.Facing,
		Sprite:   *f.Sprite,
	}
}
