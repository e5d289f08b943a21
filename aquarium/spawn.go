package aquarium

import (
	"image"
	"math/rand/v2"

	"github.com/plus3/marium/ecs"
)

// Populate spawns count fish, each with a random pool member, a random position
// inside bounds and a random velocity whose components lie in
// [-maxSpeed, maxSpeed]. The same rng state always yields the same fish.
func Populate(storage *ecs.Storage, rng *rand.Rand, bounds Boundary, sprites []image.Point, count, maxSpeed int) []ecs.EntityId {
	view := ecs.NewView[Fish](storage)
	ids := make([]ecs.EntityId, 0, count)

	for i := 0; i < count; i++ {
		index := rng.IntN(len(sprites))
		sprite := Sprite{Index: index, Size: sprites[index]}

		lo, hi := bounds.Span(sprite.Size)
		position := Position{
			X: float32(lo.X + rng.IntN(hi.X-lo.X+1)),
			Y: float32(lo.Y + rng.IntN(hi.Y-lo.Y+1)),
		}
		velocity := Velocity{
			DX: float32(rng.IntN(2*maxSpeed+1) - maxSpeed),
			DY: float32(rng.IntN(2*maxSpeed+1) - maxSpeed),
		}
		facing := FacingFor(velocity.DX)

		ids = append(ids, view.Spawn(Fish{
			Position: &position,
			Velocity: &velocity,
			Facing:   &facing,
			Sprite:   &sprite,
		}))
	}

	return ids
}

// NewRand returns the generator used for spawning, seeded deterministically.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
