// Package render paints aquarium frames onto ebiten images.
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/marium/aquarium"
)

// DrawOp is one image draw within a composed frame.
type DrawOp struct {
	Image    *ebiten.Image
	GeoM     ebiten.GeoM
	Size     image.Point
	Mirrored bool
}

// Compositor draws the background and then every fish of a frame.
// Sprite images are shared with every fish that references them and are
// never modified; east-facing fish reuse the west-facing image, mirrored.
type Compositor struct {
	background *ebiten.Image
	sprites    []*ebiten.Image
	ops        []DrawOp
}

// NewCompositor creates a compositor over the background and sprite pool.
// Sprite indices in frames refer to positions in sprites.
func NewCompositor(background *ebiten.Image, sprites []*ebiten.Image) *Compositor {
	return &Compositor{
		background: background,
		sprites:    sprites,
	}
}

// Plan appends the draw operations for frame to ops and returns the result:
// the background at the origin, then one op per fish in frame order.
func (c *Compositor) Plan(frame *aquarium.Frame, ops []DrawOp) []DrawOp {
	ops = append(ops, DrawOp{Image: c.background})
	if c.background != nil {
		ops[len(ops)-1].Size = c.background.Bounds().Size()
	}

	if frame == nil {
		return ops
	}

	for _, fish := range frame.Fish {
		ops = append(ops, c.fishOp(fish))
	}
	return ops
}

func (c *Compositor) fishOp(fish aquarium.FishState) DrawOp {
	op := DrawOp{
		Image:    c.sprites[fish.Sprite.Index],
		Size:     fish.Sprite.Size,
		Mirrored: fish.Facing.Mirrored(),
	}

	if op.Mirrored {
		// Flip around the sprite's vertical centre line so it still covers
		// [x, x+w) once translated.
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(fish.Sprite.Size.X), 0)
	}
	op.GeoM.Translate(float64(fish.Position.X), float64(fish.Position.Y))
	return op
}

// Draw composes frame onto dst.
func (c *Compositor) Draw(dst *ebiten.Image, frame *aquarium.Frame) {
	c.ops = c.Plan(frame, c.ops[:0])
	for i := range c.ops {
		op := &c.ops[i]
		if op.Image == nil {
			continue
		}
		dst.DrawImage(op.Image, &ebiten.DrawImageOptions{GeoM: op.GeoM})
	}
}
