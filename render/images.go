package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewImages uploads decoded images as ebiten images, keeping their order.
func NewImages(images []image.Image) []*ebiten.Image {
	out := make([]*ebiten.Image, len(images))
	for i, img := range images {
		out[i] = ebiten.NewImageFromImage(img)
	}
	return out
}
