package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool
	OriginX   float64
	OriginY   float64
	// OffsetX/OffsetY shift the image inside its transform, e.g. window
	// padding around overlay contents.
	OffsetX float64
	OffsetY float64
}

var SpriteComponent = NewComponent[Sprite]()
