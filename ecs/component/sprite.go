package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite caches the pre-rendered face of a tile. Size is the edge length the
// image was rendered at; the render system rebuilds it when the layout size
// changes.
type Sprite struct {
	Image  *ebiten.Image
	Shadow *ebiten.Image
	Size   float64
}

var SpriteComponent = NewComponent[Sprite]()
