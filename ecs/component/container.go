package component

import "github.com/emilyahsu/dad-birthday-card/common"

// Container is the measured area tiles live in and the tile edge length the
// responsive layout picked for it.
type Container struct {
	Rect     common.Rect
	TileSize float64
}

var ContainerComponent = NewComponent[Container]()
