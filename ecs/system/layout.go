package system

import (
	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
)

// LayoutSystem measures the container every tick. size reports the current
// logical screen size; tileSize maps a container width onto a tile edge.
type LayoutSystem struct {
	size     func() (float64, float64)
	tileSize func(width float64) float64
}

func NewLayoutSystem(size func() (float64, float64), tileSize func(width float64) float64) *LayoutSystem {
	return &LayoutSystem{size: size, tileSize: tileSize}
}

func (s *LayoutSystem) Update(w *ecs.World) {
	if w == nil || s.size == nil {
		return
	}
	width, height := s.size()
	ecs.ForEach(w, component.ContainerComponent.Kind(), func(_ ecs.Entity, c *component.Container) {
		c.Rect = common.Rect{Width: width, Height: height}
		if s.tileSize != nil {
			c.TileSize = s.tileSize(width)
		}
	})
}
