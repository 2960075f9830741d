package system

import (
	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
)

// HitSyncSystem mirrors each tile's displayed box into the hit world so
// pointer tests match what is drawn, rotation and drag scale included.
type HitSyncSystem struct{}

func NewHitSyncSystem() *HitSyncSystem {
	return &HitSyncSystem{}
}

func (s *HitSyncSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	hw := w.HitWorld()
	if hw == nil {
		return
	}
	b, ok := lookupBoard(w)
	if !ok || b.container == nil || b.container.TileSize <= 0 {
		return
	}
	size := b.container.TileSize

	ecs.ForEach2(w, component.TileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Tile, tr *component.Transform) {
		scale := tr.ScaleX
		if scale <= 0 {
			scale = 1
		}
		center := common.Point{X: tr.X + size/2, Y: tr.Y + size/2}
		hw.Sync(e, center, size*scale, tr.Rotation)
	})
	hw.Step()
}
