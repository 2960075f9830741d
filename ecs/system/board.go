package system

import (
	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
)

// board bundles the singleton components the drag code works on.
type board struct {
	entity    ecs.Entity
	container *component.Container
	session   *component.DragSession
	rules     *component.DragRules
	pointer   *component.Pointer
}

func lookupBoard(w *ecs.World) (board, bool) {
	e, ok := ecs.First(w, component.BoardTagComponent.Kind())
	if !ok {
		return board{}, false
	}
	b := board{entity: e}
	b.container, _ = ecs.Get(w, e, component.ContainerComponent.Kind())
	b.session, _ = ecs.Get(w, e, component.DragSessionComponent.Kind())
	b.rules, _ = ecs.Get(w, e, component.DragRulesComponent.Kind())
	b.pointer, _ = ecs.Get(w, e, component.PointerComponent.Kind())
	return b, b.session != nil
}

func (b board) clampRange() (float64, float64) {
	if b.rules == nil || b.rules.ClampMin >= b.rules.ClampMax {
		return 0, 85
	}
	return b.rules.ClampMin, b.rules.ClampMax
}

func (b board) dragScale() float64 {
	if b.rules == nil || b.rules.Scale <= 0 {
		return 1
	}
	return b.rules.Scale
}

func findTile(w *ecs.World, id int) (ecs.Entity, *component.Tile, bool) {
	var (
		found ecs.Entity
		tile  *component.Tile
	)
	ecs.ForEach(w, component.TileComponent.Kind(), func(e ecs.Entity, t *component.Tile) {
		if tile == nil && t.ID == id {
			found, tile = e, t
		}
	})
	return found, tile, tile != nil
}

// TileRect is the unrotated layout box of a tile in screen pixels.
func TileRect(c component.Container, t component.Tile) common.Rect {
	return common.Rect{
		X:      c.Rect.X + t.X/100*c.Rect.Width,
		Y:      c.Rect.Y + t.Y/100*c.Rect.Height,
		Width:  c.TileSize,
		Height: c.TileSize,
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

// TileAt returns the id of the topmost tile under p, or 0.
func TileAt(w *ecs.World, p common.Point) int {
	var candidates []ecs.Entity
	if hw := w.HitWorld(); hw != nil && hw.Len() > 0 {
		candidates = hw.HitsAt(p)
	} else if b, ok := lookupBoard(w); ok && b.container != nil {
		ecs.ForEach(w, component.TileComponent.Kind(), func(e ecs.Entity, t *component.Tile) {
			if TileRect(*b.container, *t).Contains(p) {
				candidates = append(candidates, e)
			}
		})
	}

	best, bestLayer := 0, 0
	for _, e := range candidates {
		t, ok := ecs.Get(w, e, component.TileComponent.Kind())
		if !ok {
			continue
		}
		if l := layerOf(w, e); best == 0 || l > bestLayer {
			best, bestLayer = t.ID, l
		}
	}
	return best
}
