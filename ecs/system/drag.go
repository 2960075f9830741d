package system

import (
	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
)

// BeginDrag starts dragging tileID. elem is the tile's on-screen box at grab
// time; the pointer's offset from its top-left corner is kept for the whole
// drag. It reports whether a session was started.
func BeginDrag(w *ecs.World, tileID int, pointer common.Point, elem common.Rect) bool {
	b, ok := lookupBoard(w)
	if !ok || b.session.Active {
		return false
	}
	if b.container == nil || b.container.Rect.Empty() {
		return false
	}
	e, _, ok := findTile(w, tileID)
	if !ok {
		return false
	}

	*b.session = component.DragSession{
		Active:      true,
		TileID:      tileID,
		OffsetX:     pointer.X - elem.X,
		OffsetY:     pointer.Y - elem.Y,
		HoverTileID: tileID,
	}

	if b.rules != nil && b.rules.RaiseOnGrab {
		raise(w, e)
	}
	return true
}

// UpdateDrag moves the dragged tile so the grab offset stays under the
// pointer. Positions are stored as container percentages clamped to the
// board's range. Idle sessions are left alone.
func UpdateDrag(w *ecs.World, pointer common.Point) {
	b, ok := lookupBoard(w)
	if !ok || !b.session.Active {
		return
	}
	if b.container == nil || b.container.Rect.Empty() {
		return
	}
	_, tile, ok := findTile(w, b.session.TileID)
	if !ok {
		return
	}

	c := b.container.Rect
	lo, hi := b.clampRange()
	x := (pointer.X - b.session.OffsetX - c.X) / c.Width * 100
	y := (pointer.Y - b.session.OffsetY - c.Y) / c.Height * 100
	tile.X = common.Clamp(x, lo, hi)
	tile.Y = common.Clamp(y, lo, hi)
}

// EndDrag returns the session to idle. Calling it while idle is fine.
func EndDrag(w *ecs.World) {
	b, ok := lookupBoard(w)
	if !ok {
		return
	}
	hover := b.session.HoverTileID
	*b.session = component.DragSession{HoverTileID: hover}
}

// displayedRect is the unscaled box a tile is drawn in, which trails its
// stored position while a transition is running.
func displayedRect(w *ecs.World, e ecs.Entity, c component.Container, t component.Tile) common.Rect {
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return TileRect(c, t)
	}
	return common.Rect{X: tr.X, Y: tr.Y, Width: c.TileSize, Height: c.TileSize}
}

// raise puts e above every other tile.
func raise(w *ecs.World, e ecs.Entity) {
	layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind())
	if !ok {
		return
	}
	top := layer.Index
	ecs.ForEach(w, component.RenderLayerComponent.Kind(), func(other ecs.Entity, l *component.RenderLayer) {
		if other != e && l.Index >= top {
			top = l.Index + 1
		}
	})
	layer.Index = top
}

// DragSystem turns the board's pointer sample into drag operations.
type DragSystem struct{}

func NewDragSystem() *DragSystem {
	return &DragSystem{}
}

func (s *DragSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	b, ok := lookupBoard(w)
	if !ok || b.pointer == nil {
		return
	}
	p := b.pointer

	if p.Pressed && !p.Left && !b.session.Active && b.container != nil {
		if id := TileAt(w, p.Pos); id != 0 {
			e, tile, _ := findTile(w, id)
			BeginDrag(w, id, p.Pos, displayedRect(w, e, *b.container, *tile))
		}
	}

	if b.session.Active {
		if p.Down && !p.Left {
			UpdateDrag(w, p.Pos)
		}
		if p.Released || p.Left || !p.Down {
			EndDrag(w)
		}
	}

	switch {
	case b.session.Active:
		b.session.HoverTileID = b.session.TileID
	case p.Source == component.PointerMouse && !p.Left:
		b.session.HoverTileID = TileAt(w, p.Pos)
	default:
		b.session.HoverTileID = 0
	}
}

// Dragging reports whether a tile is being dragged.
func Dragging(w *ecs.World) bool {
	b, ok := lookupBoard(w)
	return ok && b.session.Active
}

// Hovering reports whether an idle pointer is over a tile.
func Hovering(w *ecs.World) bool {
	b, ok := lookupBoard(w)
	return ok && b.session.HoverTileID != 0
}
