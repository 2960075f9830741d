package system

import (
	"math"

	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
)

// shadowSeconds is how long the lifted shadow takes to settle.
const shadowSeconds = 0.15

// TransitionSystem eases each tile's displayed Transform toward its stored
// position. The dragged tile follows the pointer without easing; released
// tiles settle over TileVisual.Duration. It also serves reset requests.
type TransitionSystem struct{}

func NewTransitionSystem() *TransitionSystem {
	return &TransitionSystem{}
}

// RequestReset asks for every tile to return to where the card placed it.
func RequestReset(w *ecs.World) {
	b, ok := lookupBoard(w)
	if !ok {
		return
	}
	_ = ecs.Add(w, b.entity, component.ResetRequestComponent.Kind(), &component.ResetRequest{})
}

func (s *TransitionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	b, ok := lookupBoard(w)
	if !ok || b.container == nil {
		return
	}

	if ecs.Has(w, b.entity, component.ResetRequestComponent.Kind()) {
		ecs.Remove(w, b.entity, component.ResetRequestComponent.Kind())
		EndDrag(w)
		ecs.ForEach2(w, component.TileComponent.Kind(), component.HomeComponent.Kind(), func(_ ecs.Entity, t *component.Tile, h *component.Home) {
			t.X, t.Y = h.X, h.Y
		})
	}

	const dt = 1.0 / common.TPS
	c := b.container
	dragScale := b.dragScale()

	ecs.ForEach3(w, component.TileComponent.Kind(), component.TransformComponent.Kind(), component.TileVisualComponent.Kind(),
		func(_ ecs.Entity, t *component.Tile, tr *component.Transform, vis *component.TileVisual) {
			target := TileRect(*c, *t)
			dragged := b.session.Active && b.session.TileID == t.ID
			lifted := dragged || b.session.HoverTileID == t.ID
			scale := 1.0
			if dragged {
				scale = dragScale
			}

			resized := vis.ContainerW != c.Rect.Width || vis.ContainerH != c.Rect.Height
			vis.ContainerW, vis.ContainerH = c.Rect.Width, c.Rect.Height

			switch {
			case dragged || resized:
				snapVisual(vis, target.X, target.Y, scale)
			case target.X != vis.ToX || target.Y != vis.ToY || scale != vis.ToScale:
				vis.FromX, vis.FromY, vis.FromScale = tr.X, tr.Y, tr.ScaleX
				vis.ToX, vis.ToY, vis.ToScale = target.X, target.Y, scale
				vis.Elapsed = dt
			default:
				vis.Elapsed += dt
			}

			progress := 1.0
			if vis.Duration > 0 {
				progress = common.EaseOutCubic(vis.Elapsed / vis.Duration)
			}
			tr.X = common.Lerp(vis.FromX, vis.ToX, progress)
			tr.Y = common.Lerp(vis.FromY, vis.ToY, progress)
			tr.ScaleX = common.Lerp(vis.FromScale, vis.ToScale, progress)
			tr.ScaleY = tr.ScaleX
			tr.Rotation = common.DegToRad(t.Rotation)

			shadow := 0.0
			if lifted {
				shadow = 1
			}
			step := dt / shadowSeconds
			if d := shadow - vis.Shadow; math.Abs(d) <= step {
				vis.Shadow = shadow
			} else {
				vis.Shadow += math.Copysign(step, d)
			}
		})
}

func snapVisual(vis *component.TileVisual, x, y, scale float64) {
	vis.FromX, vis.FromY, vis.FromScale = x, y, scale
	vis.ToX, vis.ToY, vis.ToScale = x, y, scale
	vis.Elapsed = vis.Duration
}
