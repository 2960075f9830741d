package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

// DrawHitDebug outlines every hit shape and highlights the active tile.
func DrawHitDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	hw := w.HitWorld()
	if hw == nil {
		return
	}
	cp.DrawSpace(hw.Space(), &hitDebugDrawer{screen: screen})

	b, ok := lookupBoard(w)
	if !ok {
		return
	}
	active := b.session.HoverTileID
	if b.session.Active {
		active = b.session.TileID
	}
	if e, _, ok := findTile(w, active); ok {
		if corners, ok := hw.Corners(e); ok {
			for i := range corners {
				a, c := corners[i], corners[(i+1)%len(corners)]
				vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(c.X), float32(c.Y), 2, color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}, true)
			}
		}
	}
}

// DrawDragDebug prints the pointer and drag session state.
func DrawDragDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	b, ok := lookupBoard(w)
	if !ok || b.pointer == nil {
		return
	}
	p := b.pointer
	text := fmt.Sprintf("Pointer: %.0f,%.0f down=%v left=%v\nDrag: active=%v tile=%d offset=%.1f,%.1f\nHover: %d\nTPS: %.1f",
		p.Pos.X, p.Pos.Y, p.Down, p.Left,
		b.session.Active, b.session.TileID, b.session.OffsetX, b.session.OffsetY,
		b.session.HoverTileID, ebiten.ActualTPS())
	if b.session.Active {
		if _, tile, ok := findTile(w, b.session.TileID); ok {
			text += fmt.Sprintf("\nTile %d: %.1f%%, %.1f%%", tile.ID, tile.X, tile.Y)
		}
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

type hitDebugDrawer struct {
	screen *ebiten.Image
}

func (d *hitDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *hitDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *hitDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *hitDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *hitDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *hitDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *hitDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *hitDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *hitDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *hitDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *hitDebugDrawer) Data() interface{} {
	return nil
}

func (d *hitDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	vector.StrokeLine(d.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, toNRGBA(c), true)
}

func (d *hitDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *hitDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
