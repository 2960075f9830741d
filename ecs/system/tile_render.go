package system

import (
	"image"
	"math"
	"sort"

	"github.com/emilyahsu/dad-birthday-card/assets"
	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
	"github.com/hajimehoshi/ebiten/v2"
)

// TileRenderSystem draws the photo tiles in stacking order, each rotated
// around its center with a shadow that deepens while lifted.
type TileRenderSystem struct {
	theme Theme
}

func NewTileRenderSystem(theme Theme) *TileRenderSystem {
	return &TileRenderSystem{theme: theme}
}

func (r *TileRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	b, ok := lookupBoard(w)
	if !ok || b.container == nil || b.container.TileSize <= 0 {
		return
	}
	size := b.container.TileSize

	entities := ecs.Query(w, component.TileComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		return layerOf(w, entities[i]) < layerOf(w, entities[j])
	})

	for _, e := range entities {
		tile, _ := ecs.Get(w, e, component.TileComponent.Kind())
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			continue
		}
		if sprite.Image == nil || sprite.Size != size {
			r.rebuildSprite(sprite, *tile, size)
		}
		lift := 0.0
		if vis, ok := ecs.Get(w, e, component.TileVisualComponent.Kind()); ok {
			lift = vis.Shadow
		}
		r.drawTile(screen, sprite, *tr, size, lift)
	}
}

func (r *TileRenderSystem) drawTile(screen *ebiten.Image, sprite *component.Sprite, tr component.Transform, size, lift float64) {
	scale := tr.ScaleX
	if scale <= 0 {
		scale = 1
	}
	cx, cy := tr.X+size/2, tr.Y+size/2

	// two shadow passes: a tight contact shadow and a wide soft one
	passes := [2]struct{ offset, spread, alpha float64 }{
		{offset: common.Lerp(4, 8, lift), spread: 0, alpha: common.Lerp(0.10, 0.12, lift)},
		{offset: common.Lerp(10, 22, lift), spread: common.Lerp(2, 10, lift), alpha: common.Lerp(0.08, 0.18, lift)},
	}
	for _, p := range passes {
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Translate(-size/2, -size/2)
		k := (size + p.spread) / size * scale
		op.GeoM.Scale(k, k)
		op.GeoM.Rotate(tr.Rotation)
		op.GeoM.Translate(cx, cy+p.offset)
		op.ColorScale.ScaleAlpha(float32(p.alpha))
		screen.DrawImage(sprite.Shadow, op)
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(tr.Rotation)
	op.GeoM.Translate(cx, cy)
	screen.DrawImage(sprite.Image, op)
}

func (r *TileRenderSystem) rebuildSprite(sprite *component.Sprite, tile component.Tile, size float64) {
	if sprite.Image != nil {
		sprite.Image.Deallocate()
	}
	if sprite.Shadow != nil {
		sprite.Shadow.Deallocate()
	}
	px := int(math.Ceil(size))
	sprite.Size = size

	sprite.Shadow = ebiten.NewImage(px, px)
	fillRoundedRect(sprite.Shadow, 0, 0, size, size, 8, shadowColor, 1)

	img := ebiten.NewImage(px, px)
	fillRoundedRect(img, 0, 0, size, size, 8, r.theme.Tile, 1)

	pad, labelSize, captionSize := 8.0, 12.0, 10.0
	if size >= 128 {
		pad, labelSize, captionSize = 12, 14, 12
	}
	inner := image.Rect(int(pad), int(pad), px-int(pad), px-int(pad))
	if !inner.Empty() {
		fillDiagonalGradient(img.SubImage(inner).(*ebiten.Image), r.theme.PhotoFrom, r.theme.PhotoFrom, r.theme.PhotoTo)
	}

	textW := size - 2*pad - 8
	label := newTextBlock(tile.Label, assets.Face(assets.Medium, labelSize), textW)
	caption := newTextBlock(tile.Caption, assets.Face(assets.Regular, captionSize), textW)
	y := (size - label.height() - caption.height() - 4) / 2
	label.draw(img, size/2, y, r.theme.PhotoText)
	caption.draw(img, size/2, y+label.height()+4, r.theme.PhotoText)

	sprite.Image = img
}
