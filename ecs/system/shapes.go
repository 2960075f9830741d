package system

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whitePixel *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// premultiplied returns the color's channels scaled to [0, 1], alpha
// premultiplied, with an extra opacity factor applied.
func premultiplied(c color.Color, alpha float64) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	k := float32(alpha) / 0xffff
	return float32(cr) * k, float32(cg) * k, float32(cb) * k, float32(ca) * k
}

// fillPath fills a closed path with a solid color.
func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color, alpha float64) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := premultiplied(clr, alpha)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		FillRule:       ebiten.NonZero,
		AntiAlias:      true,
	}
	dst.DrawTriangles(vs, is, whiteSubImage(), op)
}

func roundedRectPath(x, y, w, h, r float32) *vector.Path {
	r = float32(math.Min(float64(r), math.Min(float64(w), float64(h))/2))
	var p vector.Path
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w, y, x+w, y+r, r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w, y+h, x+w-r, y+h, r)
	p.LineTo(x+r, y+h)
	p.ArcTo(x, y+h, x, y+h-r, r)
	p.LineTo(x, y+r)
	p.ArcTo(x, y, x+r, y, r)
	p.Close()
	return &p
}

func fillRoundedRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.Color, alpha float64) {
	if w <= 0 || h <= 0 {
		return
	}
	fillPath(dst, roundedRectPath(float32(x), float32(y), float32(w), float32(h), float32(r)), clr, alpha)
}

// heartPath outlines a heart filling the size x size box at (x, y).
func heartPath(x, y, size float32) *vector.Path {
	pt := func(u, v float32) (float32, float32) { return x + u*size, y + v*size }
	var p vector.Path
	p.MoveTo(pt(0.5, 0.92))
	x1, y1 := pt(0.1, 0.62)
	x2, y2 := pt(0, 0.36)
	x3, y3 := pt(0.14, 0.18)
	p.CubicTo(x1, y1, x2, y2, x3, y3)
	x1, y1 = pt(0.28, 0.02)
	x2, y2 = pt(0.5, 0.1)
	x3, y3 = pt(0.5, 0.3)
	p.CubicTo(x1, y1, x2, y2, x3, y3)
	x1, y1 = pt(0.5, 0.1)
	x2, y2 = pt(0.72, 0.02)
	x3, y3 = pt(0.86, 0.18)
	p.CubicTo(x1, y1, x2, y2, x3, y3)
	x1, y1 = pt(1, 0.36)
	x2, y2 = pt(0.9, 0.62)
	x3, y3 = pt(0.5, 0.92)
	p.CubicTo(x1, y1, x2, y2, x3, y3)
	p.Close()
	return &p
}

// fillDiagonalGradient paints dst from top-left (from) to bottom-right (to)
// passing through via at the other two corners.
func fillDiagonalGradient(dst *ebiten.Image, from, via, to color.Color) {
	b := dst.Bounds()
	x0, y0 := float32(b.Min.X), float32(b.Min.Y)
	x1, y1 := float32(b.Max.X), float32(b.Max.Y)
	vertex := func(x, y float32, c color.Color) ebiten.Vertex {
		r, g, bl, a := premultiplied(c, 1)
		return ebiten.Vertex{DstX: x, DstY: y, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: bl, ColorA: a}
	}
	vs := []ebiten.Vertex{
		vertex(x0, y0, from),
		vertex(x1, y0, via),
		vertex(x1, y1, to),
		vertex(x0, y1, via),
	}
	is := []uint16{0, 1, 2, 0, 2, 3}
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	dst.DrawTriangles(vs, is, whiteSubImage(), op)
}
