package system

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const lineHeight = 1.4

// wrapText breaks s into lines no wider than maxWidth. Explicit newlines are
// kept; a single word wider than maxWidth gets a line of its own.
func wrapText(s string, face text.Face, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if w, _ := text.Measure(candidate, face, 0); w > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// textBlock is wrapped text ready to draw centered on a column.
type textBlock struct {
	lines   []string
	face    *text.GoTextFace
	spacing float64
}

func newTextBlock(s string, face *text.GoTextFace, maxWidth float64) textBlock {
	return textBlock{
		lines:   wrapText(s, face, maxWidth),
		face:    face,
		spacing: face.Size * lineHeight,
	}
}

func (b textBlock) height() float64 {
	if b.face == nil || len(b.lines) == 0 {
		return 0
	}
	return float64(len(b.lines)) * b.spacing
}

// draw renders the block centered on centerX with its top at y.
func (b textBlock) draw(dst *ebiten.Image, centerX, y float64, clr color.Color) {
	if b.face == nil || len(b.lines) == 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, y+(b.spacing-b.face.Size)/2)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = b.spacing
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, strings.Join(b.lines, "\n"), b.face, op)
}
