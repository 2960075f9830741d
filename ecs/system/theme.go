package system

import (
	"image/color"

	"github.com/emilyahsu/dad-birthday-card/prefabs"
)

// Theme is the resolved palette the render systems draw with.
type Theme struct {
	BgFrom, BgVia, BgTo color.Color
	Card, CardBorder    color.Color
	Title, Text, Muted  color.Color
	Accent, Heart       color.Color
	Tile                color.Color
	PhotoFrom, PhotoTo  color.Color
	PhotoText, Banner   color.Color
}

func hex(r, g, b uint8) color.Color {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// NewTheme fills missing prefab colors with the card's warm defaults.
func NewTheme(spec prefabs.ThemeSpec) Theme {
	bg := [3]color.Color{hex(0xff, 0xfb, 0xeb), hex(0xff, 0xf7, 0xed), hex(0xff, 0xf1, 0xf2)}
	for i := 0; i < len(spec.Background) && i < len(bg); i++ {
		bg[i] = spec.Background[i].Or(bg[i])
	}
	photo := [2]color.Color{hex(0xe5, 0xe7, 0xeb), hex(0xd1, 0xd5, 0xdb)}
	for i := 0; i < len(spec.Photo) && i < len(photo); i++ {
		photo[i] = spec.Photo[i].Or(photo[i])
	}

	return Theme{
		BgFrom:     bg[0],
		BgVia:      bg[1],
		BgTo:       bg[2],
		Card:       spec.Card.Or(color.White),
		CardBorder: spec.CardBorder.Or(hex(0xfd, 0xe6, 0x8a)),
		Title:      spec.Title.Or(hex(0x1f, 0x29, 0x37)),
		Text:       spec.Text.Or(hex(0x37, 0x41, 0x51)),
		Muted:      spec.Muted.Or(hex(0x4b, 0x55, 0x63)),
		Accent:     spec.Accent.Or(hex(0xd9, 0x77, 0x06)),
		Heart:      spec.Heart.Or(hex(0xef, 0x44, 0x44)),
		Tile:       spec.Tile.Or(color.White),
		PhotoFrom:  photo[0],
		PhotoTo:    photo[1],
		PhotoText:  spec.PhotoText.Or(hex(0x6b, 0x72, 0x80)),
		Banner:     spec.Banner.Or(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6}),
	}
}
