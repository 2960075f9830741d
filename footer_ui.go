package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/emilyahsu/dad-birthday-card/assets"
	"github.com/emilyahsu/dad-birthday-card/ecs/system"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewFooterUI builds the banner pinned to the bottom of the window: the
// drag hint and a Reset button that sends the photos back.
func NewFooterUI(hint string, theme system.Theme, onReset func()) *ebitenui.UI {
	bannerImg := imageui.NewNineSliceColor(theme.Banner)
	btnIdle := imageui.NewNineSliceColor(theme.Accent)
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0xb4, G: 0x53, B: 0x09, A: 0xff})

	var face ebtext.Face = assets.Face(assets.Medium, 14)
	btnTextColor := &widget.ButtonTextColor{Idle: color.White}

	banner := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(bannerImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 24, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	if hint != "" {
		banner.AddChild(widget.NewText(
			widget.TextOpts.Text(hint, &face, theme.Text),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		))
	}

	banner.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Pressed: btnPressed}),
		widget.ButtonOpts.Text("Reset", &face, btnTextColor),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 14, Right: 14}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onReset != nil {
				onReset()
			}
		}),
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Bottom: 16}),
		)),
	)
	root.AddChild(banner)

	return &ebitenui.UI{Container: root}
}
