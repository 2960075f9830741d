package system

import (
	"image/color"
	"math"

	"github.com/emilyahsu/dad-birthday-card/assets"
	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
	"github.com/hajimehoshi/ebiten/v2"
)

var shadowColor color.Color = color.Black

// cardMetrics are the responsive sizes of the message card.
type cardMetrics struct {
	maxWidth, margin, padding, border, radius float64
	gap, heart, heartGap                      float64
	title, instruction, body, closing         float64
	bodyMaxWidth                              float64
}

func cardMetricsFor(width float64) cardMetrics {
	switch {
	case width >= common.BreakpointMD:
		return cardMetrics{maxWidth: 672, margin: 16, padding: 48, border: 4, radius: 16, gap: 24, heart: 32, heartGap: 8, title: 48, instruction: 20, body: 18, closing: 24, bodyMaxWidth: 576}
	case width >= common.BreakpointSM:
		return cardMetrics{maxWidth: 448, margin: 16, padding: 24, border: 2, radius: 12, gap: 16, heart: 24, heartGap: 4, title: 30, instruction: 18, body: 16, closing: 20, bodyMaxWidth: 576}
	default:
		return cardMetrics{maxWidth: 320, margin: 8, padding: 16, border: 2, radius: 12, gap: 12, heart: 20, heartGap: 4, title: 24, instruction: 14, body: 12, closing: 18, bodyMaxWidth: 576}
	}
}

// cardLayout is the measured card for one container size and message.
type cardLayout struct {
	rect                              common.Rect
	metrics                           cardMetrics
	title, instruction, body, closing textBlock
}

type cardLayoutKey struct {
	width, height float64
	msg           component.Message
}

func layoutCard(width, height float64, msg component.Message) cardLayout {
	m := cardMetricsFor(width)
	cardW := math.Min(m.maxWidth, width-2*m.margin)
	inner := cardW - 2*(m.padding+m.border)

	l := cardLayout{metrics: m}
	l.title = newTextBlock(msg.Title, assets.Face(assets.Bold, m.title), inner)
	l.instruction = newTextBlock(msg.Instruction, assets.Face(assets.Medium, m.instruction), inner)
	l.body = newTextBlock(msg.Body, assets.Face(assets.Regular, m.body), math.Min(inner, m.bodyMaxWidth))
	l.closing = newTextBlock(msg.Closing, assets.Face(assets.Bold, m.closing), inner)

	cardH := 2*(m.padding+m.border) + m.heart + m.gap +
		l.title.height() + m.gap +
		l.instruction.height() + m.gap +
		l.body.height() + m.gap*1.5 +
		l.closing.height()
	l.rect = common.Rect{
		X:      (width - cardW) / 2,
		Y:      math.Max(m.margin, (height-cardH)/2),
		Width:  cardW,
		Height: cardH,
	}
	return l
}

// cardInk is the text color of each card line.
type cardInk struct {
	title, instruction, body, closing color.Color
}

func cardInkFor(t Theme) cardInk {
	return cardInk{title: t.Title, instruction: t.Text, body: t.Muted, closing: t.Accent}
}

// CardRenderSystem draws the background and the greeting card. Tiles are
// drawn separately so UI can sit between the two layers.
type CardRenderSystem struct {
	theme Theme

	background *ebiten.Image
	layout     cardLayout
	layoutKey  cardLayoutKey
}

func NewCardRenderSystem(theme Theme) *CardRenderSystem {
	return &CardRenderSystem{theme: theme}
}

func (r *CardRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	r.drawBackground(screen)

	card, ok := ecs.First(w, component.CardTagComponent.Kind())
	if !ok {
		return
	}
	msg, ok := ecs.Get(w, card, component.MessageComponent.Kind())
	if !ok {
		return
	}
	var pulse component.Pulse
	if p, ok := ecs.Get(w, card, component.PulseComponent.Kind()); ok {
		pulse = *p
	}

	b := screen.Bounds()
	key := cardLayoutKey{width: float64(b.Dx()), height: float64(b.Dy()), msg: *msg}
	if key != r.layoutKey {
		r.layout = layoutCard(key.width, key.height, *msg)
		r.layoutKey = key
	}
	r.drawCard(screen, r.layout, pulse)
}

func (r *CardRenderSystem) drawBackground(screen *ebiten.Image) {
	b := screen.Bounds()
	if r.background == nil || r.background.Bounds().Size() != b.Size() {
		if r.background != nil {
			r.background.Deallocate()
		}
		r.background = ebiten.NewImage(b.Dx(), b.Dy())
		fillDiagonalGradient(r.background, r.theme.BgFrom, r.theme.BgVia, r.theme.BgTo)
	}
	screen.DrawImage(r.background, nil)
}

func (r *CardRenderSystem) drawCard(screen *ebiten.Image, l cardLayout, pulse component.Pulse) {
	m := l.metrics
	rc := l.rect

	// soft shadow
	for i := 3; i >= 1; i-- {
		spread := float64(i) * 6
		fillRoundedRect(screen, rc.X-spread/2, rc.Y+spread, rc.Width+spread, rc.Height+spread/2, m.radius+spread, shadowColor, 0.05)
	}
	fillRoundedRect(screen, rc.X, rc.Y, rc.Width, rc.Height, m.radius, r.theme.CardBorder, 1)
	fillRoundedRect(screen, rc.X+m.border, rc.Y+m.border, rc.Width-2*m.border, rc.Height-2*m.border, m.radius-m.border, r.theme.Card, 1)

	cx := rc.X + rc.Width/2
	y := rc.Y + m.border + m.padding

	rowW := 3*m.heart + 2*m.heartGap
	for i := 0; i < 3; i++ {
		hx := cx - rowW/2 + float64(i)*(m.heart+m.heartGap)
		alpha := PulseAlpha(pulse, float64(i)*0.1)
		fillPath(screen, heartPath(float32(hx), float32(y), float32(m.heart)), r.theme.Heart, alpha)
	}
	y += m.heart + m.gap

	ink := cardInkFor(r.theme)
	l.title.draw(screen, cx, y, ink.title)
	y += l.title.height() + m.gap
	l.instruction.draw(screen, cx, y, ink.instruction)
	y += l.instruction.height() + m.gap
	l.body.draw(screen, cx, y, ink.body)
	y += l.body.height() + m.gap*1.5
	l.closing.draw(screen, cx, y, ink.closing)
}
