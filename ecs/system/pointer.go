package system

import (
	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
	"github.com/hajimehoshi/ebiten/v2"
)

// touchPoint is one active touch in screen pixels.
type touchPoint struct {
	id  ebiten.TouchID
	pos common.Point
}

// pointerSample is the raw device state read once per tick.
type pointerSample struct {
	mouse     common.Point
	mouseDown bool
	touches   []touchPoint
	focused   bool
}

// PointerSystem normalizes the left mouse button and the first touch into
// the board's Pointer component. Only one touch is followed; others are
// ignored until it lifts.
type PointerSystem struct {
	activeTouch ebiten.TouchID
	tracking    bool

	touchIDs []ebiten.TouchID
}

func NewPointerSystem() *PointerSystem {
	return &PointerSystem{}
}

func (s *PointerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	b, ok := lookupBoard(w)
	if !ok || b.pointer == nil {
		return
	}

	mx, my := ebiten.CursorPosition()
	sample := pointerSample{
		mouse:     common.Point{X: float64(mx), Y: float64(my)},
		mouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		focused:   ebiten.IsFocused(),
	}
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		sample.touches = append(sample.touches, touchPoint{id: id, pos: common.Point{X: float64(tx), Y: float64(ty)}})
	}

	var bounds common.Rect
	if b.container != nil {
		bounds = b.container.Rect
	}
	s.apply(b.pointer, sample, bounds)
}

func (s *PointerSystem) apply(p *component.Pointer, sample pointerSample, bounds common.Rect) {
	wasDown := p.Down

	touchDown := false
	if s.tracking {
		s.tracking = false
		for _, t := range sample.touches {
			if t.id == s.activeTouch {
				s.tracking = true
				p.Pos = t.pos
				touchDown = true
				break
			}
		}
	} else if len(sample.touches) > 0 && !(wasDown && p.Source == component.PointerMouse) {
		s.activeTouch = sample.touches[0].id
		s.tracking = true
		p.Pos = sample.touches[0].pos
		touchDown = true
	}

	switch {
	case touchDown:
		p.Source = component.PointerTouch
		p.Down = true
	case wasDown && p.Source == component.PointerTouch:
		// the tracked touch lifted; keep its last position
		p.Down = false
	default:
		p.Source = component.PointerMouse
		p.Pos = sample.mouse
		p.Down = sample.mouseDown
	}

	p.Pressed = p.Down && !wasDown
	p.Released = !p.Down && wasDown
	p.Left = !sample.focused
	if p.Source == component.PointerMouse && !bounds.Empty() && !bounds.Contains(p.Pos) {
		p.Left = true
	}
}
