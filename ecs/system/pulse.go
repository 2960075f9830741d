package system

import (
	"math"

	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
)

// PulseSystem advances the heart animation clock, wrapping at its period.
type PulseSystem struct{}

func NewPulseSystem() *PulseSystem {
	return &PulseSystem{}
}

func (s *PulseSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.PulseComponent.Kind(), func(_ ecs.Entity, p *component.Pulse) {
		if p.Period <= 0 {
			return
		}
		p.Elapsed = math.Mod(p.Elapsed+1.0/common.TPS, p.Period)
	})
}

// PulseAlpha is the opacity of a heart delay seconds behind the clock. It
// dips to 0.5 halfway through each period, like a CSS pulse.
func PulseAlpha(p component.Pulse, delay float64) float64 {
	if p.Period <= 0 {
		return 1
	}
	phase := math.Mod(p.Elapsed-delay, p.Period)
	if phase < 0 {
		phase += p.Period
	}
	return 0.75 + 0.25*math.Cos(2*math.Pi*phase/p.Period)
}
