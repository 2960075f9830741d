package ecs

import (
	"math"

	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/jakecoffman/cp"
)

// HitWorld owns the Chipmunk space used to hit-test rotated tiles. Bodies are
// kinematic sensors; nothing is simulated, the space only keeps the shapes
// indexed for point queries.
type HitWorld struct {
	space  *cp.Space
	bodies map[Entity]*hitBody
}

type hitBody struct {
	body   *cp.Body
	shape  *cp.Shape
	size   float64
	center common.Point
	angle  float64
}

// NewHitWorld creates an empty hit-test space.
func NewHitWorld() *HitWorld {
	return &HitWorld{
		space:  cp.NewSpace(),
		bodies: make(map[Entity]*hitBody),
	}
}

// Space returns the underlying Chipmunk space.
func (hw *HitWorld) Space() *cp.Space {
	if hw == nil {
		return nil
	}
	return hw.space
}

// Sync places a square of the given size centered at center and rotated by
// angle radians, creating the body on first use.
func (hw *HitWorld) Sync(e Entity, center common.Point, size, angle float64) {
	if hw == nil || hw.space == nil || size <= 0 {
		return
	}
	hb, ok := hw.bodies[e]
	if !ok {
		body := cp.NewKinematicBody()
		hw.space.AddBody(body)
		hb = &hitBody{body: body}
		hw.bodies[e] = hb
	}
	if hb.shape == nil || hb.size != size {
		if hb.shape != nil {
			hw.space.RemoveShape(hb.shape)
		}
		shape := cp.NewBox(hb.body, size, size, 0)
		shape.SetSensor(true)
		shape.UserData = e
		hw.space.AddShape(shape)
		hb.shape = shape
		hb.size = size
	}
	hb.center = center
	hb.angle = angle
	hb.body.SetPosition(cp.Vector{X: center.X, Y: center.Y})
	hb.body.SetAngle(angle)
}

// Remove drops the body for an entity.
func (hw *HitWorld) Remove(e Entity) {
	if hw == nil {
		return
	}
	hb, ok := hw.bodies[e]
	if !ok {
		return
	}
	if hb.shape != nil {
		hw.space.RemoveShape(hb.shape)
	}
	hw.space.RemoveBody(hb.body)
	delete(hw.bodies, e)
}

// Step refreshes the spatial index after bodies moved.
func (hw *HitWorld) Step() {
	if hw == nil || hw.space == nil {
		return
	}
	hw.space.Step(1.0 / common.TPS)
}

// HitsAt returns every entity whose shape contains p, in no particular order.
func (hw *HitWorld) HitsAt(p common.Point) []Entity {
	if hw == nil || hw.space == nil {
		return nil
	}
	v := cp.Vector{X: p.X, Y: p.Y}
	bb := cp.BB{L: p.X - 0.5, B: p.Y - 0.5, R: p.X + 0.5, T: p.Y + 0.5}

	var hits []Entity
	hw.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		e, ok := shape.UserData.(Entity)
		if !ok {
			return
		}
		if info := shape.PointQuery(v); info.Distance <= 0 {
			hits = append(hits, e)
		}
	}, nil)
	return hits
}

// Corners returns the four world-space corners of an entity's shape, used by
// the debug overlay.
func (hw *HitWorld) Corners(e Entity) ([4]common.Point, bool) {
	var out [4]common.Point
	if hw == nil {
		return out, false
	}
	hb, ok := hw.bodies[e]
	if !ok {
		return out, false
	}
	half := hb.size / 2
	sin, cos := math.Sincos(hb.angle)
	local := [4][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}}
	for i, l := range local {
		out[i] = common.Point{
			X: hb.center.X + l[0]*cos - l[1]*sin,
			Y: hb.center.Y + l[0]*sin + l[1]*cos,
		}
	}
	return out, true
}

// Len reports how many bodies are registered.
func (hw *HitWorld) Len() int {
	if hw == nil {
		return 0
	}
	return len(hw.bodies)
}
