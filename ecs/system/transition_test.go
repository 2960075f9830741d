package system

import (
	"math"
	"testing"

	"github.com/emilyahsu/dad-birthday-card/common"
	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
)

func transformOf(t *testing.T, w *ecs.World, id int) *component.Transform {
	t.Helper()
	e, _, ok := findTile(w, id)
	if !ok {
		t.Fatalf("tile %d not found", id)
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("tile %d has no transform", id)
	}
	return tr
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestTransitionSnapsOnFirstLayout(t *testing.T) {
	w, _ := newTestCard(t, 1000, 1000)
	NewTransitionSystem().Update(w)

	tr := transformOf(t, w, 4)
	if !near(tr.X, 700) || !near(tr.Y, 650) || tr.ScaleX != 1 {
		t.Fatalf("expected tile 4 placed at (700, 650), got %+v", *tr)
	}
	if !near(tr.Rotation, common.DegToRad(6)) {
		t.Fatalf("expected 6 degree rotation, got %v", tr.Rotation)
	}
}

func TestTransitionDraggedTileSnapsAndScales(t *testing.T) {
	w, _ := newTestCard(t, 1000, 1000)
	ts := NewTransitionSystem()
	ts.Update(w)

	BeginDrag(w, 1, common.Point{X: 110, Y: 160}, common.Rect{X: 100, Y: 150, Width: 192, Height: 192})
	UpdateDrag(w, common.Point{X: 510, Y: 560})
	ts.Update(w)

	tr := transformOf(t, w, 1)
	if !near(tr.X, 500) || !near(tr.Y, 550) {
		t.Fatalf("dragged tile should follow without easing, got (%v, %v)", tr.X, tr.Y)
	}
	if !near(tr.ScaleX, 1.05) {
		t.Fatalf("expected drag scale 1.05, got %v", tr.ScaleX)
	}
}

func TestTransitionEasesAfterRelease(t *testing.T) {
	w, _ := newTestCard(t, 1000, 1000)
	ts := NewTransitionSystem()
	ts.Update(w)

	BeginDrag(w, 1, common.Point{X: 110, Y: 160}, common.Rect{X: 100, Y: 150, Width: 192, Height: 192})
	ts.Update(w)
	EndDrag(w)

	ts.Update(w)
	tr := transformOf(t, w, 1)
	if tr.ScaleX <= 1 || tr.ScaleX >= 1.05 {
		t.Fatalf("expected scale between 1 and 1.05 right after release, got %v", tr.ScaleX)
	}

	for i := 0; i < common.TPS; i++ {
		ts.Update(w)
	}
	if !near(tr.ScaleX, 1) {
		t.Fatalf("expected scale to settle at 1, got %v", tr.ScaleX)
	}
}

func TestTransitionShadowFollowsLift(t *testing.T) {
	w, b := newTestCard(t, 1000, 1000)
	ts := NewTransitionSystem()
	e, _, _ := findTile(w, 3)
	vis, _ := ecs.Get(w, e, component.TileVisualComponent.Kind())

	b.session.HoverTileID = 3
	for i := 0; i < common.TPS; i++ {
		ts.Update(w)
	}
	if vis.Shadow != 1 {
		t.Fatalf("expected full shadow while hovered, got %v", vis.Shadow)
	}

	b.session.HoverTileID = 0
	ts.Update(w)
	if vis.Shadow <= 0 || vis.Shadow >= 1 {
		t.Fatalf("expected shadow to ease down, got %v", vis.Shadow)
	}
	for i := 0; i < common.TPS; i++ {
		ts.Update(w)
	}
	if vis.Shadow != 0 {
		t.Fatalf("expected shadow to settle at 0, got %v", vis.Shadow)
	}
}

func TestResetReturnsTilesHome(t *testing.T) {
	w, b := newTestCard(t, 1000, 1000)
	ts := NewTransitionSystem()
	ts.Update(w)
	home := tilePositions(w)

	BeginDrag(w, 6, common.Point{X: 760, Y: 410}, common.Rect{X: 750, Y: 400, Width: 192, Height: 192})
	UpdateDrag(w, common.Point{X: 110, Y: 110})

	RequestReset(w)
	ts.Update(w)

	if b.session.Active {
		t.Fatalf("expected reset to end the drag")
	}
	if ecs.Has(w, b.entity, component.ResetRequestComponent.Kind()) {
		t.Fatalf("expected reset request to be consumed")
	}
	for id, p := range tilePositions(w) {
		if p != home[id] {
			t.Fatalf("tile %d at %v, want home %v", id, p, home[id])
		}
	}

	for i := 0; i < common.TPS; i++ {
		ts.Update(w)
	}
	tr := transformOf(t, w, 6)
	if !near(tr.X, 750) || !near(tr.Y, 400) {
		t.Fatalf("expected tile 6 to ease home, got (%v, %v)", tr.X, tr.Y)
	}
}

func TestTransitionSnapsOnResize(t *testing.T) {
	w, b := newTestCard(t, 1000, 1000)
	ts := NewTransitionSystem()
	ts.Update(w)

	b.container.Rect = common.Rect{Width: 500, Height: 800}
	b.container.TileSize = 96
	ts.Update(w)

	tr := transformOf(t, w, 2)
	if !near(tr.X, 300) || !near(tr.Y, 80) {
		t.Fatalf("expected tile 2 at (300, 80) after resize, got (%v, %v)", tr.X, tr.Y)
	}
}
