package entity

import (
	"fmt"

	"github.com/emilyahsu/dad-birthday-card/ecs"
	"github.com/emilyahsu/dad-birthday-card/ecs/component"
	"github.com/emilyahsu/dad-birthday-card/prefabs"
)

// BuildCard populates an empty world with the board, the message card and one
// entity per tile, and attaches a hit-test space. It returns the board.
func BuildCard(w *ecs.World, spec *prefabs.CardSpec, msg component.Message) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("card: nil world or spec")
	}
	if w.HitWorld() == nil {
		w.SetHitWorld(ecs.NewHitWorld())
	}

	board := ecs.CreateEntity(w)
	if err := addBoard(w, board, spec); err != nil {
		return 0, fmt.Errorf("card: board: %w", err)
	}

	card := ecs.CreateEntity(w)
	if err := ecs.Add(w, card, component.CardTagComponent.Kind(), &component.CardTag{}); err != nil {
		return 0, fmt.Errorf("card: message: %w", err)
	}
	if err := ecs.Add(w, card, component.MessageComponent.Kind(), &msg); err != nil {
		return 0, fmt.Errorf("card: message: %w", err)
	}
	if err := ecs.Add(w, card, component.PulseComponent.Kind(), &component.Pulse{Period: spec.PulseSeconds}); err != nil {
		return 0, fmt.Errorf("card: message: %w", err)
	}

	for i, ts := range spec.Tiles {
		if _, err := BuildTile(w, ts, i, spec.TransitionSeconds); err != nil {
			return 0, fmt.Errorf("card: tile %d: %w", ts.ID, err)
		}
	}

	return board, nil
}

func addBoard(w *ecs.World, e ecs.Entity, spec *prefabs.CardSpec) error {
	if err := ecs.Add(w, e, component.BoardTagComponent.Kind(), &component.BoardTag{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ContainerComponent.Kind(), &component.Container{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PointerComponent.Kind(), &component.Pointer{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.DragSessionComponent.Kind(), &component.DragSession{}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.DragRulesComponent.Kind(), &component.DragRules{
		ClampMin:    spec.Drag.ClampMin,
		ClampMax:    spec.Drag.ClampMax,
		RaiseOnGrab: spec.RaiseOnGrab(),
		Scale:       spec.Drag.Scale,
	})
}

// BuildTile creates one tile entity. layer is its initial stacking index.
func BuildTile(w *ecs.World, ts prefabs.TileSpec, layer int, transition float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TileComponent.Kind(), &component.Tile{
		ID:       ts.ID,
		X:        ts.X,
		Y:        ts.Y,
		Rotation: ts.Rotation,
		Label:    ts.Label,
		Caption:  ts.Caption,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.HomeComponent.Kind(), &component.Home{X: ts.X, Y: ts.Y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TileVisualComponent.Kind(), &component.TileVisual{Duration: transition}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}); err != nil {
		return 0, err
	}
	return e, nil
}
