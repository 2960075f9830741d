package prefabs

import (
	"errors"
	"image/color"
	"testing"
)

func TestLoadDefaultCard(t *testing.T) {
	spec, err := LoadCardSpec("")
	if err != nil {
		t.Fatalf("load default card: %v", err)
	}

	want := []TileSpec{
		{ID: 1, X: 10, Y: 15, Rotation: -5},
		{ID: 2, X: 60, Y: 10, Rotation: 8},
		{ID: 3, X: 15, Y: 60, Rotation: -3},
		{ID: 4, X: 70, Y: 65, Rotation: 6},
		{ID: 5, X: 5, Y: 35, Rotation: 4},
		{ID: 6, X: 75, Y: 40, Rotation: -7},
	}
	if len(spec.Tiles) != len(want) {
		t.Fatalf("expected %d tiles, got %d", len(want), len(spec.Tiles))
	}
	for i, w := range want {
		got := spec.Tiles[i]
		if got.ID != w.ID || got.X != w.X || got.Y != w.Y || got.Rotation != w.Rotation {
			t.Fatalf("tile %d: got %+v want %+v", i, got, w)
		}
		if got.Label == "" || got.Caption != DefaultCaption {
			t.Fatalf("tile %d: expected default label and caption, got %q %q", i, got.Label, got.Caption)
		}
	}
	if spec.Drag.ClampMin != 0 || spec.Drag.ClampMax != 85 {
		t.Fatalf("expected clamp [0, 85], got [%v, %v]", spec.Drag.ClampMin, spec.Drag.ClampMax)
	}
	if spec.Script != "greeting.tengo" {
		t.Fatalf("expected greeting script, got %q", spec.Script)
	}
}

func TestParseCardSpecDefaults(t *testing.T) {
	spec, err := ParseCardSpec([]byte("tiles:\n  - {id: 3, x: 1, y: 2}\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if spec.Drag.ClampMax != DefaultClampMax {
		t.Fatalf("expected default clamp max, got %v", spec.Drag.ClampMax)
	}
	if !spec.RaiseOnGrab() {
		t.Fatalf("expected raise_on_grab to default to true")
	}
	if spec.TransitionSeconds != DefaultTransitionSeconds || spec.Drag.Scale != DefaultDragScale {
		t.Fatalf("unexpected defaults: transition=%v scale=%v", spec.TransitionSeconds, spec.Drag.Scale)
	}
	if spec.Tiles[0].Label != "Photo 3" {
		t.Fatalf("expected label %q, got %q", "Photo 3", spec.Tiles[0].Label)
	}
	if got := spec.TileSizeFor(1000); got != 96 {
		t.Fatalf("expected base size to cascade to md, got %v", got)
	}
}

func TestParseCardSpecErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"no_tiles", "name: empty\n", ErrNoTiles},
		{"duplicate", "tiles:\n  - {id: 1}\n  - {id: 1}\n", ErrDuplicateTile},
		{"zero_id", "tiles:\n  - {id: 0}\n", ErrInvalidTileID},
		{"clamp", "drag: {clamp_min: 50, clamp_max: 10}\ntiles:\n  - {id: 1}\n", ErrInvalidClamp},
		{"tile_size", "tile_size: {base: -1}\ntiles:\n  - {id: 1}\n", ErrInvalidTileDim},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseCardSpec([]byte(c.yaml))
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestTileSizeFor(t *testing.T) {
	spec := &CardSpec{TileSize: TileSizes{Base: 96, SM: 128, MD: 192}}
	cases := []struct {
		width float64
		want  float64
	}{
		{320, 96},
		{639, 96},
		{640, 128},
		{767, 128},
		{768, 192},
		{1920, 192},
	}
	for _, c := range cases {
		if got := spec.TileSizeFor(c.width); got != c.want {
			t.Fatalf("TileSizeFor(%v) = %v, want %v", c.width, got, c.want)
		}
	}
}

func TestYAMLColor(t *testing.T) {
	spec, err := ParseCardSpec([]byte("theme: {heart: \"#ef4444\", banner: \"ffffffe6\"}\ntiles:\n  - {id: 1}\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := spec.Theme.Heart.Or(nil); got != (color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}) {
		t.Fatalf("unexpected heart color %v", got)
	}
	if got := spec.Theme.Banner.Or(nil); got != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6}) {
		t.Fatalf("unexpected banner color %v", got)
	}
	fallback := color.NRGBA{A: 1}
	if got := spec.Theme.Card.Or(fallback); got != fallback {
		t.Fatalf("expected fallback for missing color, got %v", got)
	}

	if _, err := ParseCardSpec([]byte("theme: {heart: \"#zz\"}\ntiles:\n  - {id: 1}\n")); err == nil {
		t.Fatalf("expected error for malformed color")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"greeting.tengo", "scripts/greeting.tengo", "prefabs/scripts/greeting.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("LoadScript(%q) returned empty script", name)
		}
	}
}
