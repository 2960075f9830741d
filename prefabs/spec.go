package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/emilyahsu/dad-birthday-card/common"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCardName          = "card.yaml"
	DefaultClampMax          = 85.0
	DefaultTransitionSeconds = 0.2
	DefaultDragScale         = 1.05
	DefaultPulseSeconds      = 2.0
	DefaultCaption           = "(Replace with your actual photos)"
)

var (
	ErrNoTiles        = errors.New("prefabs: card has no tiles")
	ErrDuplicateTile  = errors.New("prefabs: duplicate tile id")
	ErrInvalidTileID  = errors.New("prefabs: tile id must be positive")
	ErrInvalidClamp   = errors.New("prefabs: clamp_min must be below clamp_max")
	ErrInvalidTileDim = errors.New("prefabs: tile sizes must be positive")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CardSpec describes the whole scene: text, tiles, drag rules and colors.
type CardSpec struct {
	Name      string      `yaml:"name"`
	Recipient string      `yaml:"recipient"`
	Sender    string      `yaml:"sender"`
	Age       int         `yaml:"age"`
	Script    string      `yaml:"script"`
	Message   MessageSpec `yaml:"message"`
	Drag      DragSpec    `yaml:"drag"`
	TileSize  TileSizes   `yaml:"tile_size"`
	Theme     ThemeSpec   `yaml:"theme"`
	Tiles     []TileSpec  `yaml:"tiles"`

	TransitionSeconds float64 `yaml:"transition_seconds"`
	PulseSeconds      float64 `yaml:"pulse_seconds"`
}

type MessageSpec struct {
	Title       string `yaml:"title"`
	Instruction string `yaml:"instruction"`
	Body        string `yaml:"body"`
	Closing     string `yaml:"closing"`
	Footer      string `yaml:"footer"`
}

type DragSpec struct {
	ClampMin    float64 `yaml:"clamp_min"`
	ClampMax    float64 `yaml:"clamp_max"`
	RaiseOnGrab *bool   `yaml:"raise_on_grab"`
	Scale       float64 `yaml:"scale"`
}

// TileSizes are tile edge lengths below the sm breakpoint, from sm, and from
// md upward.
type TileSizes struct {
	Base float64 `yaml:"base"`
	SM   float64 `yaml:"sm"`
	MD   float64 `yaml:"md"`
}

type TileSpec struct {
	ID       int     `yaml:"id"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
	Label    string  `yaml:"label"`
	Caption  string  `yaml:"caption"`
}

type ThemeSpec struct {
	Background []*YAMLColor `yaml:"background"`
	Card       *YAMLColor   `yaml:"card"`
	CardBorder *YAMLColor   `yaml:"card_border"`
	Title      *YAMLColor   `yaml:"title"`
	Text       *YAMLColor   `yaml:"text"`
	Muted      *YAMLColor   `yaml:"muted"`
	Accent     *YAMLColor   `yaml:"accent"`
	Heart      *YAMLColor   `yaml:"heart"`
	Tile       *YAMLColor   `yaml:"tile"`
	Photo      []*YAMLColor `yaml:"photo"`
	PhotoText  *YAMLColor   `yaml:"photo_text"`
	Banner     *YAMLColor   `yaml:"banner"`
}

// LoadCardSpec loads, defaults and validates a card prefab.
func LoadCardSpec(name string) (*CardSpec, error) {
	if name == "" {
		name = DefaultCardName
	}
	spec, err := LoadSpec[CardSpec](name)
	if err != nil {
		return nil, err
	}
	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// ParseCardSpec is LoadCardSpec for in-memory YAML.
func ParseCardSpec(data []byte) (*CardSpec, error) {
	var spec CardSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal card: %w", err)
	}
	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *CardSpec) ApplyDefaults() {
	if s.Drag.ClampMax == 0 && s.Drag.ClampMin == 0 {
		s.Drag.ClampMax = DefaultClampMax
	}
	if s.Drag.RaiseOnGrab == nil {
		raise := true
		s.Drag.RaiseOnGrab = &raise
	}
	if s.Drag.Scale <= 0 {
		s.Drag.Scale = DefaultDragScale
	}
	if s.TransitionSeconds <= 0 {
		s.TransitionSeconds = DefaultTransitionSeconds
	}
	if s.PulseSeconds <= 0 {
		s.PulseSeconds = DefaultPulseSeconds
	}
	if s.TileSize.Base == 0 {
		s.TileSize.Base = 96
	}
	if s.TileSize.SM == 0 {
		s.TileSize.SM = s.TileSize.Base
	}
	if s.TileSize.MD == 0 {
		s.TileSize.MD = s.TileSize.SM
	}
	for i := range s.Tiles {
		t := &s.Tiles[i]
		if t.Label == "" {
			t.Label = "Photo " + strconv.Itoa(t.ID)
		}
		if t.Caption == "" {
			t.Caption = DefaultCaption
		}
	}
}

func (s *CardSpec) Validate() error {
	if len(s.Tiles) == 0 {
		return ErrNoTiles
	}
	if s.Drag.ClampMin >= s.Drag.ClampMax {
		return ErrInvalidClamp
	}
	if s.TileSize.Base <= 0 || s.TileSize.SM <= 0 || s.TileSize.MD <= 0 {
		return ErrInvalidTileDim
	}
	seen := make(map[int]struct{}, len(s.Tiles))
	for _, t := range s.Tiles {
		if t.ID <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidTileID, t.ID)
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateTile, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// RaiseOnGrab reports whether grabbing a tile moves it to the top.
func (s *CardSpec) RaiseOnGrab() bool {
	return s.Drag.RaiseOnGrab == nil || *s.Drag.RaiseOnGrab
}

// TileSizeFor picks the tile edge for a container width.
func (s *CardSpec) TileSizeFor(width float64) float64 {
	switch {
	case width >= common.BreakpointMD:
		return s.TileSize.MD
	case width >= common.BreakpointSM:
		return s.TileSize.SM
	default:
		return s.TileSize.Base
	}
}

type YAMLColor struct {
	color.Color
}

// Or returns the parsed color, or fallback when the field was omitted.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
