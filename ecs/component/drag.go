package component

// DragSession is Idle when Active is false, otherwise Dragging(TileID) with
// the pointer-to-tile offset captured at grab time.
type DragSession struct {
	Active  bool
	TileID  int
	OffsetX float64
	OffsetY float64

	// HoverTileID is the tile under an idle pointer, 0 when none.
	HoverTileID int
}

var DragSessionComponent = NewComponent[DragSession]()

// DragRules holds the per-card drag constraints.
type DragRules struct {
	ClampMin    float64
	ClampMax    float64
	RaiseOnGrab bool
	// Scale is applied to the dragged tile.
	Scale float64
}

var DragRulesComponent = NewComponent[DragRules]()
