package component

import "github.com/emilyahsu/dad-birthday-card/common"

// PointerSource tells which device produced the current pointer sample.
type PointerSource int

const (
	PointerNone PointerSource = iota
	PointerMouse
	PointerTouch
)

// Pointer stores the per-tick pointer state, normalized across mouse and
// single-touch input.
type Pointer struct {
	Pos    common.Point
	Source PointerSource

	// Pressed and Released are edges for this tick; Down is the held state.
	Pressed  bool
	Down     bool
	Released bool
	// Left is set when the pointer is outside the container or the window
	// lost focus.
	Left bool
}

var PointerComponent = NewComponent[Pointer]()
