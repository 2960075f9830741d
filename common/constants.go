package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed update rate; systems advance timers by 1/TPS per tick.
	TPS = 60
)

// Breakpoints for the responsive layout, in logical pixels.
const (
	BreakpointSM = 640
	BreakpointMD = 768
)
