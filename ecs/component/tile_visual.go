package component

// TileVisual is the tween state between a tile's stored position and what is
// on screen.
type TileVisual struct {
	FromX, FromY, FromScale float64
	ToX, ToY, ToScale       float64
	Elapsed                 float64
	Duration                float64

	// Shadow eases between 0 (resting) and 1 (lifted).
	Shadow float64

	ContainerW, ContainerH float64
}

var TileVisualComponent = NewComponent[TileVisual]()
