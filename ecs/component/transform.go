package component

// Transform is the displayed placement of a tile in container pixels. X and Y
// are the top-left of the unscaled, unrotated box; scale and rotation apply
// around its center.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
