package common

// Point is a position in container (screen) pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in container (screen) pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
