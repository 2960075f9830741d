package component

// Tile is one draggable photo. X and Y are percent of the container; Rotation
// is in degrees and never changes after creation.
type Tile struct {
	ID       int
	X        float64
	Y        float64
	Rotation float64
	Label    string
	Caption  string
}

var TileComponent = NewComponent[Tile]()

// Home is the position a tile was created at; reset returns tiles here.
type Home struct {
	X float64
	Y float64
}

var HomeComponent = NewComponent[Home]()
