package component

// RenderLayer orders tiles; a higher index draws on top and wins hit tests.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
