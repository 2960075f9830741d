package component

// BoardTag marks the singleton entity holding container, pointer and drag
// state.
type BoardTag struct{}

var BoardTagComponent = NewComponent[BoardTag]()

// CardTag marks the message card entity.
type CardTag struct{}

var CardTagComponent = NewComponent[CardTag]()
