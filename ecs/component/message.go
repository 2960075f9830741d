package component

// Message is the greeting printed on the card under the tiles.
type Message struct {
	Title       string
	Instruction string
	Body        string
	Closing     string
	Footer      string
}

var MessageComponent = NewComponent[Message]()

// Pulse drives the heart opacity animation on the card.
type Pulse struct {
	Elapsed float64
	Period  float64
}

var PulseComponent = NewComponent[Pulse]()
