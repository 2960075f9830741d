package component

// ResetRequest asks the transition system to send every tile home.
type ResetRequest struct{}

var ResetRequestComponent = NewComponent[ResetRequest]()
