package component

import "github.com/milk9111/runandgun/obj"

// Input stores per-frame input state for an entity. Commands are the edge
// triggered presses collected since the last tick.
type Input struct {
	Held     obj.Input
	Commands []obj.Command
}

var InputComponent = NewComponent[Input]()
