package component

import "github.com/milk9111/runandgun/obj"

// Player binds an entity to the character controller that simulates it.
type Player struct {
	Character *obj.Character
	// Spec names the prefab the tuning came from so it can be hot reloaded.
	Spec string
}

var PlayerComponent = NewComponent[Player]()
