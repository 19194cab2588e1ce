package component

import "github.com/milk9111/runandgun/levels"

// Tilemap holds the collision grid of the loaded level. Systems read it every
// tick instead of caching the pointer.
type Tilemap struct {
	Name string
	Grid *levels.Grid
}

var TilemapComponent = NewComponent[Tilemap]()
