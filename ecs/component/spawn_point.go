package component

// SpawnPoint is where the player reappears after losing a life.
type SpawnPoint struct {
	X float64
	Y float64
}

var SpawnPointComponent = NewComponent[SpawnPoint]()
