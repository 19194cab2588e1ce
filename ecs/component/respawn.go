package component

// Respawn counts down from Delay once the player is dead. GameOver is set
// when the countdown finished with no lives left.
type Respawn struct {
	Delay     float64
	Remaining float64
	Pending   bool
	GameOver  bool
}

var RespawnComponent = NewComponent[Respawn]()
