package system

import (
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/obj"
)

// Event types pushed onto the world queue.
const (
	EventStateChanged    = "state_changed"
	EventShotFired       = "shot_fired"
	EventPlayerDying     = "player_dying"
	EventPlayerDead      = "player_dead"
	EventPlayerRespawned = "player_respawned"
	EventGameOver        = "game_over"
)

type StateChange struct {
	Entity ecs.Entity
	From   obj.LocomotionState
	To     obj.LocomotionState
}

type ShotFired struct {
	Shooter ecs.Entity
	Bullet  ecs.Entity
	Shot    obj.Shot
}

// LifeEvent carries the lives left after a death, respawn or game over.
type LifeEvent struct {
	Entity ecs.Entity
	Lives  int
}
