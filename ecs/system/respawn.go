package system

import (
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"go.uber.org/zap"
)

type RespawnSystem struct {
	dt  float64
	log *zap.Logger
}

func NewRespawnSystem(dt float64, log *zap.Logger) *RespawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &RespawnSystem{dt: dt, log: log}
}

// Update waits out the respawn delay for dead players, then either puts them
// back at the level's spawn point or flags the game as over.
func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	spawn := component.SpawnPoint{}
	if _, sp, ok := ecs.First(w, component.SpawnPointComponent.Kind()); ok {
		spawn = *sp
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.RespawnComponent.Kind(), func(e ecs.Entity, p *component.Player, r *component.Respawn) {
		c := p.Character
		if c == nil || r.GameOver {
			return
		}
		if !c.IsDead() {
			r.Pending = false
			return
		}
		if !r.Pending {
			r.Pending = true
			r.Remaining = r.Delay
		}
		r.Remaining -= s.dt
		if r.Remaining > 0 {
			return
		}
		r.Pending = false

		if c.Respawn(spawn.X, spawn.Y) {
			w.Events().Push(ecs.Event{Type: EventPlayerRespawned, Data: LifeEvent{Entity: e, Lives: c.LivesRemaining()}})
			return
		}
		r.GameOver = true
		s.log.Info("game over", zap.Stringer("entity", e))
		w.Events().Push(ecs.Event{Type: EventGameOver, Data: LifeEvent{Entity: e}})
	})
}
