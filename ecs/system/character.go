package system

import (
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/levels"
)

// CharacterSystem advances every character by one fixed tick. The grid is
// looked up from the Tilemap entity on each update so a level swap takes
// effect on the next tick.
type CharacterSystem struct {
	dt float64
}

func NewCharacterSystem(dt float64) *CharacterSystem {
	return &CharacterSystem{dt: dt}
}

func (s *CharacterSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var grid *levels.Grid
	if _, tm, ok := ecs.First(w, component.TilemapComponent.Kind()); ok {
		grid = tm.Grid
	}

	events := w.Events()
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		c := p.Character
		if c == nil {
			return
		}

		from := c.State()
		wasDying, wasDead := c.IsDying(), c.IsDead()

		c.Update(s.dt, grid)

		if to := c.State(); to != from {
			events.Push(ecs.Event{Type: EventStateChanged, Data: StateChange{Entity: e, From: from, To: to}})
		}
		if !wasDying && c.IsDying() {
			events.Push(ecs.Event{Type: EventPlayerDying, Data: LifeEvent{Entity: e, Lives: c.LivesRemaining()}})
		}
		if !wasDead && c.IsDead() {
			events.Push(ecs.Event{Type: EventPlayerDead, Data: LifeEvent{Entity: e, Lives: c.LivesRemaining()}})
		}
	})
}
