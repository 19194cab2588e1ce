package system

import (
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/obj"
)

// FireSystem spawns a bullet entity whenever a player holds fire and the
// character's cooldown allows it. It runs after CharacterSystem so the shot
// uses this tick's state and hitbox.
type FireSystem struct{}

func NewFireSystem() *FireSystem { return &FireSystem{} }

func (s *FireSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, p *component.Player, in *component.Input) {
		if p.Character == nil || !in.Held.Fire {
			return
		}
		shot, ok := p.Character.TryFire()
		if !ok {
			return
		}

		b := ecs.CreateEntity(w)
		projectile := obj.NewBullet(shot, p.Character.Tuning().BulletLifetime)
		if err := ecs.Add(w, b, component.BulletComponent.Kind(), &component.Bullet{Projectile: projectile}); err != nil {
			ecs.DestroyEntity(w, b)
			return
		}
		w.Events().Push(ecs.Event{Type: EventShotFired, Data: ShotFired{Shooter: e, Bullet: b, Shot: shot}})
	})
}
