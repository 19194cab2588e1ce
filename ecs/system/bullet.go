package system

import (
	"github.com/milk9111/runandgun/common"
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
)

// BulletSystem moves bullets and destroys the ones that expired or left the
// level bounds.
type BulletSystem struct {
	dt float64
}

func NewBulletSystem(dt float64) *BulletSystem {
	return &BulletSystem{dt: dt}
}

func (s *BulletSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var bounds *common.Rect
	if _, lb, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok && lb.Width > 0 && lb.Height > 0 {
		bounds = &common.Rect{Width: lb.Width, Height: lb.Height}
	}

	ecs.ForEach(w, component.BulletComponent.Kind(), func(e ecs.Entity, b *component.Bullet) {
		if b.Projectile == nil {
			ecs.DestroyEntity(w, e)
			return
		}
		b.Projectile.Update(s.dt)
		if !b.Projectile.Active || (bounds != nil && !bounds.Intersects(b.Projectile.Rect())) {
			ecs.DestroyEntity(w, e)
		}
	})
}
