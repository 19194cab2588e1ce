package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/runandgun/common"
)

// BulletSize is the edge length of a bullet's box.
const BulletSize = 10

// Bullet is a straight-line projectile that expires after its lifetime. It
// passes through tiles.
type Bullet struct {
	Position cp.Vector
	Velocity cp.Vector
	Active   bool

	age      float64
	lifetime float64
}

func NewBullet(shot Shot, lifetime float64) *Bullet {
	return &Bullet{
		Position: shot.Origin,
		Velocity: shot.Velocity,
		Active:   true,
		lifetime: lifetime,
	}
}

func (b *Bullet) Update(dt float64) {
	if !b.Active {
		return
	}
	b.Position = b.Position.Add(b.Velocity.Mult(dt))
	b.age += dt
	if b.age >= b.lifetime {
		b.Active = false
	}
}

// Age is the time since the bullet was fired.
func (b *Bullet) Age() float64 {
	return b.age
}

func (b *Bullet) Rect() common.Rect {
	return common.Rect{X: b.Position.X, Y: b.Position.Y, Width: BulletSize, Height: BulletSize}
}
