package component

import "github.com/milk9111/runandgun/obj"

type Bullet struct {
	Projectile *obj.Bullet
}

var BulletComponent = NewComponent[Bullet]()
