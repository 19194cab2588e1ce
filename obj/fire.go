package obj

import "github.com/jakecoffman/cp"

// Shot is a projectile spawn request.
type Shot struct {
	Origin   cp.Vector
	Velocity cp.Vector
}

// aim is the effective aiming direction used for shot geometry.
type aim int

const (
	aimForward aim = iota
	aimProne
	aimUp
	aimDiagUp
	aimDiagDown
)

func aimOf(s LocomotionState) aim {
	switch s {
	case StateProne, StateProneAim:
		return aimProne
	case StateStandAimUp:
		return aimUp
	case StateStandAimDiagUp, StateRunAimDiagUp:
		return aimDiagUp
	case StateStandAimDiagDown, StateRunAimDiagDown:
		return aimDiagDown
	default:
		return aimForward
	}
}

// TryFire returns the shot for the current aim and restarts the cooldown. It
// fails while the cooldown runs or the character is dying or dead.
func (c *Character) TryFire() (Shot, bool) {
	if c.fireCooldown > 0 || c.state == StateDying || c.state == StateDead {
		return Shot{}, false
	}
	c.fireCooldown = c.tuning.FireCooldown
	shot := c.shotGeometry()
	c.log.Debug("fired")
	return shot, true
}

func (c *Character) shotGeometry() Shot {
	hb := c.WorldHitbox()
	t := &c.tuning
	speed := t.BulletSpeed
	d := speed * t.DiagonalScale
	muzzle := t.MuzzleOffset
	right := c.Facing == FacingRight

	sign := -1.0
	leading := hb.Left() - muzzle
	if right {
		sign = 1
		leading = hb.Right()
	}

	switch aimOf(c.state) {
	case aimProne:
		x := hb.Left() - muzzle
		if right {
			x = hb.Right() + muzzle/2
		}
		return Shot{
			Origin:   cp.Vector{X: x, Y: hb.Top() + hb.Height*0.5},
			Velocity: cp.Vector{X: sign * speed},
		}
	case aimUp:
		return Shot{
			Origin:   cp.Vector{X: hb.CenterX(), Y: hb.Top()},
			Velocity: cp.Vector{Y: -speed},
		}
	case aimDiagUp:
		x := hb.Left() + hb.Width*0.2 - muzzle
		if right {
			x = hb.Left() + hb.Width*0.8
		}
		return Shot{
			Origin:   cp.Vector{X: x, Y: hb.Top() + hb.Height*0.1},
			Velocity: cp.Vector{X: sign * d, Y: -d},
		}
	case aimDiagDown:
		return Shot{
			Origin:   cp.Vector{X: leading, Y: hb.Top() + hb.Height*0.7},
			Velocity: cp.Vector{X: sign * d, Y: d},
		}
	default:
		return Shot{
			Origin:   cp.Vector{X: leading, Y: hb.Top() + hb.Height*0.4},
			Velocity: cp.Vector{X: sign * speed},
		}
	}
}
