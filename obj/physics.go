package obj

import "math"

// Integrate advances velocity by gravity and position by velocity over dt.
// Dying and dead characters do not move.
func Integrate(c *Character, dt float64) {
	if c.state == StateDying || c.state == StateDead || dt <= 0 {
		return
	}

	t := &c.tuning
	switch {
	case c.InLiquid:
		c.Velocity.Y += t.Gravity * t.LiquidGravityScale * dt
		c.Velocity.Y = math.Max(-t.LiquidMaxFallSpeed, math.Min(t.LiquidMaxFallSpeed, c.Velocity.Y))
	case !c.OnGround:
		c.Velocity.Y = math.Min(c.Velocity.Y+t.Gravity*dt, t.MaxFallSpeed)
	case c.prone:
		c.Velocity.Y = 0
	}

	c.Position = c.Position.Add(c.Velocity.Mult(dt))
}
