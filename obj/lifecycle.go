package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
)

// ApplyHit costs a life and starts the dying sequence. It does nothing while
// invulnerable, dying or dead. fall marks a fatal fall off the grid.
func (c *Character) ApplyHit(fall bool) bool {
	if c.invulnerable || c.state == StateDying || c.state == StateDead {
		return false
	}
	c.lives = max(0, c.lives-1)
	c.Velocity = cp.Vector{}
	c.prone = false
	c.aimLocked = false
	c.invulnerable = false
	c.invulnerableTimer = 0
	c.dyingTimer = 0
	c.commands = c.commands[:0]
	c.setState(StateDying)
	c.applyShape(c.StateDef().Hitbox)
	c.log.Info("character hit", zap.Bool("fall", fall), zap.Int("lives", c.lives))
	return true
}

// Respawn places a dead character with lives left at (x, y), the top-left of
// its sprite frame, and starts the invulnerability window.
func (c *Character) Respawn(x, y float64) bool {
	if c.state != StateDead || c.lives <= 0 {
		return false
	}
	c.resetBody(x, y)
	c.invulnerable = true
	c.invulnerableTimer = c.tuning.InvulnerableDuration
	c.log.Info("character respawned", zap.Int("lives", c.lives),
		zap.Float64("x", x), zap.Float64("y", y))
	return true
}

// ResetForNewGame restores a fresh character at (x, y) in place.
func (c *Character) ResetForNewGame(x, y float64) {
	c.resetBody(x, y)
	c.lives = c.tuning.Lives
	c.invulnerable = false
	c.invulnerableTimer = 0
	c.fireCooldown = 0
	c.input = Input{}
	c.log.Info("character reset", zap.Int("lives", c.lives))
}

func (c *Character) resetBody(x, y float64) {
	c.hitbox = HitboxStanding
	c.Position = cp.Vector{X: x, Y: y}
	c.Velocity = cp.Vector{}
	c.Facing = FacingRight
	c.OnGround = false
	c.InLiquid = false
	c.LiquidSurfaceY = 0
	c.prone = false
	c.aimLocked = false
	c.dyingTimer = 0
	c.commands = c.commands[:0]
	c.disabled.Clear()
	c.state = StateFalling
	c.frame = 0
	c.animTimer = 0
}

func (c *Character) IsDead() bool {
	return c.state == StateDead
}

func (c *Character) IsDying() bool {
	return c.state == StateDying
}

func (c *Character) LivesRemaining() int {
	return c.lives
}

func (c *Character) IsInvulnerable() bool {
	return c.invulnerable
}

// Visible reports whether the sprite should be drawn this tick. Dying and
// invulnerable characters blink.
func (c *Character) Visible() bool {
	switch {
	case c.state == StateDead:
		return false
	case c.state == StateDying:
		return blinkOn(c.dyingTimer, c.tuning.BlinkInterval)
	case c.invulnerable:
		return blinkOn(c.invulnerableTimer, c.tuning.BlinkInterval)
	}
	return true
}

func blinkOn(t, interval float64) bool {
	return int(math.Floor(t/interval))%2 == 0
}

// tickTimers runs the cooldown and invulnerability clocks.
func (c *Character) tickTimers(dt float64) {
	c.fireCooldown = math.Max(0, c.fireCooldown-dt)
	if c.invulnerable {
		c.invulnerableTimer -= dt
		if c.invulnerableTimer <= 0 {
			c.invulnerable = false
			c.invulnerableTimer = 0
			c.log.Debug("invulnerability ended")
		}
	}
}

func (c *Character) tickDying(dt float64) {
	if c.state != StateDying {
		return
	}
	c.dyingTimer += dt
	if c.dyingTimer >= c.tuning.DyingDuration {
		c.setState(StateDead)
		c.log.Info("character died", zap.Int("lives", c.lives))
	}
}
