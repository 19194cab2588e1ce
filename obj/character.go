package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/runandgun/common"
	"github.com/milk9111/runandgun/levels"
	"go.uber.org/zap"
)

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Character is a player-controlled body simulated against a tile grid. It is
// not safe for concurrent use.
type Character struct {
	// Position is the top-left of the sprite frame.
	Position       cp.Vector
	Velocity       cp.Vector
	Facing         Facing
	OnGround       bool
	InLiquid       bool
	LiquidSurfaceY float64

	state     LocomotionState
	hitbox    HitboxVariant
	prone     bool
	aimLocked bool

	lives             int
	invulnerable      bool
	invulnerableTimer float64
	dyingTimer        float64
	fireCooldown      float64

	disabled  DisabledTiles
	frame     int
	animTimer float64

	input    Input
	commands []Command

	tuning Tuning
	log    *zap.Logger
}

type Option func(*Character)

func WithLogger(log *zap.Logger) Option {
	return func(c *Character) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCharacter creates a falling character whose sprite frame starts at pos.
// The tuning must pass Validate.
func NewCharacter(pos cp.Vector, tuning Tuning, opts ...Option) (*Character, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	c := &Character{
		tuning:   tuning,
		log:      zap.NewNop(),
		commands: make([]Command, 0, 4),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ResetForNewGame(pos.X, pos.Y)
	return c, nil
}

// SetTuning swaps the tuning in place, keeping the hitbox bottom where it is.
func (c *Character) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	bottom := c.WorldHitbox().Bottom()
	c.tuning = t
	c.lives = min(c.lives, t.Lives)
	c.setHitboxBottom(bottom)
	return nil
}

func (c *Character) Tuning() Tuning {
	return c.tuning
}

// Update advances the character by one fixed tick against g.
func (c *Character) Update(dt float64, g *levels.Grid) {
	c.tickTimers(dt)
	if c.state == StateDying || c.state == StateDead {
		c.commands = c.commands[:0]
		c.tickDying(dt)
		return
	}

	c.applyCommands(g)
	c.applyMovement()
	Integrate(c, dt)
	contact := Resolve(c, g)
	if contact.FatalFall {
		c.ApplyHit(true)
		return
	}
	if contact.EnteredLiquid {
		c.log.Debug("entered liquid", zap.Float64("surface", c.LiquidSurfaceY))
	}

	c.cancelToggles()
	c.setState(c.selectState())
	c.applyShape(c.StateDef().Hitbox)
	c.animate(dt)
	c.disabled.Restore(c.WorldHitbox(), g, c.tuning.DropClearance)
}

func (c *Character) State() LocomotionState {
	return c.state
}

func (c *Character) StateDef() StateDef {
	return c.tuning.States[c.state]
}

func (c *Character) IsProne() bool {
	return c.prone
}

func (c *Character) IsAimLocked() bool {
	return c.aimLocked
}

// DisabledTiles lists the one-way cells currently being dropped through.
func (c *Character) DisabledTiles() []levels.TileCoord {
	return c.disabled.Cells()
}

func (c *Character) shape() HitboxShape {
	return c.tuning.Shapes[c.hitbox]
}

// ActiveHitbox reports the active hitbox shape.
func (c *Character) ActiveHitbox() HitboxVariant {
	return c.hitbox
}

// WorldHitbox is the collision box in world coordinates.
func (c *Character) WorldHitbox() common.Rect {
	return c.shape().Box.Translate(c.Position.X, c.Position.Y)
}

// FrameRect is the sprite frame in world coordinates.
func (c *Character) FrameRect() common.Rect {
	s := c.shape()
	return common.Rect{X: c.Position.X, Y: c.Position.Y, Width: s.FrameWidth, Height: s.FrameHeight}
}

// applyShape switches the hitbox, moving Position so the hitbox bottom stays
// where it was.
func (c *Character) applyShape(v HitboxVariant) {
	if v == c.hitbox {
		return
	}
	bottom := c.WorldHitbox().Bottom()
	c.hitbox = v
	c.setHitboxBottom(bottom)
}
