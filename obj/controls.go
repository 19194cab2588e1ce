package obj

import (
	"fmt"
	"math"
	"strings"

	"github.com/milk9111/runandgun/common"
	"github.com/milk9111/runandgun/levels"
)

// Input is the held-input snapshot for one tick.
type Input struct {
	// MoveX is the horizontal intent in [-1, 1].
	MoveX   float64
	AimUp   bool
	AimDown bool
	Fire    bool
}

// Command is an edge-triggered action.
type Command int

const (
	CommandJump Command = iota + 1
	CommandDrop
	CommandToggleProne
	CommandToggleAimUp
)

func (c Command) String() string {
	switch c {
	case CommandJump:
		return "jump"
	case CommandDrop:
		return "drop"
	case CommandToggleProne:
		return "prone"
	case CommandToggleAimUp:
		return "aim_up"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

func ParseCommand(name string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "jump":
		return CommandJump, nil
	case "drop":
		return CommandDrop, nil
	case "prone", "toggle_prone":
		return CommandToggleProne, nil
	case "aim_up", "toggle_aim_up":
		return CommandToggleAimUp, nil
	}
	return 0, fmt.Errorf("obj: unknown command %q", name)
}

// SetInput replaces the held-input snapshot used by the next Update.
func (c *Character) SetInput(in Input) {
	in.MoveX = common.Clamp(in.MoveX, -1, 1)
	c.input = in
}

func (c *Character) HeldInput() Input {
	return c.input
}

// Queue records a command for the next Update. Commands are consumed in order
// and the queue is cleared every tick.
func (c *Character) Queue(cmd Command) {
	c.commands = append(c.commands, cmd)
}

func (c *Character) applyCommands(g *levels.Grid) {
	for _, cmd := range c.commands {
		switch cmd {
		case CommandJump:
			c.jump()
		case CommandDrop:
			c.drop(g)
		case CommandToggleProne:
			if c.OnGround && !c.InLiquid && !c.aimLocked {
				c.prone = !c.prone
				if c.prone {
					c.Velocity.X = 0
				}
			}
		case CommandToggleAimUp:
			if c.OnGround && !c.InLiquid && !c.prone {
				c.aimLocked = !c.aimLocked
			}
		}
	}
	c.commands = c.commands[:0]
}

func (c *Character) jump() {
	switch {
	case c.InLiquid:
		c.Velocity.Y = -c.tuning.WaterJumpSpeed
	case c.OnGround && !c.prone && !c.aimLocked:
		c.Velocity.Y = -c.tuning.JumpSpeed
		c.OnGround = false
	}
}

// drop starts falling through the one-way platform under the character. Every
// one-way cell under the feet is disabled so a straddling character cannot
// land on the neighbouring cell.
func (c *Character) drop(g *levels.Grid) {
	if !c.OnGround || c.InLiquid || c.prone || c.aimLocked {
		return
	}
	hb := c.WorldHitbox()
	feetY := hb.Bottom() + footProbe
	if g.TileAt(hb.CenterX(), feetY) != levels.TileOneWay {
		return
	}
	var cells []levels.TileCoord
	for _, x := range footSamples(hb) {
		cell := g.CellAt(x, feetY)
		switch g.KindAt(cell) {
		case levels.TileSolid:
			return
		case levels.TileOneWay:
			cells = append(cells, cell)
		}
	}
	for _, cell := range cells {
		c.disabled.Add(cell)
	}
	c.OnGround = false
	c.setState(StateDropping)
}

// applyMovement turns held input into horizontal velocity.
func (c *Character) applyMovement() {
	move := c.input.MoveX
	switch {
	case c.InLiquid:
		if move != 0 {
			c.Velocity.X = move * c.tuning.MoveSpeed * c.tuning.LiquidMoveScale
			c.face(move)
			return
		}
		c.Velocity.X *= c.tuning.LiquidDragX
		if math.Abs(c.Velocity.X) < 1 {
			c.Velocity.X = 0
		}
	case c.prone || c.aimLocked:
		c.Velocity.X = 0
	default:
		c.Velocity.X = move * c.tuning.MoveSpeed
		c.face(move)
	}
}

func (c *Character) face(move float64) {
	switch {
	case move > 0:
		c.Facing = FacingRight
	case move < 0:
		c.Facing = FacingLeft
	}
}

// cancelToggles drops prone and aim-lock once the character is no longer
// standing on solid footing.
func (c *Character) cancelToggles() {
	if c.OnGround && !c.InLiquid {
		return
	}
	c.prone = false
	c.aimLocked = false
}
