package obj

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// LocomotionState is the single active state of a character.
type LocomotionState int

const (
	StateIdle LocomotionState = iota
	StateRunning
	StateJumping
	StateFalling
	StateDropping
	StateEnteringWater
	StateSwimming
	StateWaterJump
	StateStandAimHoriz
	StateStandAimDiagUp
	StateStandAimDiagDown
	StateRunAimHoriz
	StateRunAimDiagUp
	StateRunAimDiagDown
	StateStandAimUp
	StateProne
	StateProneAim
	StateDying
	StateDead

	stateCount
)

var stateNames = [stateCount]string{
	StateIdle:             "idle",
	StateRunning:          "running",
	StateJumping:          "jumping",
	StateFalling:          "falling",
	StateDropping:         "dropping",
	StateEnteringWater:    "entering_water",
	StateSwimming:         "swimming",
	StateWaterJump:        "water_jump",
	StateStandAimHoriz:    "stand_aim_horiz",
	StateStandAimDiagUp:   "stand_aim_diag_up",
	StateStandAimDiagDown: "stand_aim_diag_down",
	StateRunAimHoriz:      "run_aim_horiz",
	StateRunAimDiagUp:     "run_aim_diag_up",
	StateRunAimDiagDown:   "run_aim_diag_down",
	StateStandAimUp:       "stand_aim_up",
	StateProne:            "prone",
	StateProneAim:         "prone_aim",
	StateDying:            "dying",
	StateDead:             "dead",
}

func (s LocomotionState) String() string {
	if s < 0 || s >= stateCount {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// ParseLocomotionState is the inverse of String.
func ParseLocomotionState(name string) (LocomotionState, error) {
	for i, n := range stateNames {
		if n == name {
			return LocomotionState(i), nil
		}
	}
	return 0, fmt.Errorf("obj: unknown state %q", name)
}

// AllStates lists every state in declaration order.
func AllStates() []LocomotionState {
	out := make([]LocomotionState, stateCount)
	for i := range out {
		out[i] = LocomotionState(i)
	}
	return out
}

// StateDef is the per-state data consulted by animation, hitbox selection and
// rendering.
type StateDef struct {
	Frames int
	Loop   bool
	// LoopWhileFiring makes a non-looping animation cycle while fire is held.
	LoopWhileFiring bool
	Hitbox          HitboxVariant
	Sheet           string
}

// StateTable maps every state to its definition.
type StateTable map[LocomotionState]StateDef

// DefaultStateTable matches the stock sprite sheets.
func DefaultStateTable() StateTable {
	stand := func(frames int, loop bool, sheet string) StateDef {
		return StateDef{Frames: frames, Loop: loop, Hitbox: HitboxStanding, Sheet: sheet}
	}
	aim := func(frames int, sheet string) StateDef {
		return StateDef{Frames: frames, LoopWhileFiring: true, Hitbox: HitboxStanding, Sheet: sheet}
	}
	return StateTable{
		StateIdle:             stand(1, false, "run"),
		StateRunning:          stand(6, true, "run"),
		StateJumping:          stand(4, false, "jump"),
		StateFalling:          stand(4, false, "jump"),
		StateDropping:         stand(4, false, "jump"),
		StateEnteringWater:    stand(1, false, "enter_water"),
		StateSwimming:         stand(5, true, "swim"),
		StateWaterJump:        stand(5, true, "swim"),
		StateStandAimHoriz:    aim(1, "stand_aim_horiz"),
		StateStandAimDiagUp:   aim(1, "aim_diag_up"),
		StateStandAimDiagDown: aim(1, "aim_diag_down"),
		StateRunAimHoriz:      stand(3, true, "run_aim_horiz"),
		StateRunAimDiagUp:     stand(3, true, "run_aim_diag_up"),
		StateRunAimDiagDown:   stand(3, true, "run_aim_diag_down"),
		StateStandAimUp:       aim(2, "aim_up"),
		StateProne:            {Frames: 1, Hitbox: HitboxProne, Sheet: "lying"},
		StateProneAim:         {Frames: 3, LoopWhileFiring: true, Hitbox: HitboxProne, Sheet: "lying_aim"},
		StateDying:            stand(1, false, "jump"),
		StateDead:             stand(1, false, "jump"),
	}
}

func (t StateTable) validate(shapes map[HitboxVariant]HitboxShape) error {
	for _, s := range AllStates() {
		def, ok := t[s]
		if !ok {
			return fmt.Errorf("%w: state %s has no definition", ErrInvalidTuning, s)
		}
		if def.Frames < 1 {
			return fmt.Errorf("%w: state %s needs at least one frame", ErrInvalidTuning, s)
		}
		if _, ok := shapes[def.Hitbox]; !ok {
			return fmt.Errorf("%w: state %s uses unknown hitbox %q", ErrInvalidTuning, s, def.Hitbox)
		}
	}
	return nil
}

// Clone returns an independent copy of t.
func (t StateTable) Clone() StateTable {
	out := make(StateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

var (
	standFamily = map[LocomotionState]bool{
		StateIdle:             true,
		StateStandAimHoriz:    true,
		StateStandAimDiagUp:   true,
		StateStandAimDiagDown: true,
		StateStandAimUp:       true,
	}
	runFamily = map[LocomotionState]bool{
		StateRunning:        true,
		StateRunAimHoriz:    true,
		StateRunAimDiagUp:   true,
		StateRunAimDiagDown: true,
	}
)

// keepsFrame reports whether switching from prev to next keeps the frame index.
func keepsFrame(prev, next LocomotionState, table StateTable) bool {
	switch {
	case prev == StateIdle && (next == StateRunning || standFamily[next]):
		return true
	case prev == StateRunning && (next == StateIdle || runFamily[next]):
		return true
	case standFamily[prev] && next == StateIdle, runFamily[prev] && next == StateRunning:
		return true
	case prev == StateSwimming && next == StateWaterJump, prev == StateWaterJump && next == StateSwimming:
		return true
	case prev == StateEnteringWater && next == StateSwimming:
		return table[StateEnteringWater].Frames == 1
	}
	return false
}

func (c *Character) setState(next LocomotionState) {
	if next == c.state {
		return
	}
	prev := c.state
	c.state = next
	c.animTimer = 0
	if !keepsFrame(prev, next, c.tuning.States) {
		c.frame = 0
	}
	c.log.Debug("state changed", zap.Stringer("from", prev), zap.Stringer("to", next))
}

// selectState derives the state for this tick from the resolved flags and
// held input. Earlier cases win.
func (c *Character) selectState() LocomotionState {
	prev := c.state
	switch {
	case prev == StateDying || prev == StateDead:
		return prev
	case c.InLiquid:
		return c.liquidState(prev)
	case c.prone:
		if c.input.Fire || c.input.AimUp || c.input.AimDown {
			return StateProneAim
		}
		return StateProne
	case c.aimLocked:
		return StateStandAimUp
	case !c.OnGround:
		return c.airborneState(prev)
	default:
		return c.groundedState()
	}
}

func (c *Character) liquidState(prev LocomotionState) LocomotionState {
	switch prev {
	case StateEnteringWater:
		if c.frame < c.tuning.States[StateEnteringWater].Frames-1 {
			return StateEnteringWater
		}
	case StateSwimming, StateWaterJump:
	default:
		return StateEnteringWater
	}
	vx, vy := c.Velocity.X, c.Velocity.Y
	if vy < -c.tuning.WaterJumpThreshold && math.Abs(vy) > math.Abs(vx*0.5) {
		return StateWaterJump
	}
	return StateSwimming
}

func (c *Character) airborneState(prev LocomotionState) LocomotionState {
	switch {
	case prev == StateDropping && c.disabled.Len() > 0:
		return StateDropping
	case c.input.Fire && c.input.AimUp:
		return StateStandAimDiagUp
	case c.input.Fire && c.input.AimDown:
		return StateStandAimDiagDown
	case c.input.Fire:
		return StateStandAimHoriz
	case c.Velocity.Y < -movingThreshold:
		return StateJumping
	default:
		return StateFalling
	}
}

// groundedState picks between the stand and run variants. Held aim-up with no
// held direction aims straight up. With a held direction it aims diagonally,
// standing when blocked by a wall and running otherwise.
func (c *Character) groundedState() LocomotionState {
	moving := math.Abs(c.Velocity.X) > movingThreshold
	switch {
	case c.input.AimUp && moving:
		return StateRunAimDiagUp
	case c.input.AimUp && c.input.MoveX != 0:
		return StateStandAimDiagUp
	case c.input.AimUp:
		return StateStandAimUp
	case c.input.AimDown && moving:
		return StateRunAimDiagDown
	case c.input.AimDown:
		return StateStandAimDiagDown
	case c.input.Fire && moving:
		return StateRunAimHoriz
	case c.input.Fire:
		return StateStandAimHoriz
	case moving:
		return StateRunning
	default:
		return StateIdle
	}
}

const movingThreshold = 0.1
