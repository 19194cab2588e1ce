package obj

import (
	"errors"
	"fmt"

	"github.com/milk9111/runandgun/common"
)

// HitboxVariant names a hitbox shape.
type HitboxVariant string

const (
	HitboxStanding HitboxVariant = "standing"
	HitboxProne    HitboxVariant = "prone"
)

// HitboxShape is a sprite frame size plus the collision box inside it. Box is
// relative to the frame's top-left corner.
type HitboxShape struct {
	FrameWidth  float64
	FrameHeight float64
	Box         common.Rect
}

// Tuning holds every constant the controller reads. Units are world units and
// seconds.
type Tuning struct {
	Gravity      float64
	MoveSpeed    float64
	JumpSpeed    float64
	MaxFallSpeed float64
	CeilingBump  float64

	LiquidGravityScale float64
	LiquidMaxFallSpeed float64
	LiquidMoveScale    float64
	LiquidDragX        float64
	LiquidEntryDamping float64
	// LiquidImmersion is the fraction of the hitbox below the surface on entry.
	LiquidImmersion       float64
	WaterJumpSpeed        float64
	WaterJumpThreshold    float64
	SnapOutOfLiquidBottom bool

	BulletSpeed    float64
	BulletLifetime float64
	DiagonalScale  float64
	MuzzleOffset   float64
	FireCooldown   float64

	Lives                int
	InvulnerableDuration float64
	DyingDuration        float64
	BlinkInterval        float64

	FrameTime           float64
	DropClearance       float64
	GridBottomTolerance float64

	Shapes map[HitboxVariant]HitboxShape
	States StateTable
}

// DefaultTuning returns the stock character values.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:      980,
		MoveSpeed:    300,
		JumpSpeed:    500,
		MaxFallSpeed: 600,
		CeilingBump:  50,

		LiquidGravityScale:    0.3,
		LiquidMaxFallSpeed:    300,
		LiquidMoveScale:       0.7,
		LiquidDragX:           0.85,
		LiquidEntryDamping:    0.5,
		LiquidImmersion:       0.3,
		WaterJumpSpeed:        300,
		WaterJumpThreshold:    10,
		SnapOutOfLiquidBottom: true,

		BulletSpeed:    600,
		BulletLifetime: 2,
		DiagonalScale:  0.5,
		MuzzleOffset:   10,
		FireCooldown:   0.15,

		Lives:                4,
		InvulnerableDuration: 3,
		DyingDuration:        1.5,
		BlinkInterval:        0.1,

		FrameTime:           0.08,
		DropClearance:       1,
		GridBottomTolerance: 0.5,

		Shapes: map[HitboxVariant]HitboxShape{
			HitboxStanding: {
				FrameWidth:  40,
				FrameHeight: 78,
				Box:         common.Rect{X: 10, Y: 4, Width: 20, Height: 70},
			},
			HitboxProne: {
				FrameWidth:  78,
				FrameHeight: 40,
				Box:         common.Rect{X: 9, Y: 10, Width: 60, Height: 30},
			},
		},
		States: DefaultStateTable(),
	}
}

var ErrInvalidTuning = errors.New("obj: invalid tuning")

// Validate reports the first value that would break the controller.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"gravity", t.Gravity},
		{"move_speed", t.MoveSpeed},
		{"jump_speed", t.JumpSpeed},
		{"max_fall_speed", t.MaxFallSpeed},
		{"liquid_max_fall_speed", t.LiquidMaxFallSpeed},
		{"water_jump_speed", t.WaterJumpSpeed},
		{"bullet_speed", t.BulletSpeed},
		{"bullet_lifetime", t.BulletLifetime},
		{"frame_time", t.FrameTime},
		{"blink_interval", t.BlinkInterval},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.v)
		}
	}

	unit := []struct {
		name string
		v    float64
	}{
		{"liquid_gravity_scale", t.LiquidGravityScale},
		{"liquid_move_scale", t.LiquidMoveScale},
		{"liquid_drag_x", t.LiquidDragX},
		{"liquid_entry_damping", t.LiquidEntryDamping},
		{"liquid_immersion", t.LiquidImmersion},
		{"diagonal_scale", t.DiagonalScale},
	}
	for _, u := range unit {
		if u.v < 0 || u.v > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidTuning, u.name, u.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"ceiling_bump", t.CeilingBump},
		{"water_jump_threshold", t.WaterJumpThreshold},
		{"muzzle_offset", t.MuzzleOffset},
		{"fire_cooldown", t.FireCooldown},
		{"invulnerable_duration", t.InvulnerableDuration},
		{"dying_duration", t.DyingDuration},
		{"drop_clearance", t.DropClearance},
		{"grid_bottom_tolerance", t.GridBottomTolerance},
	}
	for _, n := range nonNegative {
		if n.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidTuning, n.name, n.v)
		}
	}
	if t.Lives < 1 {
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrInvalidTuning, t.Lives)
	}

	for _, variant := range []HitboxVariant{HitboxStanding, HitboxProne} {
		shape, ok := t.Shapes[variant]
		if !ok {
			return fmt.Errorf("%w: missing %s hitbox", ErrInvalidTuning, variant)
		}
		frame := common.Rect{Width: shape.FrameWidth, Height: shape.FrameHeight}
		if shape.Box.Width <= 0 || shape.Box.Height <= 0 || !frame.Contains(shape.Box) {
			return fmt.Errorf("%w: %s hitbox %+v does not fit its %vx%v frame",
				ErrInvalidTuning, variant, shape.Box, shape.FrameWidth, shape.FrameHeight)
		}
	}

	return t.States.validate(t.Shapes)
}
