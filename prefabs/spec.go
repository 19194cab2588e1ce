package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/runandgun/common"
	"github.com/milk9111/runandgun/obj"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// LoadSpec decodes a prefab into a zero T.
func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := decodeInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

func decodeInto(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type PhysicsSpec struct {
	Gravity      float64 `yaml:"gravity"`
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	CeilingBump  float64 `yaml:"ceiling_bump"`
}

type LiquidSpec struct {
	GravityScale       float64 `yaml:"gravity_scale"`
	MaxFallSpeed       float64 `yaml:"max_fall_speed"`
	MoveScale          float64 `yaml:"move_scale"`
	DragX              float64 `yaml:"drag_x"`
	EntryDamping       float64 `yaml:"entry_damping"`
	Immersion          float64 `yaml:"immersion"`
	WaterJumpSpeed     float64 `yaml:"water_jump_speed"`
	WaterJumpThreshold float64 `yaml:"water_jump_threshold"`
	SnapOutOfBottom    bool    `yaml:"snap_out_of_liquid_bottom"`
}

type WeaponSpec struct {
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletLifetime float64 `yaml:"bullet_lifetime"`
	DiagonalScale  float64 `yaml:"diagonal_scale"`
	MuzzleOffset   float64 `yaml:"muzzle_offset"`
	Cooldown       float64 `yaml:"cooldown"`
}

type LifecycleSpec struct {
	Lives                int     `yaml:"lives"`
	InvulnerableDuration float64 `yaml:"invulnerable_duration"`
	DyingDuration        float64 `yaml:"dying_duration"`
	BlinkInterval        float64 `yaml:"blink_interval"`
}

type CollisionSpec struct {
	DropClearance       float64 `yaml:"drop_clearance"`
	GridBottomTolerance float64 `yaml:"grid_bottom_tolerance"`
}

type HitboxSpec struct {
	FrameWidth  float64 `yaml:"frame_width"`
	FrameHeight float64 `yaml:"frame_height"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

type StateSpec struct {
	Frames          int    `yaml:"frames"`
	Loop            bool   `yaml:"loop"`
	LoopWhileFiring bool   `yaml:"loop_while_firing"`
	Hitbox          string `yaml:"hitbox"`
	Sheet           string `yaml:"sheet"`
}

// CharacterSpec is the YAML form of obj.Tuning. Keys left out of the file keep
// the stock values; a state entry replaces the whole stock entry.
type CharacterSpec struct {
	Name      string                `yaml:"name"`
	Physics   PhysicsSpec           `yaml:"physics"`
	Liquid    LiquidSpec            `yaml:"liquid"`
	Weapon    WeaponSpec            `yaml:"weapon"`
	Lifecycle LifecycleSpec         `yaml:"lifecycle"`
	FrameTime float64               `yaml:"frame_time"`
	Collision CollisionSpec         `yaml:"collision"`
	Hitboxes  map[string]HitboxSpec `yaml:"hitboxes"`
	States    map[string]StateSpec  `yaml:"states"`
}

// DefaultCharacterSpec mirrors obj.DefaultTuning.
func DefaultCharacterSpec() CharacterSpec {
	t := obj.DefaultTuning()
	spec := CharacterSpec{
		Name: "character",
		Physics: PhysicsSpec{
			Gravity:      t.Gravity,
			MoveSpeed:    t.MoveSpeed,
			JumpSpeed:    t.JumpSpeed,
			MaxFallSpeed: t.MaxFallSpeed,
			CeilingBump:  t.CeilingBump,
		},
		Liquid: LiquidSpec{
			GravityScale:       t.LiquidGravityScale,
			MaxFallSpeed:       t.LiquidMaxFallSpeed,
			MoveScale:          t.LiquidMoveScale,
			DragX:              t.LiquidDragX,
			EntryDamping:       t.LiquidEntryDamping,
			Immersion:          t.LiquidImmersion,
			WaterJumpSpeed:     t.WaterJumpSpeed,
			WaterJumpThreshold: t.WaterJumpThreshold,
			SnapOutOfBottom:    t.SnapOutOfLiquidBottom,
		},
		Weapon: WeaponSpec{
			BulletSpeed:    t.BulletSpeed,
			BulletLifetime: t.BulletLifetime,
			DiagonalScale:  t.DiagonalScale,
			MuzzleOffset:   t.MuzzleOffset,
			Cooldown:       t.FireCooldown,
		},
		Lifecycle: LifecycleSpec{
			Lives:                t.Lives,
			InvulnerableDuration: t.InvulnerableDuration,
			DyingDuration:        t.DyingDuration,
			BlinkInterval:        t.BlinkInterval,
		},
		FrameTime: t.FrameTime,
		Collision: CollisionSpec{
			DropClearance:       t.DropClearance,
			GridBottomTolerance: t.GridBottomTolerance,
		},
		Hitboxes: make(map[string]HitboxSpec, len(t.Shapes)),
		States:   make(map[string]StateSpec, len(t.States)),
	}
	for variant, shape := range t.Shapes {
		spec.Hitboxes[string(variant)] = HitboxSpec{
			FrameWidth:  shape.FrameWidth,
			FrameHeight: shape.FrameHeight,
			X:           shape.Box.X,
			Y:           shape.Box.Y,
			Width:       shape.Box.Width,
			Height:      shape.Box.Height,
		}
	}
	for state, def := range t.States {
		spec.States[state.String()] = StateSpec{
			Frames:          def.Frames,
			Loop:            def.Loop,
			LoopWhileFiring: def.LoopWhileFiring,
			Hitbox:          string(def.Hitbox),
			Sheet:           def.Sheet,
		}
	}
	return spec
}

// Tuning converts the spec without validating the values.
func (s CharacterSpec) Tuning() (obj.Tuning, error) {
	t := obj.Tuning{
		Gravity:      s.Physics.Gravity,
		MoveSpeed:    s.Physics.MoveSpeed,
		JumpSpeed:    s.Physics.JumpSpeed,
		MaxFallSpeed: s.Physics.MaxFallSpeed,
		CeilingBump:  s.Physics.CeilingBump,

		LiquidGravityScale:    s.Liquid.GravityScale,
		LiquidMaxFallSpeed:    s.Liquid.MaxFallSpeed,
		LiquidMoveScale:       s.Liquid.MoveScale,
		LiquidDragX:           s.Liquid.DragX,
		LiquidEntryDamping:    s.Liquid.EntryDamping,
		LiquidImmersion:       s.Liquid.Immersion,
		WaterJumpSpeed:        s.Liquid.WaterJumpSpeed,
		WaterJumpThreshold:    s.Liquid.WaterJumpThreshold,
		SnapOutOfLiquidBottom: s.Liquid.SnapOutOfBottom,

		BulletSpeed:    s.Weapon.BulletSpeed,
		BulletLifetime: s.Weapon.BulletLifetime,
		DiagonalScale:  s.Weapon.DiagonalScale,
		MuzzleOffset:   s.Weapon.MuzzleOffset,
		FireCooldown:   s.Weapon.Cooldown,

		Lives:                s.Lifecycle.Lives,
		InvulnerableDuration: s.Lifecycle.InvulnerableDuration,
		DyingDuration:        s.Lifecycle.DyingDuration,
		BlinkInterval:        s.Lifecycle.BlinkInterval,

		FrameTime:           s.FrameTime,
		DropClearance:       s.Collision.DropClearance,
		GridBottomTolerance: s.Collision.GridBottomTolerance,

		Shapes: make(map[obj.HitboxVariant]obj.HitboxShape, len(s.Hitboxes)),
		States: make(obj.StateTable, len(s.States)),
	}

	for name, hb := range s.Hitboxes {
		t.Shapes[obj.HitboxVariant(name)] = obj.HitboxShape{
			FrameWidth:  hb.FrameWidth,
			FrameHeight: hb.FrameHeight,
			Box:         common.Rect{X: hb.X, Y: hb.Y, Width: hb.Width, Height: hb.Height},
		}
	}
	for name, st := range s.States {
		state, err := obj.ParseLocomotionState(name)
		if err != nil {
			return obj.Tuning{}, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
		}
		t.States[state] = obj.StateDef{
			Frames:          st.Frames,
			Loop:            st.Loop,
			LoopWhileFiring: st.LoopWhileFiring,
			Hitbox:          obj.HitboxVariant(st.Hitbox),
			Sheet:           st.Sheet,
		}
	}
	return t, nil
}

func (s CharacterSpec) Validate() error {
	t, err := s.Tuning()
	if err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidSpec, s.Name, err)
	}
	return nil
}

// LoadCharacterSpec reads a character prefab over the stock values and
// validates it.
func LoadCharacterSpec(filename string) (*CharacterSpec, error) {
	spec := DefaultCharacterSpec()
	if err := decodeInto(filename, &spec); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

type CameraSpec struct {
	Name       string  `yaml:"name"`
	Smoothness float64 `yaml:"smoothness"`
	LookOffset float64 `yaml:"look_offset"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
