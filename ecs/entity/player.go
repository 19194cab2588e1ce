package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/obj"
	"github.com/milk9111/runandgun/prefabs"
	"go.uber.org/zap"
)

type PlayerOptions struct {
	// Spec is the character prefab file name.
	Spec         string
	RespawnDelay float64
	Logger       *zap.Logger
}

// NewPlayerAt builds a player from its prefab with the sprite frame's
// top-left at (x, y).
func NewPlayerAt(w *ecs.World, x, y float64, opts PlayerOptions) (ecs.Entity, error) {
	spec, err := prefabs.LoadCharacterSpec(opts.Spec)
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	tuning, err := spec.Tuning()
	if err != nil {
		return 0, fmt.Errorf("player: tuning: %w", err)
	}
	return BuildPlayer(w, tuning, x, y, opts)
}

// BuildPlayer creates the player entity around a fresh character.
func BuildPlayer(w *ecs.World, tuning obj.Tuning, x, y float64, opts PlayerOptions) (ecs.Entity, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e := ecs.CreateEntity(w)
	c, err := obj.NewCharacter(cp.Vector{X: x, Y: y}, tuning, obj.WithLogger(log.With(zap.Stringer("entity", e))))
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: %w", err)
	}

	err = addAll(w, e,
		addStep("player tag", component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		addStep("player", component.PlayerComponent.Kind(), &component.Player{Character: c, Spec: opts.Spec}),
		addStep("input", component.InputComponent.Kind(), &component.Input{Commands: make([]obj.Command, 0, 4)}),
		addStep("respawn", component.RespawnComponent.Kind(), &component.Respawn{Delay: opts.RespawnDelay}),
	)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}

type buildStep func(w *ecs.World, e ecs.Entity) error

func addStep[T any](name string, kind component.ComponentKind[T], value *T) buildStep {
	return func(w *ecs.World, e ecs.Entity) error {
		if err := ecs.Add(w, e, kind, value); err != nil {
			return fmt.Errorf("add %s: %w", name, err)
		}
		return nil
	}
}

// addAll runs steps in order. On the first failure e is destroyed so no half
// built entity stays in the world.
func addAll(w *ecs.World, e ecs.Entity, steps ...buildStep) error {
	for _, step := range steps {
		if err := step(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return err
		}
	}
	return nil
}

// ResetGame restores every player to full lives at the spawn point and
// removes live bullets.
func ResetGame(w *ecs.World) {
	spawn := component.SpawnPoint{}
	if _, sp, ok := ecs.First(w, component.SpawnPointComponent.Kind()); ok {
		spawn = *sp
	}

	ecs.ForEach(w, component.BulletComponent.Kind(), func(e ecs.Entity, _ *component.Bullet) {
		ecs.DestroyEntity(w, e)
	})
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.RespawnComponent.Kind(), func(_ ecs.Entity, p *component.Player, r *component.Respawn) {
		if p.Character != nil {
			p.Character.ResetForNewGame(spawn.X, spawn.Y)
		}
		r.Pending = false
		r.GameOver = false
		r.Remaining = 0
	})
	w.Events().Drain()
}

// ReloadTuning swaps the tuning of every player built from spec.
func ReloadTuning(w *ecs.World, spec string, tuning obj.Tuning) (int, error) {
	updated := 0
	var firstErr error
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		if p.Character == nil || p.Spec != spec {
			return
		}
		if err := p.Character.SetTuning(tuning); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("player: reload %s: %w", spec, err)
			}
			return
		}
		updated++
	})
	return updated, firstErr
}
