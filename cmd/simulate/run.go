package main

import (
	"fmt"

	"github.com/milk9111/runandgun/config"
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/ecs/entity"
	"github.com/milk9111/runandgun/ecs/system"
	"github.com/milk9111/runandgun/levels"
	"github.com/milk9111/runandgun/obj"
	"github.com/milk9111/runandgun/script"
	"go.uber.org/zap"
)

type summary struct {
	Ticks       int
	State       obj.LocomotionState
	X, Y        float64
	Lives       int
	Shots       int
	Deaths      int
	Transitions int
	GameOver    bool
}

// run drives one player through a level with a scripted pad until the script
// stops, the game ends or maxTicks pass.
func run(cfg *config.Config, scriptName string, maxTicks int, log *zap.Logger) (summary, error) {
	lvl, err := levels.Load(cfg.Game.Level)
	if err != nil {
		return summary{}, err
	}
	pad, err := script.Load(scriptName, log)
	if err != nil {
		return summary{}, err
	}

	w := ecs.NewWorld()
	if _, err := entity.BuildLevel(w, lvl); err != nil {
		return summary{}, err
	}
	player, err := entity.NewPlayerAt(w, lvl.SpawnX, lvl.SpawnY, entity.PlayerOptions{
		Spec:         cfg.Game.Character,
		RespawnDelay: cfg.Simulation.RespawnDelay,
		Logger:       log,
	})
	if err != nil {
		return summary{}, err
	}
	in, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return summary{}, fmt.Errorf("simulate: player has no input")
	}

	dt := cfg.Simulation.Tick
	sched := ecs.NewScheduler(
		system.NewInputApplySystem(),
		system.NewCharacterSystem(dt),
		system.NewFireSystem(),
		system.NewBulletSystem(dt),
		system.NewRespawnSystem(dt, log),
	)

	var sum summary
	log.Info("simulation started", zap.String("level", lvl.Name), zap.String("script", pad.Name()))
	for sum.Ticks < maxTicks && !sum.GameOver {
		frame, err := pad.Step(sum.Ticks)
		if err != nil {
			return sum, err
		}
		if frame.Done {
			break
		}
		in.Held = frame.Input
		in.Commands = append(in.Commands, frame.Commands...)

		sched.Update(w)
		sum.Ticks++

		for _, ev := range w.Events().Drain() {
			switch ev.Type {
			case system.EventStateChanged:
				change := ev.Data.(system.StateChange)
				sum.Transitions++
				log.Debug("state", zap.Int("tick", sum.Ticks), zap.Stringer("from", change.From), zap.Stringer("to", change.To))
			case system.EventShotFired:
				sum.Shots++
			case system.EventPlayerDying:
				sum.Deaths++
				log.Info("player down", zap.Int("tick", sum.Ticks), zap.Int("lives", ev.Data.(system.LifeEvent).Lives))
			case system.EventGameOver:
				sum.GameOver = true
			}
		}
	}

	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		c := p.Character
		sum.State = c.State()
		sum.X, sum.Y = c.Position.X, c.Position.Y
		sum.Lives = c.LivesRemaining()
	}
	return sum, nil
}
