package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/runandgun/config"
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/ecs/entity"
	"github.com/milk9111/runandgun/ecs/system"
	"github.com/milk9111/runandgun/levels"
	"github.com/milk9111/runandgun/prefabs"
	"go.uber.org/zap"
)

type Game struct {
	cfg   *config.Config
	log   *zap.Logger
	world *ecs.World
	sched *ecs.Scheduler

	player ecs.Entity
	camera ecs.Entity

	watcher *prefabs.Watcher

	pauseUI    *ebitenui.UI
	gameOverUI *ebitenui.UI

	last        time.Time
	accumulator float64
	ticks       int
	paused      bool
	gameOver    bool
	quit        bool
}

func NewGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	lvl, err := levels.Load(cfg.Game.Level)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if _, err := entity.BuildLevel(w, lvl); err != nil {
		return nil, err
	}
	player, err := entity.NewPlayerAt(w, lvl.SpawnX, lvl.SpawnY, entity.PlayerOptions{
		Spec:         cfg.Game.Character,
		RespawnDelay: cfg.Simulation.RespawnDelay,
		Logger:       log,
	})
	if err != nil {
		return nil, err
	}
	camera, err := entity.NewCamera(w, float64(cfg.Window.Width), float64(cfg.Window.Height))
	if err != nil {
		return nil, err
	}

	dt := cfg.Simulation.Tick
	g := &Game{
		cfg:    cfg,
		log:    log,
		world:  w,
		player: player,
		camera: camera,
		sched: ecs.NewScheduler(
			system.NewInputApplySystem(),
			system.NewCharacterSystem(dt),
			system.NewFireSystem(),
			system.NewBulletSystem(dt),
			system.NewRespawnSystem(dt, log),
			system.NewCameraSystem(),
		),
	}

	g.pauseUI = NewPauseUI(g)
	g.gameOverUI = NewGameOverUI(g)

	if cfg.Game.HotReload {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Warn("prefab hot reload disabled", zap.Error(err))
		} else {
			g.watcher = watcher
		}
	}

	log.Info("game started", zap.String("level", lvl.Name), zap.Float64("tick", dt))
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// restart starts a new game after a game over.
func (g *Game) restart() {
	entity.ResetGame(g.world)
	g.gameOver = false
	g.paused = false
	g.accumulator = 0
	g.log.Info("game restarted")
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollReload()

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	frame := now.Sub(g.last).Seconds()
	g.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.log.Info("pause toggled", zap.Bool("paused", g.paused))
	}
	if g.gameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.restart()
			return nil
		}
		g.gameOverUI.Update()
		return nil
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if in, ok := ecs.Get(g.world, g.player, component.InputComponent.Kind()); ok {
		in.Held = pollHeld()
		in.Commands = appendPressed(in.Commands)
	}

	g.accumulator += min(frame, g.cfg.Simulation.MaxFrameTime)
	for g.accumulator >= g.cfg.Simulation.Tick {
		g.sched.Update(g.world)
		g.accumulator -= g.cfg.Simulation.Tick
		g.ticks++
		g.handleEvents()
	}
	return nil
}

func (g *Game) handleEvents() {
	for _, ev := range g.world.Events().Drain() {
		switch ev.Type {
		case system.EventStateChanged:
			change := ev.Data.(system.StateChange)
			g.log.Debug("state", zap.Stringer("from", change.From), zap.Stringer("to", change.To))
		case system.EventPlayerDying:
			g.log.Info("player down", zap.Int("lives", ev.Data.(system.LifeEvent).Lives))
		case system.EventGameOver:
			g.gameOver = true
		}
	}
}

// pollReload applies edited character prefabs between ticks.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("prefab watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	name := filepath.Base(path)
	if name != filepath.Base(g.cfg.Game.Character) {
		return
	}
	spec, err := prefabs.LoadCharacterSpec(name)
	if err != nil {
		g.log.Warn("reload rejected", zap.String("file", name), zap.Error(err))
		return
	}
	tuning, err := spec.Tuning()
	if err != nil {
		g.log.Warn("reload rejected", zap.String("file", name), zap.Error(err))
		return
	}
	n, err := entity.ReloadTuning(g.world, g.cfg.Game.Character, tuning)
	if err != nil {
		g.log.Warn("reload failed", zap.Error(err))
		return
	}
	g.log.Info("character tuning reloaded", zap.String("file", name), zap.Int("players", n))
}

func (g *Game) Draw(screen *ebiten.Image) {
	cam := component.Camera{}
	if c, ok := ecs.Get(g.world, g.camera, component.CameraComponent.Kind()); ok {
		cam = *c
	}
	drawWorld(screen, g.world, cam, g.cfg.Game.Debug)
	drawHUD(screen, g.world, g.player, g.cfg.Game.Debug)

	switch {
	case g.gameOver:
		g.gameOverUI.Draw(screen)
	case g.paused:
		g.pauseUI.Draw(screen)
	}
	if g.cfg.Game.Debug {
		drawDebugLine(screen, 3, fmt.Sprintf("ticks: %d  TPS: %.1f  FPS: %.1f", g.ticks, ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
