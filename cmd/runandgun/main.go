package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/runandgun/config"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "runandgun.toml", "settings file (TOML); empty for defaults")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional); overrides the config")
	debug := flag.Bool("debug", false, "draw hitboxes and controller state")
	flag.Parse()

	boot, _ := zap.NewDevelopment()
	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Fatal("load config", zap.Error(err))
	}
	if *levelName != "" {
		cfg.Game.Level = *levelName
	}
	if *debug {
		cfg.Game.Debug = true
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		boot.Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	game, err := NewGame(cfg, log)
	if err != nil {
		log.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal("run game", zap.Error(err))
	}
}
