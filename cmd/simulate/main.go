package main

import (
	"flag"

	"github.com/milk9111/runandgun/config"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "settings file (TOML); empty for defaults")
	levelName := flag.String("level", "", "level name; overrides the config")
	scriptName := flag.String("script", "run_and_jump", "input script in prefabs/scripts")
	maxTicks := flag.Int("ticks", 3000, "stop after this many ticks")
	flag.Parse()

	boot, _ := zap.NewDevelopment()
	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Fatal("load config", zap.Error(err))
	}
	if *levelName != "" {
		cfg.Game.Level = *levelName
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		boot.Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	summary, err := run(cfg, *scriptName, *maxTicks, log)
	if err != nil {
		log.Fatal("simulation failed", zap.Error(err))
	}
	log.Info("simulation finished",
		zap.Int("ticks", summary.Ticks),
		zap.Stringer("state", summary.State),
		zap.Float64("x", summary.X),
		zap.Float64("y", summary.Y),
		zap.Int("lives", summary.Lives),
		zap.Int("shots", summary.Shots),
		zap.Int("deaths", summary.Deaths),
		zap.Int("transitions", summary.Transitions),
		zap.Bool("game_over", summary.GameOver),
	)
}
