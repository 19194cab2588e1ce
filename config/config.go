package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("config: invalid settings")

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Simulation SimulationConfig `toml:"simulation"`
	Game       GameConfig       `toml:"game"`
	Logging    LoggingConfig    `toml:"logging"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type SimulationConfig struct {
	Tick         float64 `toml:"tick"`           // fixed step in seconds
	MaxFrameTime float64 `toml:"max_frame_time"` // frame time is clamped to this before accumulating
	RespawnDelay float64 `toml:"respawn_delay"`
}

type GameConfig struct {
	Level     string `toml:"level"`
	Character string `toml:"character"` // prefab file name
	Debug     bool   `toml:"debug"`
	HotReload bool   `toml:"hot_reload"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Run and Gun",
			Width:  1280,
			Height: 720,
		},
		Simulation: SimulationConfig{
			Tick:         0.01,
			MaxFrameTime: 0.25,
			RespawnDelay: 1,
		},
		Game: GameConfig{
			Level:     "stage1",
			Character: "character.yaml",
			HotReload: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Simulation.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalidConfig, c.Simulation.Tick)
	case c.Simulation.MaxFrameTime < c.Simulation.Tick:
		return fmt.Errorf("%w: max_frame_time %v is shorter than one tick", ErrInvalidConfig, c.Simulation.MaxFrameTime)
	case c.Simulation.RespawnDelay < 0:
		return fmt.Errorf("%w: respawn_delay must not be negative", ErrInvalidConfig)
	case c.Game.Level == "":
		return fmt.Errorf("%w: game.level is empty", ErrInvalidConfig)
	case c.Logging.Format != "json" && c.Logging.Format != "console":
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}
