package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/runandgun/common"
)

//go:embed *.json
var LevelsFS embed.FS

const defaultTileSize = common.DefaultTileSize

var ErrInvalidLevel = errors.New("levels: invalid level")

type Level struct {
	Name       string  `json:"name"`
	TileWidth  float64 `json:"tile_width"`
	TileHeight float64 `json:"tile_height"`
	Tiles      [][]int `json:"tiles"`
	SpawnX     float64 `json:"spawn_x"`
	SpawnY     float64 `json:"spawn_y"`
}

// Grid builds the collision grid for the level.
func (l *Level) Grid() *Grid {
	return NewGrid(l.Tiles, l.TileWidth, l.TileHeight)
}

func (l *Level) validate() error {
	if l.TileWidth < 0 || l.TileHeight < 0 {
		return fmt.Errorf("%w: negative tile size %vx%v", ErrInvalidLevel, l.TileWidth, l.TileHeight)
	}
	if len(l.Tiles) == 0 {
		return fmt.Errorf("%w: no tiles", ErrInvalidLevel)
	}
	return nil
}

func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, cleanLevelPath(name))
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return parseLevel(name, data)
}

// Load reads a level from levels/<name> on disk when present, otherwise from
// the embedded set.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return parseLevel(name, data)
	}
	return LoadLevelFromFS(LevelsFS, clean)
}

func parseLevel(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := lvl.validate(); err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	if lvl.TileWidth == 0 {
		lvl.TileWidth = defaultTileSize
	}
	if lvl.TileHeight == 0 {
		lvl.TileHeight = defaultTileSize
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(name), ".json")
	}
	return &lvl, nil
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}
