package entity

import (
	"fmt"

	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/levels"
)

// BuildLevel replaces the current tilemap entity with one for lvl.
func BuildLevel(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("level: %w", levels.ErrInvalidLevel)
	}
	for {
		old, _, ok := ecs.First(w, component.TilemapComponent.Kind())
		if !ok {
			break
		}
		ecs.DestroyEntity(w, old)
	}

	grid := lvl.Grid()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TilemapComponent.Kind(), &component.Tilemap{Name: lvl.Name, Grid: grid}); err != nil {
		return 0, fmt.Errorf("level: add tilemap: %w", err)
	}
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  float64(grid.Cols()) * grid.TileWidth(),
		Height: grid.Bottom(),
	}); err != nil {
		return 0, fmt.Errorf("level: add bounds: %w", err)
	}
	if err := ecs.Add(w, e, component.SpawnPointComponent.Kind(), &component.SpawnPoint{X: lvl.SpawnX, Y: lvl.SpawnY}); err != nil {
		return 0, fmt.Errorf("level: add spawn point: %w", err)
	}
	return e, nil
}
