package main

import (
	"testing"

	"github.com/milk9111/runandgun/config"
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/ecs/entity"
	"github.com/milk9111/runandgun/levels"
	"github.com/milk9111/runandgun/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMenuTestGame(t *testing.T) (*Game, *obj.Character) {
	t.Helper()
	w := ecs.NewWorld()
	lvl := &levels.Level{
		Name:       "menu",
		TileWidth:  96,
		TileHeight: 96,
		SpawnX:     100,
		Tiles:      [][]int{{0, 0}, {2, 2}},
	}
	_, err := entity.BuildLevel(w, lvl)
	require.NoError(t, err)
	player, err := entity.BuildPlayer(w, obj.DefaultTuning(), lvl.SpawnX, lvl.SpawnY, entity.PlayerOptions{Spec: "test"})
	require.NoError(t, err)
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	require.True(t, ok)

	return &Game{cfg: config.Defaults(), log: zap.NewNop(), world: w, player: player}, p.Character
}

func clickButton(t *testing.T, buttons []menuButton, label string) {
	t.Helper()
	for _, b := range buttons {
		if b.label == label {
			b.onClick()
			return
		}
	}
	t.Fatalf("no %q button", label)
}

func TestGameOverRestart(t *testing.T) {
	g, c := newMenuTestGame(t)
	require.True(t, c.ApplyHit(true))
	require.Less(t, c.LivesRemaining(), c.Tuning().Lives)
	g.gameOver = true
	g.accumulator = 0.5

	clickButton(t, gameOverButtons(g), "Restart")

	assert.False(t, g.gameOver)
	assert.Zero(t, g.accumulator)
	assert.Equal(t, c.Tuning().Lives, c.LivesRemaining())
	assert.Equal(t, obj.StateFalling, c.State())
	assert.False(t, g.quit)
}

func TestPauseButtons(t *testing.T) {
	g, _ := newMenuTestGame(t)
	g.paused = true

	clickButton(t, pauseButtons(g), "Resume")
	assert.False(t, g.paused)
	assert.False(t, g.quit)

	clickButton(t, pauseButtons(g), "Quit")
	assert.True(t, g.quit)
}
