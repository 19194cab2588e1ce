package entity

import (
	"testing"

	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/levels"
	"github.com/milk9111/runandgun/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLevelReplacesTilemap(t *testing.T) {
	w := ecs.NewWorld()
	first, err := levels.Load("training")
	require.NoError(t, err)

	e1, err := BuildLevel(w, first)
	require.NoError(t, err)

	_, tm, ok := ecs.First(w, component.TilemapComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "training", tm.Name)
	assert.Equal(t, 20, tm.Grid.Cols())

	bounds, ok := ecs.Get(w, e1, component.LevelBoundsComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 20*96.0, bounds.Width)
	assert.Equal(t, 8*96.0, bounds.Height)

	spawn, ok := ecs.Get(w, e1, component.SpawnPointComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.SpawnPoint{X: first.SpawnX, Y: first.SpawnY}, *spawn)

	second, err := levels.Load("stage1")
	require.NoError(t, err)
	e2, err := BuildLevel(w, second)
	require.NoError(t, err)
	assert.False(t, ecs.IsAlive(w, e1))

	got, tm, ok := ecs.First(w, component.TilemapComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, e2, got)
	assert.Equal(t, "stage1", tm.Name)

	_, err = BuildLevel(w, nil)
	assert.ErrorIs(t, err, levels.ErrInvalidLevel)
}

func TestNewPlayerAtFromPrefab(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayerAt(w, 10, 20, PlayerOptions{Spec: "character.yaml", RespawnDelay: 1})
	require.NoError(t, err)

	assert.True(t, ecs.Has(w, e, component.PlayerTagComponent.Kind()))
	assert.True(t, ecs.Has(w, e, component.InputComponent.Kind()))

	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "character.yaml", p.Spec)
	assert.Equal(t, 10.0, p.Character.Position.X)
	assert.Equal(t, 20.0, p.Character.Position.Y)
	assert.Equal(t, obj.DefaultTuning(), p.Character.Tuning())

	r, ok := ecs.Get(w, e, component.RespawnComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 1.0, r.Delay)

	_, err = NewPlayerAt(w, 0, 0, PlayerOptions{Spec: "missing.yaml"})
	assert.Error(t, err)
}

func TestBuildPlayerRejectsBadTuning(t *testing.T) {
	w := ecs.NewWorld()
	tuning := obj.DefaultTuning()
	tuning.Gravity = 0

	_, err := BuildPlayer(w, tuning, 0, 0, PlayerOptions{})
	require.ErrorIs(t, err, obj.ErrInvalidTuning)
	assert.Empty(t, ecs.Entities(w))
}

func TestFailedComponentAddDestroysEntity(t *testing.T) {
	w := ecs.NewWorld()
	keep := ecs.CreateEntity(w)
	e := ecs.CreateEntity(w)

	ranAfter := false
	err := addAll(w, e,
		addStep("player tag", component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		addStep("input", component.ComponentKind[component.Input]{}, &component.Input{}),
		func(*ecs.World, ecs.Entity) error { ranAfter = true; return nil },
	)
	require.ErrorIs(t, err, component.ErrInvalidComponentKind)
	assert.Contains(t, err.Error(), "add input")
	assert.False(t, ranAfter, "steps stop at the first failure")
	assert.False(t, ecs.IsAlive(w, e))
	assert.False(t, ecs.Has(w, e, component.PlayerTagComponent.Kind()))
	assert.Equal(t, []ecs.Entity{keep}, ecs.Entities(w))

	_, err = BuildPlayer(w, obj.DefaultTuning(), 0, 0, PlayerOptions{Spec: "ok"})
	require.NoError(t, err)
	assert.Len(t, ecs.Entities(w), 2)
}

func TestReloadTuningOnlyTouchesMatchingSpec(t *testing.T) {
	w := ecs.NewWorld()
	a, err := BuildPlayer(w, obj.DefaultTuning(), 0, 0, PlayerOptions{Spec: "a.yaml"})
	require.NoError(t, err)
	b, err := BuildPlayer(w, obj.DefaultTuning(), 0, 0, PlayerOptions{Spec: "b.yaml"})
	require.NoError(t, err)

	tuning := obj.DefaultTuning()
	tuning.MoveSpeed = 123
	n, err := ReloadTuning(w, "a.yaml", tuning)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	pa, _ := ecs.Get(w, a, component.PlayerComponent.Kind())
	pb, _ := ecs.Get(w, b, component.PlayerComponent.Kind())
	assert.Equal(t, 123.0, pa.Character.Tuning().MoveSpeed)
	assert.Equal(t, obj.DefaultTuning().MoveSpeed, pb.Character.Tuning().MoveSpeed)

	tuning.Lives = 0
	_, err = ReloadTuning(w, "b.yaml", tuning)
	assert.ErrorIs(t, err, obj.ErrInvalidTuning)
}

func TestNewCamera(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCamera(w, 1280, 720)
	require.NoError(t, err)
	assert.True(t, ecs.Has(w, e, component.CameraTagComponent.Kind()))

	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 1280.0, cam.Width)
	assert.Equal(t, 0.15, cam.Smoothness)
	assert.Equal(t, 48.0, cam.LookOffset)
}
