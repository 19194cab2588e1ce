package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/ecs/entity"
	"github.com/milk9111/runandgun/levels"
	"github.com/milk9111/runandgun/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDT = 0.01

type harness struct {
	w     *ecs.World
	sched *ecs.Scheduler
	e     ecs.Entity
	c     *obj.Character
	in    *component.Input
	r     *component.Respawn
	seen  []ecs.Event
}

func floorLevel() *levels.Level {
	return &levels.Level{
		Name:       "floor",
		TileWidth:  96,
		TileHeight: 96,
		SpawnX:     100,
		SpawnY:     0,
		Tiles: [][]int{
			{0, 0, 0},
			{0, 0, 0},
			{2, 2, 2},
		},
	}
}

func newHarness(t *testing.T, lvl *levels.Level, lives int, respawnDelay float64) *harness {
	t.Helper()
	w := ecs.NewWorld()
	_, err := entity.BuildLevel(w, lvl)
	require.NoError(t, err)

	tuning := obj.DefaultTuning()
	tuning.Lives = lives
	e, err := entity.BuildPlayer(w, tuning, lvl.SpawnX, lvl.SpawnY, entity.PlayerOptions{Spec: "test", RespawnDelay: respawnDelay})
	require.NoError(t, err)

	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	require.True(t, ok)
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	require.True(t, ok)
	r, ok := ecs.Get(w, e, component.RespawnComponent.Kind())
	require.True(t, ok)

	sched := ecs.NewScheduler(
		NewInputApplySystem(),
		NewCharacterSystem(testDT),
		NewFireSystem(),
		NewBulletSystem(testDT),
		NewRespawnSystem(testDT, nil),
	)
	return &harness{w: w, sched: sched, e: e, c: p.Character, in: in, r: r}
}

func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.sched.Update(h.w)
		h.seen = append(h.seen, h.w.Events().Drain()...)
	}
}

func (h *harness) eventsOf(typ string) []ecs.Event {
	var out []ecs.Event
	for _, ev := range h.seen {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func (h *harness) bullets() int {
	n := 0
	ecs.ForEach(h.w, component.BulletComponent.Kind(), func(ecs.Entity, *component.Bullet) { n++ })
	return n
}

func TestInputCommandsAppliedOnce(t *testing.T) {
	h := newHarness(t, floorLevel(), 3, 1)
	h.step(100)
	require.True(t, h.c.OnGround)

	h.in.Commands = append(h.in.Commands, obj.CommandJump)
	h.step(1)
	assert.Empty(t, h.in.Commands)
	assert.Equal(t, obj.StateJumping, h.c.State())
	assert.Less(t, h.c.Velocity.Y, 0.0)

	changes := h.eventsOf(EventStateChanged)
	require.NotEmpty(t, changes)
	last := changes[len(changes)-1].Data.(StateChange)
	assert.Equal(t, h.e, last.Entity)
	assert.Equal(t, obj.StateJumping, last.To)
}

func TestHeldInputMovesCharacter(t *testing.T) {
	h := newHarness(t, floorLevel(), 3, 1)
	h.step(100)
	x := h.c.Position.X

	h.in.Held = obj.Input{MoveX: -1}
	h.step(10)
	assert.Less(t, h.c.Position.X, x)
	assert.Equal(t, obj.FacingLeft, h.c.Facing)
	assert.Equal(t, obj.StateRunning, h.c.State())
}

func TestFireSpawnsBulletsUntilTheyLeaveTheLevel(t *testing.T) {
	h := newHarness(t, floorLevel(), 3, 1)
	h.step(100)

	h.in.Held = obj.Input{Fire: true}
	h.step(1)
	require.Equal(t, 1, h.bullets())

	shots := h.eventsOf(EventShotFired)
	require.Len(t, shots, 1)
	fired := shots[0].Data.(ShotFired)
	assert.Equal(t, h.e, fired.Shooter)
	assert.True(t, ecs.IsAlive(h.w, fired.Bullet))
	assert.Greater(t, fired.Shot.Velocity.X, 0.0)

	h.step(5)
	assert.Equal(t, 1, h.bullets(), "cooldown holds the second shot")

	h.in.Held = obj.Input{}
	h.step(60)
	assert.Equal(t, 0, h.bullets(), "bullets past the level edge are removed")
	assert.False(t, ecs.IsAlive(h.w, fired.Bullet))
}

func TestBulletExpiresWithoutBounds(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	b := obj.NewBullet(obj.Shot{Velocity: cp.Vector{X: 100}}, 0.05)
	require.NoError(t, ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{Projectile: b}))

	s := NewBulletSystem(testDT)
	for i := 0; i < 4; i++ {
		s.Update(w)
	}
	assert.True(t, ecs.IsAlive(w, e))
	for i := 0; i < 3; i++ {
		s.Update(w)
	}
	assert.False(t, ecs.IsAlive(w, e))
}

func TestRespawnAfterDelay(t *testing.T) {
	h := newHarness(t, floorLevel(), 2, 0.5)
	h.step(100)

	require.True(t, h.c.ApplyHit(false))
	for i := 0; i < 1000 && !h.c.IsDead(); i++ {
		h.step(1)
	}
	require.True(t, h.c.IsDead())
	require.Len(t, h.eventsOf(EventPlayerDead), 1)

	h.step(40)
	assert.True(t, h.c.IsDead(), "still waiting out the delay")
	assert.True(t, h.r.Pending)

	waited := 0
	for ; waited < 20 && h.c.IsDead(); waited++ {
		h.step(1)
	}
	require.False(t, h.c.IsDead())
	assert.LessOrEqual(t, waited, 11)
	assert.True(t, h.c.IsInvulnerable())
	assert.Equal(t, cp.Vector{X: 100, Y: 0}, h.c.Position)

	respawned := h.eventsOf(EventPlayerRespawned)
	require.Len(t, respawned, 1)
	assert.Equal(t, 1, respawned[0].Data.(LifeEvent).Lives)
	assert.Empty(t, h.eventsOf(EventGameOver))
}

func TestFatalFallEndsGameWithoutLives(t *testing.T) {
	pit := &levels.Level{
		Name:       "pit",
		TileWidth:  96,
		TileHeight: 96,
		SpawnX:     100,
		Tiles:      [][]int{{0, 0}, {0, 0}, {0, 0}},
	}
	h := newHarness(t, pit, 1, 0.1)

	for i := 0; i < 2000 && !h.r.GameOver; i++ {
		h.step(1)
	}
	require.True(t, h.r.GameOver)

	dying := h.eventsOf(EventPlayerDying)
	require.Len(t, dying, 1)
	assert.Equal(t, 0, dying[0].Data.(LifeEvent).Lives)
	assert.Len(t, h.eventsOf(EventPlayerDead), 1)
	assert.Len(t, h.eventsOf(EventGameOver), 1)

	h.step(50)
	assert.Len(t, h.eventsOf(EventGameOver), 1, "game over is reported once")

	entity.ResetGame(h.w)
	assert.False(t, h.r.GameOver)
	assert.Equal(t, 1, h.c.LivesRemaining())
	assert.Equal(t, obj.StateFalling, h.c.State())
}

func TestCharacterSystemReadsCurrentTilemap(t *testing.T) {
	h := newHarness(t, floorLevel(), 3, 1)
	h.step(100)
	require.True(t, h.c.OnGround)

	open := floorLevel()
	open.Tiles = [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	_, err := entity.BuildLevel(h.w, open)
	require.NoError(t, err)

	h.step(1)
	assert.False(t, h.c.OnGround, "the swapped grid has no floor")
}

func TestCameraFollowsAndClamps(t *testing.T) {
	w := ecs.NewWorld()
	lvl := floorLevel()
	lvl.Tiles = [][]int{make([]int, 40), make([]int, 40), make([]int, 40)}
	_, err := entity.BuildLevel(w, lvl)
	require.NoError(t, err)

	cam := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Width: 400, Height: 200, Smoothness: 1, LookOffset: 50}))

	_, err = entity.BuildPlayer(w, obj.DefaultTuning(), 1000, 100, entity.PlayerOptions{})
	require.NoError(t, err)
	_, p, _ := ecs.First(w, component.PlayerComponent.Kind())

	cs := NewCameraSystem()
	cs.Update(w)
	c, _ := ecs.Get(w, cam, component.CameraComponent.Kind())
	frame := p.Character.FrameRect()
	assert.InDelta(t, frame.CenterX()+50-200, c.X, 1e-9)
	assert.InDelta(t, frame.CenterY()-100, c.Y, 1e-9)

	p.Character.Position = cp.Vector{X: 0, Y: 0}
	cs.Update(w)
	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 0.0, c.Y)

	p.Character.Position = cp.Vector{X: 5000, Y: 5000}
	cs.Update(w)
	assert.InDelta(t, 40*96-400, c.X, 1e-9)
	assert.InDelta(t, 3*96-200, c.Y, 1e-9)
}
