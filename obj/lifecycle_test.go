package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/runandgun/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runUntilDead(t *testing.T, c *Character, g *levels.Grid) {
	t.Helper()
	for i := 0; i < 1000 && !c.IsDead(); i++ {
		c.Update(testDT, g)
	}
	require.True(t, c.IsDead())
}

func TestFatalFallWithLastLife(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Lives = 1
	c, err := NewCharacter(cp.Vector{}, tuning)
	require.NoError(t, err)

	pit := levels.NewGrid([][]int{{0, 0}, {0, 0}, {0, 0}}, 96, 96)
	for i := 0; i < 500 && c.State() != StateDying; i++ {
		c.Update(testDT, pit)
	}
	require.Equal(t, StateDying, c.State())
	assert.Equal(t, 0, c.LivesRemaining())
	assert.Equal(t, cp.Vector{}, c.Velocity)

	y := c.Position.Y
	step(c, pit, 10)
	assert.Equal(t, y, c.Position.Y, "dying characters do not move")

	runUntilDead(t, c, pit)
	assert.False(t, c.Visible())
	assert.False(t, c.Respawn(100, 300), "no lives left to respawn with")
}

func TestInvulnerabilityGatesHits(t *testing.T) {
	c, g := groundedCharacter(t)
	start := c.LivesRemaining()

	require.True(t, c.ApplyHit(false))
	assert.Equal(t, start-1, c.LivesRemaining())
	assert.False(t, c.ApplyHit(false), "hits while dying are ignored")
	assert.Equal(t, start-1, c.LivesRemaining())

	runUntilDead(t, c, g)
	assert.False(t, c.ApplyHit(false), "hits while dead are ignored")

	require.True(t, c.Respawn(96, 0))
	assert.Equal(t, StateFalling, c.State())
	assert.Equal(t, cp.Vector{X: 96, Y: 0}, c.Position)
	assert.Equal(t, FacingRight, c.Facing)
	assert.True(t, c.IsInvulnerable())
	assert.False(t, c.Respawn(96, 0), "respawn only applies to dead characters")

	assert.False(t, c.ApplyHit(false))
	assert.Equal(t, start-1, c.LivesRemaining())

	window := int(c.Tuning().InvulnerableDuration/testDT) + 2
	step(c, g, window)
	assert.False(t, c.IsInvulnerable())
	assert.True(t, c.Visible())

	assert.True(t, c.ApplyHit(false))
	assert.Equal(t, start-2, c.LivesRemaining())
}

func TestInvulnerableFallIsClamped(t *testing.T) {
	c := newTestCharacter(t, 0, 0)
	c.invulnerable = true
	c.invulnerableTimer = 10

	pit := levels.NewGrid([][]int{{0}, {0}}, 96, 96)
	step(c, pit, 200)

	assert.NotEqual(t, StateDying, c.State())
	assert.Equal(t, c.Tuning().Lives, c.LivesRemaining())
	assert.LessOrEqual(t, c.WorldHitbox().Bottom(), pit.Bottom())
	assert.Greater(t, c.WorldHitbox().Bottom(), pit.Bottom()-1)
}

func TestApplyHitWhileProneRestoresStandingHitbox(t *testing.T) {
	c, g := groundedCharacter(t)
	c.Queue(CommandToggleProne)
	c.Update(testDT, g)
	require.Equal(t, HitboxProne, c.ActiveHitbox())
	bottom := c.WorldHitbox().Bottom()

	require.True(t, c.ApplyHit(false))
	assert.False(t, c.IsProne())
	assert.Equal(t, HitboxStanding, c.ActiveHitbox())
	assert.InDelta(t, bottom, c.WorldHitbox().Bottom(), 1e-9)
}

func TestResetForNewGame(t *testing.T) {
	c, g := groundedCharacter(t)
	require.True(t, c.ApplyHit(true))
	runUntilDead(t, c, g)

	c.ResetForNewGame(50, 60)
	assert.Equal(t, c.Tuning().Lives, c.LivesRemaining())
	assert.Equal(t, StateFalling, c.State())
	assert.Equal(t, cp.Vector{X: 50, Y: 60}, c.Position)
	assert.False(t, c.IsInvulnerable())
	assert.True(t, c.Visible())
	assert.Empty(t, c.DisabledTiles())

	_, ok := c.TryFire()
	assert.True(t, ok)
}

func TestBlink(t *testing.T) {
	cases := []struct {
		t    float64
		want bool
	}{
		{0, true},
		{0.05, true},
		{0.15, false},
		{0.25, true},
		{0.35, false},
	}
	for _, tc := range cases {
		if got := blinkOn(tc.t, 0.1); got != tc.want {
			t.Fatalf("blinkOn(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}
