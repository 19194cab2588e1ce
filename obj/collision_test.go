package obj

import (
	"testing"

	"github.com/milk9111/runandgun/common"
	"github.com/milk9111/runandgun/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeHitbox moves c so its standing hitbox has its top-left at (x, y).
func placeHitbox(c *Character, x, y float64) {
	box := c.shape().Box
	c.Position.X = x - box.X
	c.Position.Y = y - box.Y
}

func TestResolveCeilingBump(t *testing.T) {
	g := levels.NewGrid([][]int{
		{2, 2},
		{0, 0},
		{2, 2},
	}, 96, 96)
	c := newTestCharacter(t, 0, 0)
	placeHitbox(c, 10, 90)
	c.Velocity.Y = -200

	contact := Resolve(c, g)
	assert.True(t, contact.Ceiling)
	assert.InDelta(t, 96, c.WorldHitbox().Top(), 1e-9)
	assert.Equal(t, c.Tuning().CeilingBump, c.Velocity.Y)
}

func TestResolveOneWayIgnoredFromBelow(t *testing.T) {
	g := levels.NewGrid([][]int{
		{1, 1},
		{0, 0},
		{2, 2},
	}, 96, 96)
	c := newTestCharacter(t, 0, 0)
	placeHitbox(c, 10, 90)
	c.Velocity.Y = -200

	contact := Resolve(c, g)
	assert.False(t, contact.Ceiling)
	assert.Equal(t, -200.0, c.Velocity.Y)
	assert.False(t, c.OnGround)
}

func TestResolveFloorPriority(t *testing.T) {
	cases := []struct {
		name   string
		row    []int
		ground bool
		liquid bool
	}{
		{"center_solid", []int{0, 2, 0}, true, false},
		{"edge_one_way", []int{1, 0, 0}, true, false},
		{"support_beats_liquid", []int{3, 3, 1}, true, false},
		{"liquid", []int{0, 3, 0}, false, true},
		{"empty", []int{0, 0, 0}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := levels.NewGrid([][]int{{0, 0, 0}, tc.row}, 96, 96)
			c := newTestCharacter(t, 0, 0)
			// wide hitbox whose three foot samples land in columns 0, 1 and 2
			tuning := c.Tuning()
			tuning.Shapes[HitboxStanding] = HitboxShape{
				FrameWidth:  240,
				FrameHeight: 78,
				Box:         common.Rect{X: 0, Y: 4, Width: 240, Height: 70},
			}
			require.NoError(t, c.SetTuning(tuning))
			placeHitbox(c, 20, 96-70+2)
			c.Velocity.Y = 100

			contact := Resolve(c, g)
			assert.Equal(t, tc.ground, c.OnGround)
			assert.Equal(t, tc.ground, contact.Grounded)
			assert.Equal(t, tc.liquid, c.InLiquid)
			if tc.ground {
				assert.InDelta(t, 96, c.WorldHitbox().Bottom(), 1e-9)
				assert.Equal(t, 0.0, c.Velocity.Y)
			}
		})
	}
}

func TestResolveLiquidEntry(t *testing.T) {
	g := levels.NewGrid([][]int{{0}, {3}, {0}}, 96, 96)
	c := newTestCharacter(t, 0, 0)
	placeHitbox(c, 10, 96-70+3)
	c.Velocity.Y = 400

	contact := Resolve(c, g)
	require.True(t, contact.EnteredLiquid)
	assert.True(t, c.InLiquid)
	assert.False(t, c.OnGround)
	assert.InDelta(t, 96, c.LiquidSurfaceY, 1e-9)
	assert.InDelta(t, 400*c.Tuning().LiquidEntryDamping, c.Velocity.Y, 1e-9)
	assert.InDelta(t, 96-70*(1-c.Tuning().LiquidImmersion), c.WorldHitbox().Top(), 1e-9)
}

func TestResolveLiquidExitNeedsOpenSurface(t *testing.T) {
	cases := []struct {
		name  string
		above int
		exit  bool
	}{
		{"open", 0, true},
		{"covered", 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := levels.NewGrid([][]int{{tc.above}, {3}, {3}}, 96, 96)
			c := newTestCharacter(t, 0, 0)
			c.InLiquid = true
			c.LiquidSurfaceY = 96
			placeHitbox(c, 10, 90)
			c.Velocity.Y = -100

			contact := Resolve(c, g)
			assert.Equal(t, tc.exit, contact.ExitedLiquid)
			assert.Equal(t, !tc.exit, c.InLiquid)
		})
	}
}

func TestResolveLiquidBottomSnap(t *testing.T) {
	for _, snap := range []bool{true, false} {
		g := levels.NewGrid([][]int{{0, 0}, {3, 1}}, 96, 96)
		c := newTestCharacter(t, 0, 0)
		tuning := c.Tuning()
		tuning.SnapOutOfLiquidBottom = snap
		require.NoError(t, c.SetTuning(tuning))

		c.InLiquid = true
		c.LiquidSurfaceY = 96
		placeHitbox(c, 96+38, 96+10)
		c.Velocity.Y = -5

		Resolve(c, g)
		if snap {
			assert.True(t, c.OnGround)
			assert.False(t, c.InLiquid)
			assert.InDelta(t, 96, c.WorldHitbox().Bottom(), 1e-9)
		} else {
			assert.False(t, c.OnGround)
			assert.True(t, c.InLiquid)
		}
	}
}

func TestResolveGridBottom(t *testing.T) {
	cases := []struct {
		name   string
		last   int
		fatal  bool
		liquid bool
		ground bool
	}{
		{"empty_is_fatal", 0, true, false, false},
		{"liquid_rests", 3, false, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := levels.NewGrid([][]int{{0}, {tc.last}}, 96, 96)
			c := newTestCharacter(t, 0, 0)
			placeHitbox(c, 10, 2*96-70+3)
			c.Velocity.Y = -1

			contact := Resolve(c, g)
			assert.Equal(t, tc.fatal, contact.FatalFall)
			assert.Equal(t, tc.liquid, c.InLiquid)
			assert.Equal(t, tc.ground, c.OnGround)
			if tc.liquid {
				assert.InDelta(t, g.Bottom()-restInset, c.WorldHitbox().Bottom(), 1e-9)
			}
		})
	}
}

func TestDisabledTilesRestore(t *testing.T) {
	g := levels.NewGrid([][]int{{0}, {1}, {0}, {0}}, 96, 96)
	cell := levels.TileCoord{Row: 1, Col: 0}

	cases := []struct {
		name     string
		hb       common.Rect
		restored bool
	}{
		{"inside_tile", common.Rect{Y: 150, Width: 20, Height: 70}, false},
		{"top_at_tile_bottom", common.Rect{Y: 192, Width: 20, Height: 70}, false},
		{"top_past_clearance", common.Rect{Y: 193, Width: 20, Height: 70}, true},
		{"back_above", common.Rect{Y: 0, Width: 20, Height: 95}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d DisabledTiles
			d.Add(cell)
			n := d.Restore(tc.hb, g, 1)
			assert.Equal(t, tc.restored, n == 1)
			assert.Equal(t, !tc.restored, d.Has(cell))
		})
	}
}
