package obj

import (
	"github.com/milk9111/runandgun/common"
	"github.com/milk9111/runandgun/levels"
)

const (
	// footProbe is how far below the hitbox the floor is sampled.
	footProbe = 1.0
	// restInset keeps a character resting on the grid bottom inside the grid.
	restInset = 0.1
)

// Contact summarizes what Resolve did in one tick.
type Contact struct {
	Ceiling       bool
	Landed        bool
	Grounded      bool
	Ground        levels.TileCoord
	Wall          bool
	EnteredLiquid bool
	ExitedLiquid  bool
	// FatalFall is set when the character left the bottom of the grid over an
	// empty cell while vulnerable. The caller applies the hit.
	FatalFall bool
}

// Resolve corrects the character against g after integration and recomputes
// OnGround and InLiquid. An empty grid never collides.
func Resolve(c *Character, g *levels.Grid) Contact {
	var contact Contact
	if g.Empty() {
		c.OnGround = false
		c.InLiquid = false
		return contact
	}

	c.resolveCeiling(g, &contact)
	c.resolveFloor(g, &contact)
	if !c.InLiquid {
		c.resolveWalls(g, &contact)
	}
	c.resolveLiquidExit(g, &contact)
	if c.tuning.SnapOutOfLiquidBottom {
		c.resolveLiquidBottom(g, &contact)
	}
	c.resolveGridBottom(g, &contact)
	return contact
}

// footSamples are the x positions probed under the hitbox in priority order.
func footSamples(hb common.Rect) [3]float64 {
	return [3]float64{
		hb.CenterX(),
		hb.X + hb.Width*0.25,
		hb.X + hb.Width*0.75,
	}
}

func (c *Character) resolveCeiling(g *levels.Grid, contact *Contact) {
	if c.Velocity.Y >= 0 || c.InLiquid {
		return
	}
	hb := c.WorldHitbox()
	cell := g.CellAt(hb.CenterX(), hb.Top())
	if g.KindAt(cell) != levels.TileSolid {
		return
	}
	c.setHitboxTop(g.RowTop(cell.Row + 1))
	c.Velocity.Y = c.tuning.CeilingBump
	contact.Ceiling = true
}

func (c *Character) resolveFloor(g *levels.Grid, contact *Contact) {
	if c.Velocity.Y < 0 && !c.OnGround {
		return
	}

	hb := c.WorldHitbox()
	feetY := hb.Bottom() + footProbe
	var (
		liquid    levels.TileCoord
		hasLiquid bool
	)
	for _, x := range footSamples(hb) {
		cell := g.CellAt(x, feetY)
		kind := g.KindAt(cell)
		switch {
		case kind == levels.TileOneWay && c.disabled.Has(cell):
			continue
		case kind.Supports():
			c.land(g, cell, contact)
			return
		case kind == levels.TileLiquidSurface && !hasLiquid:
			liquid, hasLiquid = cell, true
		}
	}

	c.OnGround = false
	if hasLiquid {
		c.enterLiquid(g, liquid, contact)
	}
}

func (c *Character) land(g *levels.Grid, cell levels.TileCoord, contact *Contact) {
	c.setHitboxBottom(g.RowTop(cell.Row))
	c.Velocity.Y = 0
	if !c.OnGround {
		contact.Landed = true
	}
	c.OnGround = true
	if c.InLiquid {
		c.InLiquid = false
		contact.ExitedLiquid = true
	}
	contact.Grounded = true
	contact.Ground = cell
}

func (c *Character) enterLiquid(g *levels.Grid, cell levels.TileCoord, contact *Contact) {
	if c.InLiquid {
		return
	}
	c.InLiquid = true
	c.LiquidSurfaceY = g.RowTop(cell.Row)
	c.Velocity.Y *= c.tuning.LiquidEntryDamping
	h := c.shape().Box.Height
	c.setHitboxTop(c.LiquidSurfaceY - h*(1-c.tuning.LiquidImmersion))
	contact.EnteredLiquid = true
}

func (c *Character) resolveWalls(g *levels.Grid, contact *Contact) {
	vx := c.Velocity.X
	if vx == 0 {
		return
	}
	hb := c.WorldHitbox()
	edge := hb.Left()
	if vx > 0 {
		edge = hb.Right()
	}
	for _, y := range [3]float64{hb.Top() + 1, hb.CenterY(), hb.Bottom() - 1} {
		cell := g.CellAt(edge, y)
		if g.KindAt(cell) != levels.TileSolid {
			continue
		}
		box := c.shape().Box
		if vx > 0 {
			c.Position.X = g.ColLeft(cell.Col) - box.X - box.Width
		} else {
			c.Position.X = g.ColLeft(cell.Col+1) - box.X
		}
		c.Velocity.X = 0
		contact.Wall = true
		return
	}
}

func (c *Character) resolveLiquidExit(g *levels.Grid, contact *Contact) {
	if !c.InLiquid || contact.EnteredLiquid || c.Velocity.Y >= 0 {
		return
	}
	hb := c.WorldHitbox()
	if hb.Top() >= c.LiquidSurfaceY-common.Epsilon {
		return
	}
	if g.TileAt(hb.CenterX(), c.LiquidSurfaceY-1) != levels.TileEmpty {
		return
	}
	c.InLiquid = false
	contact.ExitedLiquid = true
}

// resolveLiquidBottom lifts a swimmer in the last row onto a one-way tile
// under its center.
func (c *Character) resolveLiquidBottom(g *levels.Grid, contact *Contact) {
	if !c.InLiquid {
		return
	}
	last := g.Rows() - 1
	hb := c.WorldHitbox()
	if g.CellAt(hb.CenterX(), hb.Bottom()+footProbe).Row < last {
		return
	}
	cell := levels.TileCoord{Row: last, Col: g.CellAt(hb.CenterX(), 0).Col}
	if g.KindAt(cell) != levels.TileOneWay || c.disabled.Has(cell) {
		return
	}
	c.land(g, cell, contact)
}

func (c *Character) resolveGridBottom(g *levels.Grid, contact *Contact) {
	hb := c.WorldHitbox()
	bottom := g.Bottom()
	if hb.Bottom() < bottom-c.tuning.GridBottomTolerance {
		return
	}

	last := g.Rows() - 1
	cell := levels.TileCoord{Row: last, Col: g.CellAt(hb.CenterX(), 0).Col}
	kind := g.KindAt(cell)
	switch {
	case kind == levels.TileLiquidSurface:
		c.setHitboxBottom(bottom - restInset)
		c.Velocity.Y = 0
		c.OnGround = false
		if !c.InLiquid {
			c.InLiquid = true
			c.LiquidSurfaceY = g.RowTop(last)
			contact.EnteredLiquid = true
		}
	case kind.Supports() && !(kind == levels.TileOneWay && c.disabled.Has(cell)):
		c.land(g, cell, contact)
	case c.invulnerable:
		c.setHitboxBottom(bottom - restInset)
		c.Velocity.Y = 0
		c.OnGround = true
		c.InLiquid = false
	default:
		contact.FatalFall = true
	}
}

func (c *Character) setHitboxBottom(y float64) {
	box := c.shape().Box
	c.Position.Y = y - box.Y - box.Height
}

func (c *Character) setHitboxTop(y float64) {
	c.Position.Y = y - c.shape().Box.Y
}
