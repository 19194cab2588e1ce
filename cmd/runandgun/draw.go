package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/runandgun/common"
	"github.com/milk9111/runandgun/ecs"
	"github.com/milk9111/runandgun/ecs/component"
	"github.com/milk9111/runandgun/levels"
	"golang.org/x/image/colornames"
)

const debugLineHeight = 16

var tileColors = map[levels.TileKind]color.Color{
	levels.TileOneWay:        colornames.Olivedrab,
	levels.TileSolid:         colornames.Saddlebrown,
	levels.TileLiquidSurface: colornames.Steelblue,
}

func drawWorld(screen *ebiten.Image, w *ecs.World, cam component.Camera, debug bool) {
	screen.Fill(colornames.Midnightblue)

	if _, tm, ok := ecs.First(w, component.TilemapComponent.Kind()); ok && tm.Grid != nil {
		drawTiles(screen, tm.Grid, cam)
	}

	ecs.ForEach(w, component.BulletComponent.Kind(), func(_ ecs.Entity, b *component.Bullet) {
		if b.Projectile != nil && b.Projectile.Active {
			fillRect(screen, b.Projectile.Rect(), cam, colornames.Gold)
		}
	})

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		c := p.Character
		if c == nil {
			return
		}
		if c.Visible() {
			fillRect(screen, c.FrameRect(), cam, colornames.Indianred)
		}
		if !debug {
			return
		}
		strokeRect(screen, c.WorldHitbox(), cam, colornames.Lime)
		if _, tm, ok := ecs.First(w, component.TilemapComponent.Kind()); ok {
			for _, cell := range c.DisabledTiles() {
				strokeRect(screen, cellRect(tm.Grid, cell), cam, colornames.Magenta)
			}
		}
		frame := c.FrameRect()
		sheet, col := c.SpriteFrame()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %s[%d]", c.State(), sheet, col),
			int(frame.X-cam.X), int(frame.Y-cam.Y)-debugLineHeight)
	})
}

func drawTiles(screen *ebiten.Image, g *levels.Grid, cam component.Camera) {
	view := common.Rect{X: cam.X, Y: cam.Y, Width: cam.Width, Height: cam.Height}
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			coord := levels.TileCoord{Row: row, Col: col}
			kind := g.KindAt(coord)
			clr, ok := tileColors[kind]
			if !ok {
				continue
			}
			cell := cellRect(g, coord)
			if !view.Intersects(cell) {
				continue
			}
			if kind == levels.TileOneWay {
				cell.Height /= 4
			}
			fillRect(screen, cell, cam, clr)
		}
	}
}

func cellRect(g *levels.Grid, c levels.TileCoord) common.Rect {
	x, y, w, h := g.CellBounds(c)
	return common.Rect{X: x, Y: y, Width: w, Height: h}
}

func drawHUD(screen *ebiten.Image, w *ecs.World, player ecs.Entity, debug bool) {
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok || p.Character == nil {
		return
	}
	c := p.Character
	drawDebugLine(screen, 0, fmt.Sprintf("lives: %d", c.LivesRemaining()))
	if debug {
		drawDebugLine(screen, 1, fmt.Sprintf("state: %s  ground: %v  liquid: %v  facing: %s",
			c.State(), c.OnGround, c.InLiquid, c.Facing))
		drawDebugLine(screen, 2, fmt.Sprintf("pos: (%.1f, %.1f)  vel: (%.1f, %.1f)",
			c.Position.X, c.Position.Y, c.Velocity.X, c.Velocity.Y))
	}
}

func drawDebugLine(screen *ebiten.Image, line int, msg string) {
	ebitenutil.DebugPrintAt(screen, msg, 4, 4+line*debugLineHeight)
}

func fillRect(screen *ebiten.Image, r common.Rect, cam component.Camera, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X-cam.X), float32(r.Y-cam.Y), float32(r.Width), float32(r.Height), clr, false)
}

func strokeRect(screen *ebiten.Image, r common.Rect, cam component.Camera, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X-cam.X), float32(r.Y-cam.Y), float32(r.Width), float32(r.Height), 1, clr, false)
}
