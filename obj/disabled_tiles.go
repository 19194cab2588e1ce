package obj

import (
	"sort"

	"github.com/milk9111/runandgun/common"
	"github.com/milk9111/runandgun/levels"
)

// DisabledTiles is the set of one-way cells a character is dropping through.
type DisabledTiles struct {
	cells map[levels.TileCoord]struct{}
}

func (d *DisabledTiles) Add(c levels.TileCoord) {
	if d.cells == nil {
		d.cells = make(map[levels.TileCoord]struct{})
	}
	d.cells[c] = struct{}{}
}

func (d *DisabledTiles) Has(c levels.TileCoord) bool {
	_, ok := d.cells[c]
	return ok
}

func (d *DisabledTiles) Len() int {
	return len(d.cells)
}

// Clear empties the set without releasing its storage.
func (d *DisabledTiles) Clear() {
	clear(d.cells)
}

// Cells returns the disabled cells sorted by row then column.
func (d *DisabledTiles) Cells() []levels.TileCoord {
	out := make([]levels.TileCoord, 0, len(d.cells))
	for c := range d.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Restore re-enables every cell the hitbox has vertically separated from:
// its top is below the cell's bottom edge, or its bottom is back above the
// cell's top edge, by at least clearance. It returns the number restored.
func (d *DisabledTiles) Restore(hb common.Rect, g *levels.Grid, clearance float64) int {
	restored := 0
	for c := range d.cells {
		top := g.RowTop(c.Row)
		bottom := top + g.TileHeight()
		if hb.Top() >= bottom+clearance || hb.Bottom() <= top-clearance {
			delete(d.cells, c)
			restored++
		}
	}
	return restored
}
