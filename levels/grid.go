package levels

import "math"

// TileKind classifies a grid cell for collision.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileOneWay
	TileSolid
	TileLiquidSurface
)

func (k TileKind) String() string {
	switch k {
	case TileOneWay:
		return "one_way"
	case TileSolid:
		return "solid"
	case TileLiquidSurface:
		return "liquid"
	default:
		return "empty"
	}
}

// Supports reports whether a character can stand on the tile.
func (k TileKind) Supports() bool {
	return k == TileOneWay || k == TileSolid
}

// KindOf maps a raw tile value to its category. Unknown values are empty.
func KindOf(v int) TileKind {
	switch v {
	case 1:
		return TileOneWay
	case 2:
		return TileSolid
	case 3:
		return TileLiquidSurface
	default:
		return TileEmpty
	}
}

// TileCoord addresses a single grid cell.
type TileCoord struct {
	Row, Col int
}

// Grid is an immutable tile map. Rows may be ragged; missing cells are empty.
type Grid struct {
	rows  [][]int
	tileW float64
	tileH float64
}

// NewGrid copies rows so later changes by the caller do not leak into the grid.
// Non-positive tile sizes fall back to the default tile size.
func NewGrid(rows [][]int, tileW, tileH float64) *Grid {
	if tileW <= 0 {
		tileW = defaultTileSize
	}
	if tileH <= 0 {
		tileH = defaultTileSize
	}
	copied := make([][]int, len(rows))
	for i, row := range rows {
		copied[i] = append([]int(nil), row...)
	}
	return &Grid{rows: copied, tileW: tileW, tileH: tileH}
}

// Empty reports whether the grid has no cells. A nil grid is empty.
func (g *Grid) Empty() bool {
	if g == nil {
		return true
	}
	for _, row := range g.rows {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// Cols returns the width of the widest row.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, row := range g.rows {
		n = max(n, len(row))
	}
	return n
}

func (g *Grid) TileWidth() float64 {
	if g == nil {
		return defaultTileSize
	}
	return g.tileW
}

func (g *Grid) TileHeight() float64 {
	if g == nil {
		return defaultTileSize
	}
	return g.tileH
}

// Value returns the raw value at (row, col), or 0 outside the grid.
func (g *Grid) Value(row, col int) int {
	if g == nil || row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return 0
	}
	return g.rows[row][col]
}

func (g *Grid) KindAt(c TileCoord) TileKind {
	return KindOf(g.Value(c.Row, c.Col))
}

// CellAt returns the cell containing the world point (x, y).
func (g *Grid) CellAt(x, y float64) TileCoord {
	return TileCoord{
		Row: int(math.Floor(y / g.TileHeight())),
		Col: int(math.Floor(x / g.TileWidth())),
	}
}

// TileAt classifies the cell containing the world point (x, y).
func (g *Grid) TileAt(x, y float64) TileKind {
	return g.KindAt(g.CellAt(x, y))
}

// Bottom is the world Y of the last row's bottom edge.
func (g *Grid) Bottom() float64 {
	return float64(g.Rows()) * g.TileHeight()
}

// RowTop is the world Y of the top edge of row.
func (g *Grid) RowTop(row int) float64 {
	return float64(row) * g.TileHeight()
}

// ColLeft is the world X of the left edge of col.
func (g *Grid) ColLeft(col int) float64 {
	return float64(col) * g.TileWidth()
}

// CellBounds returns the world rectangle covered by c as (x, y, w, h).
func (g *Grid) CellBounds(c TileCoord) (x, y, w, h float64) {
	return g.ColLeft(c.Col), g.RowTop(c.Row), g.TileWidth(), g.TileHeight()
}
