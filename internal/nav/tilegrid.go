package nav

// GridExtent is the fixed width and height of the world in tiles.
const GridExtent = 1024

// TileID identifies the contents of a single tile.
type TileID uint8

// SafeTileID is a traversable tile that the engine penalizes with a
// fixed cost multiplier (see EdgeTable's safe-tile override).
const SafeTileID TileID = 171

// IsSolidTileID classifies a raw tile id as solid (blocking) or not,
// using the fixed ranges TileGrid is built from. Out-of-bounds
// coordinates are handled separately by TileGrid.IsSolid; this
// function only knows about the id itself.
func IsSolidTileID(id TileID) bool {
	switch {
	case id == 0:
		return false
	case id >= 1 && id <= 161:
		return true
	case id >= 162 && id <= 169: // door, treated as non-solid
		return false
	case id >= 170 && id <= 191: // backgrounds, safe zones
		return false
	case id >= 192 && id <= 240:
		return true
	case id == 241:
		return false
	case id >= 242 && id <= 252:
		return true
	default: // 253-255
		return false
	}
}

// TileGrid is the immutable tile-id grid the pathfinding engine is
// built against: a fixed GridExtent x GridExtent array, row-major.
type TileGrid struct {
	tiles []TileID
}

// NewTileGrid wraps a flat, row-major tile-id slice. The slice must
// have exactly GridExtent*GridExtent entries; callers that produce
// tile data from a map file should use the mapfile package.
func NewTileGrid(tiles []TileID) *TileGrid {
	if len(tiles) != GridExtent*GridExtent {
		panic("nav: TileGrid requires exactly GridExtent*GridExtent tiles")
	}
	return &TileGrid{tiles: tiles}
}

// NewEmptyTileGrid returns a grid with every tile set to 0 (empty,
// non-solid). Useful for tests and for callers with no map file.
func NewEmptyTileGrid() *TileGrid {
	return &TileGrid{tiles: make([]TileID, GridExtent*GridExtent)}
}

func (g *TileGrid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < GridExtent && y < GridExtent
}

// TileAt returns the tile id at (x, y), or 0 if out of bounds.
func (g *TileGrid) TileAt(x, y int) TileID {
	if !g.inBounds(x, y) {
		return 0
	}
	return g.tiles[y*GridExtent+x]
}

// IsSolid returns whether the cell at (x, y) blocks movement.
// Out-of-bounds coordinates are always solid.
func (g *TileGrid) IsSolid(x, y int) bool {
	if !g.inBounds(x, y) {
		return true
	}
	return IsSolidTileID(g.tiles[y*GridExtent+x])
}

// IsSolidAt floors both coordinates of a continuous position and
// delegates to IsSolid.
func (g *TileGrid) IsSolidAt(p Vec2) bool {
	return g.IsSolid(int(floor(p.X)), int(floor(p.Y)))
}

// SetTile stamps a single tile id at (x, y), ignoring out-of-bounds
// writes. The mapfile loader does not use it: it stamps tiles into the
// raw slice before wrapping it with NewTileGrid.
func (g *TileGrid) SetTile(x, y int, id TileID) {
	if !g.inBounds(x, y) {
		return
	}
	g.tiles[y*GridExtent+x] = id
}
