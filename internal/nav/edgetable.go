package nav

// Direction indices, fixed and shared across the codebase (spec §3,
// "Order is fixed and shared across the codebase").
const (
	dirNorth = iota
	dirSouth
	dirWest
	dirEast
	dirNorthWest
	dirNorthEast
	dirSouthWest
	dirSouthEast
	numDirections
)

var dirOffsetX = [numDirections]int{0, 0, -1, 1, -1, 1, -1, 1}
var dirOffsetY = [numDirections]int{-1, 1, 0, 0, -1, -1, 1, 1}

// dirRequires[i] names the cardinal direction index that gates
// direction i, or -1 if ungated. Diagonal gating is intentionally
// asymmetric: NW/NE require only North, SW/SE require only South (see
// spec §4.3 point 3 and §9 "Diagonal-gating asymmetry").
var dirRequires = [numDirections]int{-1, -1, -1, -1, dirNorth, dirNorth, dirSouth, dirSouth}

// EdgeSet is an 8-bit mask over the 8 directions above.
type EdgeSet uint8

func (e EdgeSet) IsSet(i int) bool { return e&(1<<uint(i)) != 0 }
func (e *EdgeSet) Set(i int)       { *e |= 1 << uint(i) }
func (e *EdgeSet) Erase(i int)     { *e &^= 1 << uint(i) }

// EdgeTable holds the precomputed, per-cell 8-direction edge set for
// the whole grid.
type EdgeTable struct {
	edges []EdgeSet
}

// NewEdgeTable allocates a zeroed table sized for a full grid.
func NewEdgeTable() *EdgeTable {
	return &EdgeTable{edges: make([]EdgeSet, GridExtent*GridExtent)}
}

func (t *EdgeTable) set(x, y int, set EdgeSet) {
	t.edges[y*GridExtent+x] = set
}

func (t *EdgeTable) get(x, y int) EdgeSet {
	return t.edges[y*GridExtent+x]
}

// canOccupyRectShifted checks a whole occupy rectangle, shifted by
// (dx, dy), for solid cells. Used for diagonal neighbor checks, which
// must re-verify the entire fit region at the new position.
func canOccupyRectShifted(grid *TileGrid, rect OccupyRect, dx, dy int) bool {
	minX, minY := rect.StartX+dx, rect.StartY+dy
	maxX, maxY := rect.EndX+dx, rect.EndY+dy
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if grid.IsSolid(x, y) {
				return false
			}
		}
	}
	return true
}

// canOccupyRectAxis checks only the leading edge of an occupy
// rectangle shifted by (dx, dy) — the single row or column that a
// cardinal step newly sweeps into. Cheaper than the full shifted-rect
// check and sufficient for cardinal moves.
func canOccupyRectAxis(grid *TileGrid, rect OccupyRect, dx, dy int) bool {
	minX, minY := rect.StartX+dx, rect.StartY+dy
	maxX, maxY := rect.EndX+dx, rect.EndY+dy

	switch {
	case dx < 0:
		for y := minY; y <= maxY; y++ {
			if grid.IsSolid(minX, y) {
				return false
			}
		}
	case dx > 0:
		for y := minY; y <= maxY; y++ {
			if grid.IsSolid(maxX, y) {
				return false
			}
		}
	case dy < 0:
		for x := minX; x <= maxX; x++ {
			if grid.IsSolid(x, minY) {
				return false
			}
		}
	case dy > 0:
		for x := minX; x <= maxX; x++ {
			if grid.IsSolid(x, maxY) {
				return false
			}
		}
	}
	return true
}

// calculateEdges computes the edge set for the traversable cell at
// (x, y), stamping the kSafeTileId weight override on any safe-tile
// neighbor it discovers as a side effect (spec §4.3 point 4).
func calculateEdges(grid *TileGrid, occ *OccupancyModel, arena *NodeArena, x, y int, radius float64) EdgeSet {
	var edges EdgeSet

	occupied := occ.AllOccupiedRects(Vec2{X: float64(x), Y: float64(y)}, radius)

	var north, south bool
	gates := [numDirections]*bool{&north, &south, nil, nil, nil, nil, nil, nil}

	for i := 0; i < numDirections; i++ {
		if req := dirRequires[i]; req == dirNorth && !north {
			continue
		} else if req == dirSouth && !south {
			continue
		}

		nx, ny := x+dirOffsetX[i], y+dirOffsetY[i]

		isOccupied := false
		for _, rect := range occupied {
			if rect.Contains(Vec2{X: float64(nx), Y: float64(ny)}) {
				isOccupied = true
				break
			}
		}

		if !isOccupied {
			canOccupy := true
			for _, rect := range occupied {
				var ok bool
				if i >= dirNorthWest {
					ok = canOccupyRectShifted(grid, rect, dirOffsetX[i], dirOffsetY[i])
				} else {
					ok = canOccupyRectAxis(grid, rect, dirOffsetX[i], dirOffsetY[i])
				}
				if !ok {
					canOccupy = false
					break
				}
			}
			if !canOccupy {
				continue
			}
		}

		idx, ok := arenaIndex(nx, ny)
		if !ok {
			continue
		}
		neighbor := arena.at(idx)
		if neighbor.flags&flagTraversable == 0 {
			continue
		}

		if grid.TileAt(nx, ny) == SafeTileID {
			neighbor.weight = 10.0
		}

		edges.Set(i)
		if gates[i] != nil {
			*gates[i] = true
		}
	}

	return edges
}
