package nav

import "math"

// PathfindingEngine is a fully precomputed pathfinder for a single
// TileGrid and ship radius: traversability, edge sets, and (optionally)
// wall-proximity weights are all computed once in New, so FindPath only
// ever touches the handful of nodes its search actually visits.
type PathfindingEngine struct {
	grid   *TileGrid
	occ    *OccupancyModel
	arena  *NodeArena
	edges  *EdgeTable
	radius float64

	// open and touched are owned by Search and reused across queries
	// (spec §5: "Vectors should be retained... to avoid repeated
	// allocation"). The engine is single-threaded and non-reentrant;
	// concurrent callers must use one engine per goroutine.
	open    *openSet
	touched []int
}

// New builds an engine for a ship of the given radius against grid.
// When linearWeights is false every traversable cell keeps the default
// weight of 1, and only the safe-tile override (applied during edge
// calculation) can raise it.
func New(grid *TileGrid, shipRadius float64, linearWeights bool) *PathfindingEngine {
	occ := NewOccupancyModel(grid)
	arena := NewNodeArena()

	for y := 0; y < GridExtent; y++ {
		for x := 0; x < GridExtent; x++ {
			if grid.IsSolid(x, y) {
				continue
			}
			idx := y*GridExtent + x
			if occ.CanOverlapTile(Vec2{X: float64(x), Y: float64(y)}, shipRadius) {
				arena.markTraversable(idx)
			}
		}
	}

	if linearWeights {
		buildWallWeights(grid, arena)
	} else {
		for idx := range arena.nodes {
			arena.nodes[idx].weight = 1
		}
	}

	edges := NewEdgeTable()
	for y := 0; y < GridExtent; y++ {
		for x := 0; x < GridExtent; x++ {
			idx := y*GridExtent + x
			if arena.nodes[idx].flags&flagTraversable == 0 {
				continue
			}
			edges.set(x, y, calculateEdges(grid, occ, arena, x, y, shipRadius))
		}
	}

	e := &PathfindingEngine{grid: grid, occ: occ, arena: arena, edges: edges, radius: shipRadius}
	e.open = newOpenSet(arena)
	return e
}

const (
	cardinalCost = 1.0
	diagonalCost = math.Sqrt2
)

// directionBetween returns the direction index stepping from (x,y) to
// (nx,ny), or -1 if the offset isn't one of the 8 directions.
func directionBetween(x, y, nx, ny int) int {
	dx, dy := nx-x, ny-y
	for i := 0; i < numDirections; i++ {
		if dirOffsetX[i] == dx && dirOffsetY[i] == dy {
			return i
		}
	}
	return -1
}

// FindPath runs an A* search from `from` to `to` for a ship of radius r,
// returning a list of world-space waypoints, or nil if no path exists.
// Passing the same cell for from and to (Testable Property 4) returns a
// single-waypoint path instead of an empty one.
func (e *PathfindingEngine) FindPath(from, to Vec2, r float64) []Vec2 {
	startX, startY := cellOf(from)
	goalX, goalY := cellOf(to)

	if e.grid.IsSolid(startX, startY) || e.grid.IsSolid(goalX, goalY) {
		return nil
	}

	startIdx, ok := e.arena.getNode(startX, startY)
	if !ok {
		return nil
	}
	if e.arena.at(startIdx).flags&flagTraversable == 0 {
		e.arena.clearInitialized(startIdx)
		return nil
	}

	if startX == goalX && startY == goalY {
		e.arena.clearInitialized(startIdx)
		return []Vec2{e.occ.OccupyCenter(from, r)}
	}

	goalIdx, ok := e.arena.getNode(goalX, goalY)
	if !ok {
		e.arena.clearInitialized(startIdx)
		return nil
	}
	e.touched = append(e.touched[:0], startIdx, goalIdx)
	if e.arena.at(goalIdx).flags&flagTraversable == 0 {
		e.cleanup(e.touched)
		return nil
	}

	goalCenter := Vec2{X: float64(goalX) + 0.5, Y: float64(goalY) + 0.5}
	start := e.arena.at(startIdx)
	start.g = 0
	start.f = euclidean(Vec2{X: float64(startX) + 0.5, Y: float64(startY) + 0.5}, goalCenter)
	start.parent = noParent
	start.flags |= flagInOpenSet

	open := e.open
	open.clear()
	open.push(startIdx)

	found := false

	for !open.empty() {
		idx := open.pop()
		n := e.arena.at(idx)

		if idx == goalIdx {
			found = true
			break
		}

		n.flags |= flagClosed

		if n.f > 0 && n.f == n.fLast {
			continue // already processed at this fitness
		}
		n.fLast = n.f

		x, y := pointFromIndex(idx)
		neighbors := e.edges.get(x, y)
		if n.parent != noParent {
			px, py := pointFromIndex(int(n.parent))
			if dir := directionBetween(x, y, px, py); dir >= 0 {
				neighbors.Erase(dir)
			}
		}

		for i := 0; i < numDirections; i++ {
			if !neighbors.IsSet(i) {
				continue
			}
			nx, ny := x+dirOffsetX[i], y+dirOffsetY[i]
			nIdx, ok := arenaIndex(nx, ny)
			if !ok {
				continue
			}
			wasFresh := e.arena.nodes[nIdx].flags&flagInitialized == 0
			nIdx, ok = e.arena.getNode(nx, ny)
			if !ok {
				continue
			}
			if wasFresh {
				e.touched = append(e.touched, nIdx)
			}
			nn := e.arena.at(nIdx)

			stepCost := cardinalCost
			if i >= dirNorthWest {
				stepCost = diagonalCost
			}
			cost := n.g + nn.weight*stepCost

			if nn.flags&flagClosed != 0 && cost < nn.g {
				nn.flags &^= flagClosed
			}

			h := euclidean(Vec2{X: float64(nx) + 0.5, Y: float64(ny) + 0.5}, goalCenter)
			isNew := nn.flags&flagInOpenSet == 0
			if isNew || cost+h < nn.f {
				nn.g = cost
				nn.f = nn.g + h
				nn.parent = int32(idx)
				nn.flags |= flagInOpenSet
				open.push(nIdx)
			}
		}
	}

	if !found || e.arena.at(goalIdx).parent == noParent {
		e.cleanup(e.touched)
		return nil
	}

	var chain []Vec2
	cur := goalIdx
	for {
		x, y := pointFromIndex(cur)
		chain = append(chain, e.occ.OccupyCenter(Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}, r))
		parent := e.arena.at(cur).parent
		if parent == noParent || int(parent) == startIdx {
			break
		}
		cur = int(parent)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	path := append([]Vec2{{X: float64(startX) + 0.5, Y: float64(startY) + 0.5}}, chain...)

	e.cleanup(e.touched)

	return path
}

// cleanup clears Initialized on every node a query touched, restoring
// the arena to its logically-empty state in O(touched) time instead of
// resetting the whole GridExtent^2 array.
func (e *PathfindingEngine) cleanup(touched []int) {
	for _, idx := range touched {
		e.arena.clearInitialized(idx)
	}
}
