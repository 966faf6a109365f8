package nav

import "math"

// wallWeightWindow bounds the wall-proximity scan: only solid cells
// within this box around a cell can raise its weight (spec §4.7,
// "Linear wall-proximity weighting").
const wallWeightWindow = 5

// wallDistance returns sqrt(min dx^2+dy^2) over every (dx,dy) in
// [-5,4]^2 for which (x+dx,y+dy) is solid, or +Inf if none is found in
// that window. The window is asymmetric (inclusive of -5, exclusive of
// +5) to match the source's fixed scan bounds.
func wallDistance(grid *TileGrid, x, y int) float64 {
	best := math.Inf(1)
	for dy := -wallWeightWindow; dy < wallWeightWindow; dy++ {
		for dx := -wallWeightWindow; dx < wallWeightWindow; dx++ {
			if !grid.IsSolid(x+dx, y+dy) {
				continue
			}
			d := float64(dx*dx + dy*dy)
			if d < best {
				best = d
			}
		}
	}
	if math.IsInf(best, 1) {
		return best
	}
	return math.Sqrt(best)
}

// buildWallWeights stamps every traversable node's baseline weight
// according to its distance from the nearest wall: weight = 5/dist
// when dist < wallWeightWindow, else the default weight of 1. This
// runs once, during engine construction, before any search — per-query
// state resets never touch weight (see NodeArena.getNode).
func buildWallWeights(grid *TileGrid, arena *NodeArena) {
	for y := 0; y < GridExtent; y++ {
		for x := 0; x < GridExtent; x++ {
			idx := y*GridExtent + x
			n := &arena.nodes[idx]
			n.weight = 1
			if n.flags&flagTraversable == 0 {
				continue
			}
			dist := wallDistance(grid, x, y)
			if dist < 1 {
				dist = 1
			}
			if dist < wallWeightWindow {
				n.weight = float64(wallWeightWindow) / dist
			}
		}
	}
}
