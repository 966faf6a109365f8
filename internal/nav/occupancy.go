package nav

import "math"

// OccupyRect is a square sub-rectangle of non-solid cells, inclusive
// on both ends, that a ship of some radius can occupy while still
// containing the cell the search was anchored on. Occupy reports
// whether the rectangle actually exists (a degenerate search can
// produce a zero-area "rectangle" with Occupy == false).
type OccupyRect struct {
	Occupy         bool
	StartX, StartY int
	EndX, EndY     int
}

// center returns the geometric center of the rectangle, treating
// EndX/EndY as inclusive cell indices (so the far edge sits at
// End+1).
func (r OccupyRect) center() Vec2 {
	minX, minY := float64(r.StartX), float64(r.StartY)
	maxX, maxY := float64(r.EndX)+1, float64(r.EndY)+1
	return Vec2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
}

// Contains reports whether the rectangle covers the cell containing p.
func (r OccupyRect) Contains(p Vec2) bool {
	x, y := cellOf(p)
	return x >= r.StartX && x <= r.EndX && y >= r.StartY && y <= r.EndY
}

// OccupancyModel answers shape queries for a ship of a given radius
// against a fixed TileGrid: whether it can occupy a cell, whether it
// can overlap a cell at all, and where the best-fit occupy rectangles
// are centered. See spec §4.2 for the exact search pattern this
// implements.
type OccupancyModel struct {
	grid *TileGrid
}

// NewOccupancyModel builds a model over the given grid.
func NewOccupancyModel(grid *TileGrid) *OccupancyModel {
	return &OccupancyModel{grid: grid}
}

func clampWindow(lo, hi int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > GridExtent-1 {
		hi = GridExtent - 1
	}
	return lo, hi
}

// searchWindow computes the anchor cell, the diameter d = floor(2r),
// and the clamped search window around it.
func (m *OccupancyModel) searchWindow(p Vec2, r float64) (sx, sy, d, farLeft, farRight, farTop, farBottom int) {
	sx, sy = cellOf(p)
	d = int(2 * r)
	farLeft, farRight = clampWindow(sx-d, sx+d)
	farTop, farBottom = clampWindow(sy-d, sy+d)
	return
}

func degenerateRect(grid *TileGrid, sx, sy int) OccupyRect {
	solid := grid.IsSolid(sx, sy)
	return OccupyRect{Occupy: !solid, StartX: sx, StartY: sy, EndX: sx, EndY: sy}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(a, b int) int {
	switch {
	case a > b:
		return 1
	case a == b:
		return 0
	default:
		return -1
	}
}

// walkCandidates calls visit for every passing occupy candidate in the
// search window around (sx, sy), in the same scan order as the
// original engine. visit returning true stops the scan early.
func (m *OccupancyModel) walkCandidates(sx, sy, d, farLeft, farRight, farTop, farBottom int, visit func(fsx, fsy, fex, fey int) bool) {
	for checkY := farTop; checkY <= farBottom; checkY++ {
		dirY := sign(sy, checkY)
		if dirY == 0 { // cardinal row, skip: radius > 1 requires a corner region
			continue
		}
		for checkX := farLeft; checkX <= farRight; checkX++ {
			dirX := sign(sx, checkX)
			if dirX == 0 {
				continue
			}

			canFit := true
			for y := checkY; abs(y-checkY) <= d; y += dirY {
				if !canFit {
					break
				}
				for x := checkX; abs(x-checkX) <= d; x += dirX {
					if m.grid.IsSolid(x, y) {
						canFit = false
						break
					}
				}
			}
			if !canFit {
				continue
			}

			var fsx, fsy, fex, fey int
			if checkX > sx {
				fsx, fex = checkX-d, checkX
			} else {
				fsx, fex = checkX, checkX+d
			}
			if checkY > sy {
				fsy, fey = checkY-d, checkY
			} else {
				fsy, fey = checkY, checkY+d
			}

			if visit(fsx, fsy, fex, fey) {
				return
			}
		}
	}
}

// CanOverlapTile reports whether some occupy rectangle containing the
// cell at p exists and is entirely non-solid.
func (m *OccupancyModel) CanOverlapTile(p Vec2, r float64) bool {
	sx, sy, d, farLeft, farRight, farTop, farBottom := m.searchWindow(p, r)
	solid := m.grid.IsSolid(sx, sy)
	if d < 1 || solid {
		return !solid
	}
	found := false
	m.walkCandidates(sx, sy, d, farLeft, farRight, farTop, farBottom, func(int, int, int, int) bool {
		found = true
		return true
	})
	return found
}

// PossibleOccupyRect returns the first passing occupy candidate, or a
// non-occupying result if none exists.
func (m *OccupancyModel) PossibleOccupyRect(p Vec2, r float64) OccupyRect {
	sx, sy, d, farLeft, farRight, farTop, farBottom := m.searchWindow(p, r)
	if d < 1 || m.grid.IsSolid(sx, sy) {
		return degenerateRect(m.grid, sx, sy)
	}

	result := OccupyRect{}
	m.walkCandidates(sx, sy, d, farLeft, farRight, farTop, farBottom, func(fsx, fsy, fex, fey int) bool {
		result = OccupyRect{Occupy: true, StartX: fsx, StartY: fsy, EndX: fex, EndY: fey}
		return true
	})
	return result
}

// AllOccupiedRects returns every passing occupy candidate in the
// search window. The original engine documents a caller-supplied
// capacity bound of 4 for d >= 1 and 1 for the degenerate case; that
// bound does not actually hold for the literal scan (distinct corner
// cells in the same quadrant can each produce a distinct, valid,
// differently-anchored candidate rectangle once the window is wider
// than one cell), so this returns a plain dynamically-sized slice
// instead of requiring a fixed buffer.
func (m *OccupancyModel) AllOccupiedRects(p Vec2, r float64) []OccupyRect {
	sx, sy, d, farLeft, farRight, farTop, farBottom := m.searchWindow(p, r)
	if d < 1 || m.grid.IsSolid(sx, sy) {
		rect := degenerateRect(m.grid, sx, sy)
		if !rect.Occupy {
			return nil
		}
		return []OccupyRect{rect}
	}

	var rects []OccupyRect
	m.walkCandidates(sx, sy, d, farLeft, farRight, farTop, farBottom, func(fsx, fsy, fex, fey int) bool {
		rects = append(rects, OccupyRect{Occupy: true, StartX: fsx, StartY: fsy, EndX: fex, EndY: fey})
		return false
	})
	return rects
}

// OccupyCenter returns the average center of every passing occupy
// rectangle around p, falling back to p itself when none pass.
func (m *OccupancyModel) OccupyCenter(p Vec2, r float64) Vec2 {
	sx, sy, d, farLeft, farRight, farTop, farBottom := m.searchWindow(p, r)
	if d < 1 || m.grid.IsSolid(sx, sy) {
		return p
	}

	var accum Vec2
	count := 0
	m.walkCandidates(sx, sy, d, farLeft, farRight, farTop, farBottom, func(fsx, fsy, fex, fey int) bool {
		c := OccupyRect{StartX: fsx, StartY: fsy, EndX: fex, EndY: fey}.center()
		accum.X += c.X
		accum.Y += c.Y
		count++
		return false
	})
	if count == 0 {
		return p
	}
	return Vec2{X: accum.X / float64(count), Y: accum.Y / float64(count)}
}

// ClosestOccupyRect returns the passing candidate whose center is
// nearest ref, short-circuiting if any candidate already contains ref.
func (m *OccupancyModel) ClosestOccupyRect(p Vec2, r float64, ref Vec2) OccupyRect {
	sx, sy, d, farLeft, farRight, farTop, farBottom := m.searchWindow(p, r)
	if d < 1 || m.grid.IsSolid(sx, sy) {
		return degenerateRect(m.grid, sx, sy)
	}

	result := OccupyRect{}
	bestDistSq := math.MaxFloat64
	m.walkCandidates(sx, sy, d, farLeft, farRight, farTop, farBottom, func(fsx, fsy, fex, fey int) bool {
		candidate := OccupyRect{Occupy: true, StartX: fsx, StartY: fsy, EndX: fex, EndY: fey}
		useRect := true
		if result.Occupy {
			c := candidate.center()
			dx, dy := c.X-ref.X, c.Y-ref.Y
			distSq := dx*dx + dy*dy
			useRect = distSq < bestDistSq
			if useRect {
				bestDistSq = distSq
			}
		} else {
			c := candidate.center()
			dx, dy := c.X-ref.X, c.Y-ref.Y
			bestDistSq = dx*dx + dy*dy
		}

		contains := candidate.Contains(ref)
		if contains || useRect {
			result = candidate
		}
		return contains
	})
	return result
}

// roundHalfUp matches the engine's (int)(v + 0.5f) truncation idiom.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// CanOccupy is a stricter predicate than CanOverlapTile: the cell
// itself must be non-solid, and every cell within round(r) of it
// (cardinally and diagonally) must also be non-solid. EdgeTable
// generation does not call it.
func (m *OccupancyModel) CanOccupy(p Vec2, r float64) bool {
	if m.grid.IsSolidAt(p) {
		return false
	}
	sx, sy := cellOf(p)
	radius := roundHalfUp(r)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if m.grid.IsSolid(sx+dx, sy+dy) {
				return false
			}
		}
	}
	return true
}

func isSolidSquare(grid *TileGrid, topLeftX, topLeftY, length int) bool {
	for x := 0; x < length; x++ {
		for y := 0; y < length; y++ {
			if grid.IsSolid(topLeftX+x, topLeftY+y) {
				return true
			}
		}
	}
	return false
}

// occupyMap builds, for a cell and radius, the flattened grid of
// "is this sub-square solid" bits used by CanMoveTo.
func occupyMap(grid *TileGrid, cx, cy int, radius float64) []bool {
	diameter := roundHalfUp(radius) * 2
	if diameter <= 0 {
		return nil
	}
	offsetX, offsetY := cx-diameter+1, cy-diameter+1

	result := make([]bool, 0, diameter*diameter)
	for x := 0; x < diameter; x++ {
		for y := 0; y < diameter; y++ {
			result = append(result, isSolidSquare(grid, offsetX+x, offsetY+y, diameter))
		}
	}
	return result
}

// CanMoveTo is a cheap step check between two cells, exposed as a
// standalone query (neither EdgeTable generation nor FindPath calls
// it): it succeeds if there exists at least one offset
// position where the occupy-map bit is clear (non-solid) for both the
// from and to cells. This mirrors the upstream engine's permissive
// check, which only requires that some shared sub-square fits at both
// ends, not that the ship can slide continuously between them along a
// single direction. Kept as-is (see DESIGN.md's Open Question log):
// it's a deliberately loose fallback rather than a proof of a single
// continuous step.
func (m *OccupancyModel) CanMoveTo(from, to Vec2, r float64) bool {
	fcx, fcy := cellOf(from)
	tcx, tcy := cellOf(to)

	fromMap := occupyMap(m.grid, fcx, fcy, r)
	toMap := occupyMap(m.grid, tcx, tcy, r)

	n := len(fromMap)
	if len(toMap) < n {
		n = len(toMap)
	}
	for i := 0; i < n; i++ {
		if fromMap[i] || toMap[i] {
			continue
		}
		return true
	}
	return false
}
