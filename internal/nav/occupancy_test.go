package nav

import "testing"

func TestCanOverlapTileEmptyGrid(t *testing.T) {
	grid := NewEmptyTileGrid()
	occ := NewOccupancyModel(grid)
	if !occ.CanOverlapTile(Vec2{X: 512, Y: 512}, 0.875) {
		t.Fatal("an empty grid must allow overlap everywhere")
	}
}

func TestCanOverlapTileSolidCell(t *testing.T) {
	grid := NewEmptyTileGrid()
	grid.SetTile(512, 512, 1) // solid
	occ := NewOccupancyModel(grid)
	if occ.CanOverlapTile(Vec2{X: 512.5, Y: 512.5}, 0.875) {
		t.Fatal("a solid anchor cell must not allow overlap")
	}
}

func TestOccupyCenterFallsBackToPointWhenBlocked(t *testing.T) {
	grid := NewEmptyTileGrid()
	for dy := -6; dy <= 6; dy++ {
		for dx := -6; dx <= 6; dx++ {
			grid.SetTile(512+dx, 512+dy, 1)
		}
	}
	occ := NewOccupancyModel(grid)
	p := Vec2{X: 512.5, Y: 512.5}
	c := occ.OccupyCenter(p, 0.875)
	if c != p {
		t.Fatalf("OccupyCenter should fall back to p when fully blocked, got %v", c)
	}
}

func TestCanOccupyRejectsCellsNearWalls(t *testing.T) {
	grid := NewEmptyTileGrid()
	grid.SetTile(512, 511, 1) // solid directly north
	occ := NewOccupancyModel(grid)

	if occ.CanOccupy(Vec2{X: 512.5, Y: 512.5}, 1) {
		t.Fatal("a cell adjacent to a solid neighbor within radius should not be occupiable")
	}
	if !occ.CanOccupy(Vec2{X: 512.5, Y: 512.5}, 0) {
		t.Fatal("radius 0 should ignore neighbors and only test the cell itself")
	}
}

func TestAllOccupiedRectsDegenerateCase(t *testing.T) {
	grid := NewEmptyTileGrid()
	occ := NewOccupancyModel(grid)
	rects := occ.AllOccupiedRects(Vec2{X: 3.5, Y: 3.5}, 0.25) // d < 1, degenerate
	if len(rects) != 1 {
		t.Fatalf("degenerate case should return exactly one rect, got %d", len(rects))
	}
}

func TestOccupyRectContains(t *testing.T) {
	r := OccupyRect{Occupy: true, StartX: 5, StartY: 5, EndX: 7, EndY: 7}
	if !r.Contains(Vec2{X: 6.2, Y: 6.9}) {
		t.Fatal("point inside rect should be contained")
	}
	if r.Contains(Vec2{X: 8.5, Y: 6}) {
		t.Fatal("point outside rect should not be contained")
	}
}

// twoCandidateGrid blocks (501,499) and (501,501), leaving exactly two
// passing quadrant rects around anchor cell (500,500) at r=0.5 (d=1):
// NW=[499,500]x[499,500] and SW=[499,500]x[500,501]. Both the NE and SE
// corners fail immediately since their own starting cell is solid.
func twoCandidateGrid() *TileGrid {
	g := NewEmptyTileGrid()
	g.SetTile(501, 499, 1)
	g.SetTile(501, 501, 1)
	return g
}

func TestAllOccupiedRectsMultipleCandidates(t *testing.T) {
	occ := NewOccupancyModel(twoCandidateGrid())
	rects := occ.AllOccupiedRects(Vec2{X: 500.5, Y: 500.5}, 0.5)

	want := []OccupyRect{
		{Occupy: true, StartX: 499, StartY: 499, EndX: 500, EndY: 500}, // NW
		{Occupy: true, StartX: 499, StartY: 500, EndX: 500, EndY: 501}, // SW
	}
	if len(rects) != len(want) {
		t.Fatalf("AllOccupiedRects returned %d rects, want %d: %+v", len(rects), len(want), rects)
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("rect %d = %+v, want %+v", i, rects[i], want[i])
		}
	}
}

func TestOccupyCenterAveragesMultipleCandidates(t *testing.T) {
	occ := NewOccupancyModel(twoCandidateGrid())
	got := occ.OccupyCenter(Vec2{X: 500.5, Y: 500.5}, 0.5)

	// NW center is (500,500), SW center is (500,501); the averaged
	// centroid sits halfway between them.
	want := Vec2{X: 500, Y: 500.5}
	if got != want {
		t.Fatalf("OccupyCenter = %v, want %v", got, want)
	}
}

func TestPossibleOccupyRect(t *testing.T) {
	cases := []struct {
		name  string
		setup func(g *TileGrid)
		p     Vec2
		r     float64
		want  OccupyRect
	}{
		{
			name: "degenerate non-solid anchor returns the single cell",
			p:    Vec2{X: 3.5, Y: 3.5},
			r:    0.25, // d < 1
			want: OccupyRect{Occupy: true, StartX: 3, StartY: 3, EndX: 3, EndY: 3},
		},
		{
			name:  "degenerate solid anchor reports Occupy=false",
			setup: func(g *TileGrid) { g.SetTile(3, 3, 1) },
			p:     Vec2{X: 3.5, Y: 3.5},
			r:     0.25,
			want:  OccupyRect{Occupy: false, StartX: 3, StartY: 3, EndX: 3, EndY: 3},
		},
		{
			name: "first passing candidate in an open window is the NW quadrant rect",
			p:    Vec2{X: 500.5, Y: 500.5},
			r:    0.5, // d = 1
			want: OccupyRect{Occupy: true, StartX: 499, StartY: 499, EndX: 500, EndY: 500},
		},
	}

	for _, c := range cases {
		grid := NewEmptyTileGrid()
		if c.setup != nil {
			c.setup(grid)
		}
		occ := NewOccupancyModel(grid)
		if got := occ.PossibleOccupyRect(c.p, c.r); got != c.want {
			t.Errorf("%s: PossibleOccupyRect(%v,%v) = %+v, want %+v", c.name, c.p, c.r, got, c.want)
		}
	}
}

func TestClosestOccupyRect(t *testing.T) {
	nw := OccupyRect{Occupy: true, StartX: 499, StartY: 499, EndX: 500, EndY: 500}

	cases := []struct {
		name string
		ref  Vec2
		want OccupyRect
	}{
		{
			// ref's cell (499,500) lies inside both candidates, and SW's
			// center (500,501) is numerically closer to ref than NW's
			// center (500,500) is, but NW is scanned first and already
			// contains ref — containment must win over raw distance.
			name: "containment short-circuits even when the other candidate's center is closer",
			ref:  Vec2{X: 499.1, Y: 500.9},
			want: nw,
		},
		{
			// ref is contained by neither candidate, so the nearest center
			// (NW's) decides it.
			name: "falls back to nearest center when no candidate contains ref",
			ref:  Vec2{X: 500, Y: 498.5},
			want: nw,
		},
	}

	for _, c := range cases {
		occ := NewOccupancyModel(twoCandidateGrid())
		if got := occ.ClosestOccupyRect(Vec2{X: 500.5, Y: 500.5}, 0.5, c.ref); got != c.want {
			t.Errorf("%s: ClosestOccupyRect(ref=%v) = %+v, want %+v", c.name, c.ref, got, c.want)
		}
	}

	grid := NewEmptyTileGrid()
	grid.SetTile(500, 500, 1)
	occ := NewOccupancyModel(grid)
	got := occ.ClosestOccupyRect(Vec2{X: 500.5, Y: 500.5}, 0.5, Vec2{X: 0, Y: 0})
	want := OccupyRect{Occupy: false, StartX: 500, StartY: 500, EndX: 500, EndY: 500}
	if got != want {
		t.Errorf("degenerate solid anchor: ClosestOccupyRect = %+v, want %+v", got, want)
	}
}

func TestCanMoveTo(t *testing.T) {
	cases := []struct {
		name  string
		setup func(g *TileGrid)
		from  Vec2
		to    Vec2
		want  bool
	}{
		{
			name: "adjacent cells on an open grid always share a free offset",
			from: Vec2{X: 600.5, Y: 600.5},
			to:   Vec2{X: 601.5, Y: 600.5},
			want: true,
		},
		{
			name: "no shared free offset when the goal is walled off on every side",
			setup: func(g *TileGrid) {
				for dy := -2; dy <= 2; dy++ {
					for dx := -2; dx <= 2; dx++ {
						g.SetTile(600+dx, 600+dy, 1)
					}
				}
			},
			from: Vec2{X: 610.5, Y: 610.5},
			to:   Vec2{X: 600.5, Y: 600.5},
			want: false,
		},
	}

	for _, c := range cases {
		grid := NewEmptyTileGrid()
		if c.setup != nil {
			c.setup(grid)
		}
		occ := NewOccupancyModel(grid)
		if got := occ.CanMoveTo(c.from, c.to, 0.5); got != c.want {
			t.Errorf("%s: CanMoveTo(%v,%v) = %v, want %v", c.name, c.from, c.to, got, c.want)
		}
	}
}
