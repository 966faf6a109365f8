package nav

// noParent is the sentinel "no parent" index, matching a nil Node*
// in the original engine.
const noParent = -1

// nodeFlags is a bitfield of per-node search state.
type nodeFlags uint8

const (
	flagInOpenSet nodeFlags = 1 << iota
	flagClosed
	flagInitialized
	flagTraversable
)

// node is a cell's search state. Its grid coordinates are never
// stored — they're recovered from its index into the arena
// (index = y*GridExtent + x), matching the original engine's
// pointer-into-arena design (see spec §9).
type node struct {
	parent int32
	flags  nodeFlags

	g, f, fLast float64
	weight      float64
}

// NodeArena is a flat 1024x1024 array of search nodes, reused across
// queries. Per spec §4.4, a node's fields are only meaningful once its
// Initialized flag is set; a query clears that flag on every node it
// touched instead of resetting the whole arena, keeping per-query
// cleanup O(touched) rather than O(GridExtent^2).
type NodeArena struct {
	nodes []node
}

// NewNodeArena allocates a zeroed arena sized for a full grid.
func NewNodeArena() *NodeArena {
	return &NodeArena{nodes: make([]node, GridExtent*GridExtent)}
}

func arenaIndex(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= GridExtent || y >= GridExtent {
		return 0, false
	}
	return y*GridExtent + x, true
}

func pointFromIndex(index int) (int, int) {
	return index % GridExtent, index / GridExtent
}

// getNode returns the arena index for (x, y), lazily resetting the
// node's search state (but never its weight or Traversable flag,
// which are precomputed once and must survive across queries — see
// SPEC_FULL.md's resolution of the NodeArena lazy-init ambiguity).
// The bool result is false when (x, y) is out of bounds.
func (a *NodeArena) getNode(x, y int) (int, bool) {
	idx, ok := arenaIndex(x, y)
	if !ok {
		return 0, false
	}
	n := &a.nodes[idx]
	if n.flags&flagInitialized == 0 {
		n.g, n.f, n.fLast = 0, 0, 0
		n.parent = noParent
		n.flags = flagInitialized | (n.flags & flagTraversable)
	}
	return idx, true
}

func (a *NodeArena) at(idx int) *node {
	return &a.nodes[idx]
}

// markTraversable stamps the Traversable bit directly, bypassing the
// lazy-init path — used by the engine's one-time precompute pass,
// before any search ever runs.
func (a *NodeArena) markTraversable(idx int) {
	a.nodes[idx].flags |= flagTraversable
}

// clearInitialized resets a node back to its logically-empty state
// after a query has finished with it, preserving weight and
// Traversable but dropping Initialized, Closed, and InOpenSet (see
// Testable Property 3: no node may carry search-session state across
// a completed find_path call).
func (a *NodeArena) clearInitialized(idx int) {
	a.nodes[idx].flags &^= flagInitialized | flagClosed | flagInOpenSet
}
