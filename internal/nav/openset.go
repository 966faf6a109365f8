package nav

import "container/heap"

// openSet is a binary min-heap of arena indices keyed on f-score,
// built on container/heap the same way the teacher's NavGrid.FindPath
// and the pack's d2gridrouter Dijkstra search do. Lazy deletion is
// allowed: a node whose f improves can be pushed again without
// removing its earlier, stale entry (see Search's f/f_last skip).
type openSet struct {
	arena *NodeArena
	items []int
}

func newOpenSet(arena *NodeArena) *openSet {
	return &openSet{arena: arena}
}

func (s *openSet) Len() int { return len(s.items) }

func (s *openSet) Less(i, j int) bool {
	return s.arena.at(s.items[i]).f < s.arena.at(s.items[j]).f
}

func (s *openSet) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
}

func (s *openSet) Push(x any) {
	s.items = append(s.items, x.(int))
}

func (s *openSet) Pop() any {
	old := s.items
	n := len(old)
	item := old[n-1]
	s.items = old[:n-1]
	return item
}

func (s *openSet) push(idx int) {
	heap.Push(s, idx)
}

func (s *openSet) pop() int {
	return heap.Pop(s).(int)
}

func (s *openSet) clear() {
	s.items = s.items[:0]
}

func (s *openSet) empty() bool {
	return len(s.items) == 0
}
