// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

// terminalLevel marks a node record as a terminal: one past the highest
// variable level a manager can be configured with, so the invariant
// "children's level > parent's level" trivially excludes terminals from
// ever being an internal node's parent at a lower level than their own.
const terminalLevel = 1<<31 - 1

// node is a fixed-layout record in the shared arena. The same record shape
// backs BDD, ADD and ZDD nodes; which reduction rule produced a given
// (level, then, els) triple is a property of the lookup path that created
// it, not of the record itself (see the shared-store design note).
type node struct {
	level     int32   // terminalLevel for terminals
	then      Handle  // then-edge (BDD/ADD: true cofactor; ZDD: "contains" child)
	els       Handle  // else-edge (BDD/ADD: false cofactor; ZDD: "omits" child)
	value     float64 // meaningful only for ADD terminals
	refcount  int32
	chainNext int32 // unique-table collision link, or free-list link when the slot is free
}

// store is the growable, append-allocated arena of node records. Index 0 is
// permanently reserved (never allocated, never freed) so that a bucket chain
// head or a chainNext value of 0 unambiguously means "end of chain" /
// "empty bucket".
type store struct {
	nodes     []node
	freeHead  int32
	freeCount int
	produced  int // total allocations over the arena's lifetime; Stats does not report it
}

func newStore(size int) *store {
	if size < 2 {
		size = 2
	}
	s := &store{nodes: make([]node, size)}
	s.initFreeList(1)
	return s
}

// initFreeList threads every slot from `from` onward into the free list.
func (s *store) initFreeList(from int) {
	n := len(s.nodes)
	for i := from; i < n-1; i++ {
		s.nodes[i].chainNext = int32(i + 1)
	}
	if n > from {
		s.nodes[n-1].chainNext = 0
	}
	if from < n {
		s.freeHead = int32(from)
	}
	s.freeCount += n - from
}

// alloc pops a free slot, or reports failure so the caller can try GC or
// growing the arena.
func (s *store) alloc() (int32, bool) {
	if s.freeHead == 0 {
		return 0, false
	}
	idx := s.freeHead
	s.freeHead = s.nodes[idx].chainNext
	s.freeCount--
	s.produced++
	return idx, true
}

// free returns idx to the free list, clearing its record (so a stale
// chainNext or handle cannot be mistaken for live data).
func (s *store) free(idx int32) {
	s.nodes[idx] = node{chainNext: s.freeHead}
	s.freeHead = idx
	s.freeCount++
}

// grow appends fresh, already-freed slots to the arena.
func (s *store) grow(newSize int) {
	old := len(s.nodes)
	if newSize <= old {
		return
	}
	grown := make([]node, newSize)
	copy(grown, s.nodes)
	s.nodes = grown
	s.initFreeList(old)
}

func (s *store) size() int {
	return len(s.nodes)
}

// live is the number of allocated (non-free, non-sentinel) slots.
func (s *store) live() int {
	return len(s.nodes) - 1 - s.freeCount
}
