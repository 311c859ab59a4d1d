// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

// GC runs an explicit mark-and-sweep pass (§4.10): mark every node
// transitively reachable from a positive-refcount root or from a cached
// Ithvar/AddIthvar projection, then sweep every
// level's unique table, unlinking and freeing unmarked zero-ref nodes, and
// finally clear the memoization cache (any entry may reference a freed
// node).
func (m *Manager) GC() {
	before := m.store.live()
	marked := m.mark()
	freed := m.sweep(marked)
	m.cache.clear()
	m.deadCount = 0
	m.gcCount++
	after := m.store.live()
	m.logger.Infow("gc pass", "live_before", before, "live_after", after, "freed", freed)
}

// mark walks the arena once, marking index i (excluding the permanently
// live terminal at index 1) if it has a positive refcount, and transitively
// marks its children via markFrom. The cached projection functions in
// ithvar/addithvar are marked as roots too, so those caches never hold a
// freed handle.
func (m *Manager) mark() []bool {
	marked := make([]bool, m.store.size())
	marked[m.ONE.index()] = true
	for i := int32(1); i < int32(m.store.size()); i++ {
		if m.store.nodes[i].refcount > 0 {
			m.markFrom(marked, i)
		}
	}
	for _, proj := range [][]Handle{m.ithvar, m.addithvar} {
		for _, h := range proj {
			if h.Valid() {
				m.markFrom(marked, h.index())
			}
		}
	}
	return marked
}

func (m *Manager) markFrom(marked []bool, idx int32) {
	if marked[idx] {
		return
	}
	marked[idx] = true
	nd := &m.store.nodes[idx]
	if nd.level == terminalLevel {
		return
	}
	if then := nd.then.Regular(); then != NilHandle {
		m.markFrom(marked, then.index())
	}
	if els := nd.els.Regular(); els != NilHandle {
		m.markFrom(marked, els.index())
	}
}

// sweep walks every level's unique table, reclaiming unmarked zero-ref
// nodes. ADD terminals (level == terminalLevel, index != ONE's) also sit
// outside any levelTable's reach (they are only reachable via addTerminals),
// so they are collected in a dedicated pass.
func (m *Manager) sweep(marked []bool) int {
	freed := 0
	for lvl := 1; lvl <= m.nvars; lvl++ {
		lt := m.levels[lvl]
		for b := range lt.buckets {
			idx := lt.buckets[b]
			for idx != 0 {
				next := m.store.nodes[idx].chainNext
				if !marked[idx] {
					lt.remove(m.store, idx, m.store.nodes[idx].then, m.store.nodes[idx].els)
					m.store.free(idx)
					freed++
				}
				idx = next
			}
		}
	}
	for bits, h := range m.addTerminals {
		idx := h.index()
		if idx == m.ONE.index() {
			continue
		}
		if !marked[idx] {
			delete(m.addTerminals, bits)
			m.store.free(idx)
			freed++
		}
	}
	return freed
}

// ClearCache discards every memoized result without running a full GC pass.
func (m *Manager) ClearCache() {
	m.cache.clear()
}
