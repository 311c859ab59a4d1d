// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "math"

// CountNodes returns the number of distinct internal nodes reachable from f,
// terminals excluded (§4.9).
func (m *Manager) CountNodes(f Handle) int {
	seen := make(map[int32]bool)
	var rec func(Handle)
	rec = func(h Handle) {
		idx := h.index()
		if seen[idx] {
			return
		}
		nd := m.node(h)
		if nd.level == terminalLevel {
			return
		}
		seen[idx] = true
		rec(nd.then)
		rec(nd.els)
	}
	rec(f)
	return len(seen)
}

// CountPaths counts the number of distinct DAG paths from f to ONE, per the
// recurrence of §4.9. Returned as a float64 (CUDD's convention, per the §9
// design note permitting either representation).
func (m *Manager) CountPaths(f Handle) float64 {
	memo := make(map[Handle]float64)
	var rec func(Handle) float64
	rec = func(h Handle) float64 {
		if h == m.ZERO {
			return 0
		}
		if h == m.ONE {
			return 1
		}
		if v, ok := memo[h]; ok {
			return v
		}
		nd := m.node(h)
		then, els := nd.then, nd.els
		if h.IsComplemented() {
			then, els = then.Complement(), els.Complement()
		}
		res := rec(then) + rec(els)
		memo[h] = res
		return res
	}
	return rec(f)
}

// CountMinterms returns the number of points of the 2^n cube on which f is
// true (a count, not a fraction), accounting for variables skipped over an
// edge (§4.9).
func (m *Manager) CountMinterms(f Handle, n int) float64 {
	virtualTerminal := int32(n) + 1
	memo := make(map[Handle]float64)
	var rec func(Handle) float64
	rec = func(h Handle) float64 {
		if h == m.ZERO {
			return 0
		}
		if h == m.ONE {
			return 1
		}
		if v, ok := memo[h]; ok {
			return v
		}
		nd := m.node(h)
		then, els := nd.then, nd.els
		if h.IsComplemented() {
			then, els = then.Complement(), els.Complement()
		}
		thenLevel := m.levelOfHandle(then)
		if thenLevel == terminalLevel {
			thenLevel = virtualTerminal
		}
		elsLevel := m.levelOfHandle(els)
		if elsLevel == terminalLevel {
			elsLevel = virtualTerminal
		}
		res := rec(then)*math.Pow(2, float64(thenLevel-nd.level-1)) + rec(els)*math.Pow(2, float64(elsLevel-nd.level-1))
		memo[h] = res
		return res
	}
	top := m.levelOfHandle(f)
	if top == terminalLevel {
		top = virtualTerminal
	}
	return rec(f) * math.Pow(2, float64(top-1))
}
