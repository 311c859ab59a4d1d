// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"math/big"
	"sort"
)

// ZDDEmpty returns the empty family of sets.
func (m *Manager) ZDDEmpty() Handle { return m.ZERO }

// ZDDBase returns the family containing only the empty set.
func (m *Manager) ZDDBase() Handle { return m.ONE }

// ZDDSingleton returns the family {{v}}.
func (m *Manager) ZDDSingleton(v int) (Handle, error) {
	if err := m.checkVar("ZDDSingleton", v); err != nil {
		return NilHandle, err
	}
	return m.uniqueZDD(m.levelOf[v], m.ONE, m.ZERO)
}

// zddCofactors splits h into (T, E) at level top: T for "contains the
// variable at top", E for "does not" (§4.8). An operand whose own level is
// deeper than top implicitly omits that variable: T = ZERO, E = operand.
func (m *Manager) zddCofactors(h Handle, top int32) (Handle, Handle) {
	if m.levelOfHandle(h) != top {
		return m.ZERO, h
	}
	nd := m.node(h)
	return nd.then, nd.els
}

func (m *Manager) zddUnion(f, g Handle) (Handle, error) {
	switch {
	case f == m.ZERO:
		return g, nil
	case g == m.ZERO:
		return f, nil
	case f == g:
		return f, nil
	}
	if f > g {
		f, g = g, f
	}
	if cached, ok := m.cache.lookup(tagZDDUnion, f, g, NilHandle); ok {
		return cached, nil
	}
	top := m.levelOfHandle(f)
	if l := m.levelOfHandle(g); l < top {
		top = l
	}
	fT, fE := m.zddCofactors(f, top)
	gT, gE := m.zddCofactors(g, top)
	tR, err := m.zddUnion(fT, gT)
	if err != nil {
		return NilHandle, err
	}
	eR, err := m.zddUnion(fE, gE)
	if err != nil {
		return NilHandle, err
	}
	res, err := m.uniqueZDD(top, tR, eR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagZDDUnion, f, g, NilHandle, res)
	return res, nil
}

func (m *Manager) zddIntersect(f, g Handle) (Handle, error) {
	switch {
	case f == m.ZERO || g == m.ZERO:
		return m.ZERO, nil
	case f == g:
		return f, nil
	}
	if f > g {
		f, g = g, f
	}
	if cached, ok := m.cache.lookup(tagZDDIntersect, f, g, NilHandle); ok {
		return cached, nil
	}
	top := m.levelOfHandle(f)
	if l := m.levelOfHandle(g); l < top {
		top = l
	}
	fT, fE := m.zddCofactors(f, top)
	gT, gE := m.zddCofactors(g, top)
	tR, err := m.zddIntersect(fT, gT)
	if err != nil {
		return NilHandle, err
	}
	eR, err := m.zddIntersect(fE, gE)
	if err != nil {
		return NilHandle, err
	}
	res, err := m.uniqueZDD(top, tR, eR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagZDDIntersect, f, g, NilHandle, res)
	return res, nil
}

func (m *Manager) zddDifference(f, g Handle) (Handle, error) {
	switch {
	case f == m.ZERO:
		return m.ZERO, nil
	case g == m.ZERO:
		return f, nil
	case f == g:
		return m.ZERO, nil
	}
	if cached, ok := m.cache.lookup(tagZDDDifference, f, g, NilHandle); ok {
		return cached, nil
	}
	top := m.levelOfHandle(f)
	if l := m.levelOfHandle(g); l < top {
		top = l
	}
	fT, fE := m.zddCofactors(f, top)
	gT, gE := m.zddCofactors(g, top)
	tR, err := m.zddDifference(fT, gT)
	if err != nil {
		return NilHandle, err
	}
	eR, err := m.zddDifference(fE, gE)
	if err != nil {
		return NilHandle, err
	}
	res, err := m.uniqueZDD(top, tR, eR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagZDDDifference, f, g, NilHandle, res)
	return res, nil
}

// ZDDUnion, ZDDIntersection and ZDDDifference are the three binary set
// operations of §4.8.
func (m *Manager) ZDDUnion(f, g Handle) (Handle, error) {
	if err := m.checkZDDHandles("ZDDUnion", f, g); err != nil {
		return NilHandle, err
	}
	return m.zddUnion(f, g)
}

func (m *Manager) ZDDIntersection(f, g Handle) (Handle, error) {
	if err := m.checkZDDHandles("ZDDIntersection", f, g); err != nil {
		return NilHandle, err
	}
	return m.zddIntersect(f, g)
}

func (m *Manager) ZDDDifference(f, g Handle) (Handle, error) {
	if err := m.checkZDDHandles("ZDDDifference", f, g); err != nil {
		return NilHandle, err
	}
	return m.zddDifference(f, g)
}

func (m *Manager) checkZDDHandles(op string, f, g Handle) error {
	if err := m.checkHandle(op, f); err != nil {
		return err
	}
	return m.checkHandle(op, g)
}

func (m *Manager) zddSubset1(f Handle, level int32) (Handle, error) {
	lvl := m.levelOfHandle(f)
	if lvl == terminalLevel || level < lvl {
		return m.ZERO, nil
	}
	nd := m.node(f)
	if lvl == level {
		return nd.then, nil
	}
	if cached, ok := m.cache.lookup(tagZDDSubset1, f, Handle(level), NilHandle); ok {
		return cached, nil
	}
	thenR, err := m.zddSubset1(nd.then, level)
	if err != nil {
		return NilHandle, err
	}
	elseR, err := m.zddSubset1(nd.els, level)
	if err != nil {
		return NilHandle, err
	}
	res, err := m.uniqueZDD(lvl, thenR, elseR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagZDDSubset1, f, Handle(level), NilHandle, res)
	return res, nil
}

func (m *Manager) zddSubset0(f Handle, level int32) (Handle, error) {
	lvl := m.levelOfHandle(f)
	if lvl == terminalLevel || level < lvl {
		return f, nil
	}
	nd := m.node(f)
	if lvl == level {
		return nd.els, nil
	}
	if cached, ok := m.cache.lookup(tagZDDSubset0, f, Handle(level), NilHandle); ok {
		return cached, nil
	}
	thenR, err := m.zddSubset0(nd.then, level)
	if err != nil {
		return NilHandle, err
	}
	elseR, err := m.zddSubset0(nd.els, level)
	if err != nil {
		return NilHandle, err
	}
	res, err := m.uniqueZDD(lvl, thenR, elseR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagZDDSubset0, f, Handle(level), NilHandle, res)
	return res, nil
}

// ZDDSubset1 returns the sets of f that contain v, with v removed.
func (m *Manager) ZDDSubset1(f Handle, v int) (Handle, error) {
	if err := m.checkVar("ZDDSubset1", v); err != nil {
		return NilHandle, err
	}
	if err := m.checkHandle("ZDDSubset1", f); err != nil {
		return NilHandle, err
	}
	return m.zddSubset1(f, m.levelOf[v])
}

// ZDDSubset0 returns the sets of f that omit v.
func (m *Manager) ZDDSubset0(f Handle, v int) (Handle, error) {
	if err := m.checkVar("ZDDSubset0", v); err != nil {
		return NilHandle, err
	}
	if err := m.checkHandle("ZDDSubset0", f); err != nil {
		return NilHandle, err
	}
	return m.zddSubset0(f, m.levelOf[v])
}

func (m *Manager) zddChange(f Handle, level int32) (Handle, error) {
	lvl := m.levelOfHandle(f)
	if lvl == terminalLevel || level < lvl {
		return m.uniqueZDD(level, f, m.ZERO)
	}
	nd := m.node(f)
	if lvl == level {
		return m.uniqueZDD(level, nd.els, nd.then)
	}
	if cached, ok := m.cache.lookup(tagZDDChange, f, Handle(level), NilHandle); ok {
		return cached, nil
	}
	thenR, err := m.zddChange(nd.then, level)
	if err != nil {
		return NilHandle, err
	}
	elseR, err := m.zddChange(nd.els, level)
	if err != nil {
		return NilHandle, err
	}
	res, err := m.uniqueZDD(lvl, thenR, elseR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagZDDChange, f, Handle(level), NilHandle, res)
	return res, nil
}

// ZDDChange swaps presence/absence of v in every set of f.
func (m *Manager) ZDDChange(f Handle, v int) (Handle, error) {
	if err := m.checkVar("ZDDChange", v); err != nil {
		return NilHandle, err
	}
	if err := m.checkHandle("ZDDChange", f); err != nil {
		return NilHandle, err
	}
	return m.zddChange(f, m.levelOf[v])
}

// ZDDCount returns the number of sets represented by f, exactly (§4.8/§9).
func (m *Manager) ZDDCount(f Handle) *big.Int {
	memo := make(map[Handle]*big.Int)
	var rec func(Handle) *big.Int
	rec = func(h Handle) *big.Int {
		if h == m.ZERO {
			return big.NewInt(0)
		}
		if h == m.ONE {
			return big.NewInt(1)
		}
		if v, ok := memo[h]; ok {
			return v
		}
		nd := m.node(h)
		res := new(big.Int).Add(rec(nd.then), rec(nd.els))
		memo[h] = res
		return res
	}
	return rec(f)
}

// ZDDFromSets builds the family containing exactly the given sets.
func (m *Manager) ZDDFromSets(sets [][]int) (Handle, error) {
	res := m.ZERO
	for _, set := range sets {
		vars := append([]int(nil), set...)
		for _, v := range vars {
			if err := m.checkVar("ZDDFromSets", v); err != nil {
				return NilHandle, err
			}
		}
		sort.Slice(vars, func(i, j int) bool { return m.levelOf[vars[i]] > m.levelOf[vars[j]] })
		acc := m.ONE
		for _, v := range vars {
			var err error
			acc, err = m.uniqueZDD(m.levelOf[v], acc, m.ZERO)
			if err != nil {
				return NilHandle, err
			}
		}
		var err error
		res, err = m.zddUnion(res, acc)
		if err != nil {
			return NilHandle, err
		}
	}
	return res, nil
}

// ZDDToSets enumerates every set represented by f, each normalized by sort.
func (m *Manager) ZDDToSets(f Handle) [][]int {
	var results [][]int
	var stack []int
	var rec func(Handle)
	rec = func(h Handle) {
		if h == m.ZERO {
			return
		}
		if h == m.ONE {
			set := append([]int(nil), stack...)
			sort.Ints(set)
			results = append(results, set)
			return
		}
		nd := m.node(h)
		rec(nd.els)
		stack = append(stack, m.varAt[nd.level])
		rec(nd.then)
		stack = stack[:len(stack)-1]
	}
	rec(f)
	return results
}
