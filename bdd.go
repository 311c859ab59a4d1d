// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"math/big"
	"sort"
)

// cofactors returns the (then, else) pair of h's cofactor with respect to
// top: h's own children, complement-adjusted, if h's level equals top;
// otherwise h does not depend on the variable at top and is its own
// cofactor in both directions.
func (m *Manager) cofactors(h Handle, top int32) (Handle, Handle) {
	if m.levelOfHandle(h) != top {
		return h, h
	}
	nd := m.node(h)
	then, els := nd.then, nd.els
	if h.IsComplemented() {
		then, els = then.Complement(), els.Complement()
	}
	return then, els
}

// Ite computes f ? g : h, the central BDD operation (§4.6).
func (m *Manager) Ite(f, g, h Handle) (Handle, error) {
	for _, op := range []Handle{f, g, h} {
		if err := m.checkHandle("Ite", op); err != nil {
			return NilHandle, err
		}
	}
	return m.ite(f, g, h)
}

func (m *Manager) ite(f, g, h Handle) (Handle, error) {
	switch f {
	case m.ONE:
		return g, nil
	case m.ZERO:
		return h, nil
	}
	if g == h {
		return g, nil
	}
	switch {
	case g == m.ONE && h == m.ZERO:
		return f, nil
	case g == m.ZERO && h == m.ONE:
		return f.Complement(), nil
	}
	switch {
	case f == g:
		return m.or(f, h)
	case f == h:
		return m.and(f, g)
	case f == g.Complement():
		return m.and(f.Complement(), h)
	}
	if f.IsComplemented() {
		f, g, h = f.Complement(), h, g
	}
	if cached, ok := m.cache.lookup(tagBDDIte, f, g, h); ok {
		return cached, nil
	}
	top := m.levelOfHandle(f)
	if l := m.levelOfHandle(g); l < top {
		top = l
	}
	if l := m.levelOfHandle(h); l < top {
		top = l
	}
	fT, fE := m.cofactors(f, top)
	gT, gE := m.cofactors(g, top)
	hT, hE := m.cofactors(h, top)
	thenR, err := m.ite(fT, gT, hT)
	if err != nil {
		return NilHandle, err
	}
	elseR, err := m.ite(fE, gE, hE)
	if err != nil {
		return NilHandle, err
	}
	res, err := m.uniqueBDD(top, thenR, elseR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagBDDIte, f, g, h, res)
	return res, nil
}

func (m *Manager) and(a, b Handle) (Handle, error) {
	switch {
	case a == m.ZERO || b == m.ZERO:
		return m.ZERO, nil
	case a == m.ONE:
		return b, nil
	case b == m.ONE:
		return a, nil
	case a == b:
		return a, nil
	case a == b.Complement():
		return m.ZERO, nil
	}
	if a > b {
		a, b = b, a
	}
	if cached, ok := m.cache.lookup(tagBDDAnd, a, b, NilHandle); ok {
		return cached, nil
	}
	top := m.levelOfHandle(a)
	if l := m.levelOfHandle(b); l < top {
		top = l
	}
	aT, aE := m.cofactors(a, top)
	bT, bE := m.cofactors(b, top)
	thenR, err := m.and(aT, bT)
	if err != nil {
		return NilHandle, err
	}
	elseR, err := m.and(aE, bE)
	if err != nil {
		return NilHandle, err
	}
	res, err := m.uniqueBDD(top, thenR, elseR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagBDDAnd, a, b, NilHandle, res)
	return res, nil
}

func (m *Manager) or(a, b Handle) (Handle, error) {
	switch {
	case a == m.ONE || b == m.ONE:
		return m.ONE, nil
	case a == m.ZERO:
		return b, nil
	case b == m.ZERO:
		return a, nil
	case a == b:
		return a, nil
	case a == b.Complement():
		return m.ONE, nil
	}
	if a > b {
		a, b = b, a
	}
	if cached, ok := m.cache.lookup(tagBDDOr, a, b, NilHandle); ok {
		return cached, nil
	}
	top := m.levelOfHandle(a)
	if l := m.levelOfHandle(b); l < top {
		top = l
	}
	aT, aE := m.cofactors(a, top)
	bT, bE := m.cofactors(b, top)
	thenR, err := m.or(aT, bT)
	if err != nil {
		return NilHandle, err
	}
	elseR, err := m.or(aE, bE)
	if err != nil {
		return NilHandle, err
	}
	res, err := m.uniqueBDD(top, thenR, elseR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagBDDOr, a, b, NilHandle, res)
	return res, nil
}

func (m *Manager) xor(a, b Handle) (Handle, error) {
	switch {
	case a == m.ZERO:
		return b, nil
	case b == m.ZERO:
		return a, nil
	case a == b:
		return m.ZERO, nil
	case a == b.Complement():
		return m.ONE, nil
	case a == m.ONE:
		return b.Complement(), nil
	case b == m.ONE:
		return a.Complement(), nil
	}
	if a > b {
		a, b = b, a
	}
	if cached, ok := m.cache.lookup(tagBDDXor, a, b, NilHandle); ok {
		return cached, nil
	}
	top := m.levelOfHandle(a)
	if l := m.levelOfHandle(b); l < top {
		top = l
	}
	aT, aE := m.cofactors(a, top)
	bT, bE := m.cofactors(b, top)
	thenR, err := m.xor(aT, bT)
	if err != nil {
		return NilHandle, err
	}
	elseR, err := m.xor(aE, bE)
	if err != nil {
		return NilHandle, err
	}
	res, err := m.uniqueBDD(top, thenR, elseR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagBDDXor, a, b, NilHandle, res)
	return res, nil
}

// And folds the binary AND over one or more handles (the identity, True, is
// returned for zero arguments).
func (m *Manager) And(fs ...Handle) (Handle, error) {
	return m.fold(m.and, fs)
}

// Or folds the binary OR over one or more handles.
func (m *Manager) Or(fs ...Handle) (Handle, error) {
	return m.fold(m.or, fs)
}

// Xor folds the binary XOR over one or more handles.
func (m *Manager) Xor(fs ...Handle) (Handle, error) {
	return m.fold(m.xor, fs)
}

func (m *Manager) fold(op func(Handle, Handle) (Handle, error), fs []Handle) (Handle, error) {
	if len(fs) == 0 {
		return m.ONE, nil
	}
	for _, f := range fs {
		if err := m.checkHandle("fold", f); err != nil {
			return NilHandle, err
		}
	}
	res := fs[0]
	for _, f := range fs[1:] {
		var err error
		res, err = op(res, f)
		if err != nil {
			return NilHandle, err
		}
	}
	return res, nil
}

// Not is O(1): it only flips the complement bit.
func (m *Manager) Not(f Handle) Handle {
	return f.Complement()
}

// Imp computes logical implication a -> b.
func (m *Manager) Imp(a, b Handle) (Handle, error) {
	if err := m.checkHandle("Imp", a); err != nil {
		return NilHandle, err
	}
	if err := m.checkHandle("Imp", b); err != nil {
		return NilHandle, err
	}
	return m.ite(a, b, m.ONE)
}

// Equiv computes logical biconditional a <-> b.
func (m *Manager) Equiv(a, b Handle) (Handle, error) {
	if err := m.checkHandle("Equiv", a); err != nil {
		return NilHandle, err
	}
	if err := m.checkHandle("Equiv", b); err != nil {
		return NilHandle, err
	}
	return m.ite(a, b, b.Complement())
}

// Restrict computes f with variable v fixed to b (f|v=b).
func (m *Manager) Restrict(f Handle, v int, b bool) (Handle, error) {
	if err := m.checkVar("Restrict", v); err != nil {
		return NilHandle, err
	}
	if err := m.checkHandle("Restrict", f); err != nil {
		return NilHandle, err
	}
	return m.restrict(f, m.levelOf[v], b)
}

func boolHandle(b bool) Handle {
	if b {
		return Handle(1)
	}
	return Handle(0)
}

func (m *Manager) restrict(f Handle, level int32, b bool) (Handle, error) {
	lvl := m.levelOfHandle(f)
	if lvl == terminalLevel || level < lvl {
		return f, nil
	}
	if level == lvl {
		then, els := m.cofactors(f, lvl)
		if b {
			return then, nil
		}
		return els, nil
	}
	if cached, ok := m.cache.lookup(tagBDDRestrict, f, Handle(level), boolHandle(b)); ok {
		return cached, nil
	}
	then, els := m.cofactors(f, lvl)
	thenR, err := m.restrict(then, level, b)
	if err != nil {
		return NilHandle, err
	}
	elseR, err := m.restrict(els, level, b)
	if err != nil {
		return NilHandle, err
	}
	res, err := m.uniqueBDD(lvl, thenR, elseR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagBDDRestrict, f, Handle(level), boolHandle(b), res)
	return res, nil
}

// Makeset builds the cube (the AND of each variable's projection function)
// used to pass a variable set to Exist/Forall, per the teacher's
// Makeset/Scanset convention.
func (m *Manager) Makeset(vars []int) (Handle, error) {
	sorted := append([]int(nil), vars...)
	for _, v := range sorted {
		if err := m.checkVar("Makeset", v); err != nil {
			return NilHandle, err
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return m.levelOf[sorted[i]] > m.levelOf[sorted[j]] })
	cube := m.ONE
	for _, v := range sorted {
		iv, err := m.Ithvar(v)
		if err != nil {
			return NilHandle, err
		}
		cube, err = m.and(iv, cube)
		if err != nil {
			return NilHandle, err
		}
	}
	return cube, nil
}

// Scanset recovers the variable list a Makeset cube was built from.
func (m *Manager) Scanset(cube Handle) ([]int, error) {
	var vars []int
	cur := cube
	for cur != m.ONE {
		if cur == m.ZERO {
			return nil, m.errBadArgument("Scanset", "handle is not a variable cube")
		}
		nd := m.node(cur)
		then, els := m.cofactors(cur, nd.level)
		if els != m.ZERO {
			return nil, m.errBadArgument("Scanset", "handle is not a variable cube")
		}
		vars = append(vars, m.varAt[nd.level])
		cur = then
	}
	return vars, nil
}

// Exist existentially quantifies f over every variable in varset (a cube
// built with Makeset): f <- OR(f|v=0, f|v=1), iterated one variable at a
// time (§4.6 — order does not affect the result).
func (m *Manager) Exist(f, varset Handle) (Handle, error) {
	vars, err := m.Scanset(varset)
	if err != nil {
		return NilHandle, err
	}
	return m.quantify(f, vars, false)
}

// Forall universally quantifies f over every variable in varset.
func (m *Manager) Forall(f, varset Handle) (Handle, error) {
	vars, err := m.Scanset(varset)
	if err != nil {
		return NilHandle, err
	}
	return m.quantify(f, vars, true)
}

func (m *Manager) quantify(f Handle, vars []int, universal bool) (Handle, error) {
	res := f
	for _, v := range vars {
		level := m.levelOf[v]
		pos, err := m.restrict(res, level, true)
		if err != nil {
			return NilHandle, err
		}
		neg, err := m.restrict(res, level, false)
		if err != nil {
			return NilHandle, err
		}
		if universal {
			res, err = m.and(pos, neg)
		} else {
			res, err = m.or(pos, neg)
		}
		if err != nil {
			return NilHandle, err
		}
	}
	return res, nil
}

// Satcount counts the number of satisfying assignments of f over all of the
// manager's variables, exactly, via big.Int (§4.9/§9 big-integer counting).
func (m *Manager) Satcount(f Handle) *big.Int {
	memo := make(map[Handle]*big.Int)
	res := m.satcountRec(f, memo)
	top := m.levelOfHandle(f)
	if top == terminalLevel {
		top = int32(m.nvars) + 1
	}
	scale := new(big.Int).Lsh(big.NewInt(1), uint(top-1))
	return new(big.Int).Mul(res, scale)
}

func (m *Manager) satcountRec(f Handle, memo map[Handle]*big.Int) *big.Int {
	switch f {
	case m.ZERO:
		return big.NewInt(0)
	case m.ONE:
		return big.NewInt(1)
	}
	if v, ok := memo[f]; ok {
		return v
	}
	nd := m.node(f)
	then, els := nd.then, nd.els
	if f.IsComplemented() {
		then, els = then.Complement(), els.Complement()
	}
	thenLevel := m.levelOfHandle(then)
	if thenLevel == terminalLevel {
		thenLevel = int32(m.nvars) + 1
	}
	elsLevel := m.levelOfHandle(els)
	if elsLevel == terminalLevel {
		elsLevel = int32(m.nvars) + 1
	}
	thenCount := new(big.Int).Mul(m.satcountRec(then, memo), new(big.Int).Lsh(big.NewInt(1), uint(thenLevel-nd.level-1)))
	elsCount := new(big.Int).Mul(m.satcountRec(els, memo), new(big.Int).Lsh(big.NewInt(1), uint(elsLevel-nd.level-1)))
	res := new(big.Int).Add(thenCount, elsCount)
	memo[f] = res
	return res
}
