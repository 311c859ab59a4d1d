// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

// Replacer renames BDD variables, mapping each old variable's level to a new
// one. It is built once with NewReplacer and can be applied to any number of
// handles with Replace. Grounded on the teacher's replace.go/NewReplacer:
// BDD-only, composing with the shared store at no new kernel concept.
type Replacer struct {
	id       int32
	levelMap map[int32]int32
}

// NewReplacer builds a Replacer mapping each oldvars[i] to newvars[i].
func (m *Manager) NewReplacer(oldvars, newvars []int) (*Replacer, error) {
	if len(oldvars) != len(newvars) {
		return nil, m.errBadArgument("NewReplacer", "oldvars and newvars must have equal length")
	}
	lm := make(map[int32]int32, len(oldvars))
	for i, ov := range oldvars {
		if err := m.checkVar("NewReplacer", ov); err != nil {
			return nil, err
		}
		if err := m.checkVar("NewReplacer", newvars[i]); err != nil {
			return nil, err
		}
		lm[m.levelOf[ov]] = m.levelOf[newvars[i]]
	}
	m.replacerSeq++
	return &Replacer{id: m.replacerSeq, levelMap: lm}, nil
}

// Replace applies r to every variable occurring in f.
func (m *Manager) Replace(f Handle, r *Replacer) (Handle, error) {
	if err := m.checkHandle("Replace", f); err != nil {
		return NilHandle, err
	}
	return m.replace(f, r)
}

func (m *Manager) replace(f Handle, r *Replacer) (Handle, error) {
	if m.levelOfHandle(f) == terminalLevel {
		return f, nil
	}
	if cached, ok := m.cache.lookup(tagBDDReplace, f, Handle(r.id), NilHandle); ok {
		return cached, nil
	}
	nd := m.node(f.Regular())
	then, els := nd.then, nd.els
	if f.IsComplemented() {
		then, els = then.Complement(), els.Complement()
	}
	thenR, err := m.replace(then, r)
	if err != nil {
		return NilHandle, err
	}
	elseR, err := m.replace(els, r)
	if err != nil {
		return NilHandle, err
	}
	newlevel := nd.level
	if nl, ok := r.levelMap[nd.level]; ok {
		newlevel = nl
	}
	res, err := m.correctify(newlevel, thenR, elseR)
	if err != nil {
		return NilHandle, err
	}
	m.cache.insert(tagBDDReplace, f, Handle(r.id), NilHandle, res)
	return res, nil
}

// correctify rebuilds a node at `level` with children n1, n2, interleaving
// `level` among the children's own levels when the renaming in Replace
// pushed `level` somewhere other than strictly above both (the same
// interleave the teacher's correctify performs, generalized to the manager's
// cofactors helper).
func (m *Manager) correctify(level int32, n1, n2 Handle) (Handle, error) {
	l1 := m.levelOfHandle(n1)
	l2 := m.levelOfHandle(n2)
	if l1 > level && l2 > level {
		return m.uniqueBDD(level, n1, n2)
	}
	if l1 == l2 {
		n1T, n1E := m.cofactors(n1, l1)
		n2T, n2E := m.cofactors(n2, l1)
		thenR, err := m.correctify(level, n1T, n2T)
		if err != nil {
			return NilHandle, err
		}
		elseR, err := m.correctify(level, n1E, n2E)
		if err != nil {
			return NilHandle, err
		}
		return m.uniqueBDD(l1, thenR, elseR)
	}
	if l1 < l2 {
		n1T, n1E := m.cofactors(n1, l1)
		thenR, err := m.correctify(level, n1T, n2)
		if err != nil {
			return NilHandle, err
		}
		elseR, err := m.correctify(level, n1E, n2)
		if err != nil {
			return NilHandle, err
		}
		return m.uniqueBDD(l1, thenR, elseR)
	}
	n2T, n2E := m.cofactors(n2, l2)
	thenR, err := m.correctify(level, n1, n2T)
	if err != nil {
		return NilHandle, err
	}
	elseR, err := m.correctify(level, n1, n2E)
	if err != nil {
		return NilHandle, err
	}
	return m.uniqueBDD(l2, thenR, elseR)
}
