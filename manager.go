// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"go.uber.org/zap"
)

// Manager owns the node arena, every per-level unique table, the shared
// memoization cache, the variable ordering, and the constants and counters
// that the BDD/ADD/ZDD kernels operate on. A Manager is not safe for
// concurrent use: the single-threaded cooperative model of §5 assumes
// exclusive access from one execution context.
type Manager struct {
	store  *store
	levels []*levelTable // 1-indexed, levels[0] unused

	cache *opCache

	nvars   int
	levelOf []int32 // levelOf[var] -> level, 0-indexed by var
	varAt   []int   // varAt[level] -> var, 1-indexed by level

	ithvar    []Handle // lazily-built BDD projections, one per variable
	addithvar []Handle // lazily-built ADD projections

	addTerminals map[uint64]Handle // bit pattern of value -> terminal handle

	ONE, ZERO Handle

	deadCount   int
	gcCount     int
	replacerSeq int32

	cfg    *configs
	logger *zap.SugaredLogger
	err    error
}

// New builds a manager configured for nvars variables (levels 1..nvars;
// variable i and level i+1 coincide under the initial identity ordering).
func New(nvars int, options ...func(*configs)) (*Manager, error) {
	cfg := makeconfigs(options...)
	m := &Manager{
		store:        newStore(cfg.nodesize),
		levels:       make([]*levelTable, nvars+2), // +1 for 1-indexing, +1 headroom for terminalLevel bucket never used
		nvars:        nvars,
		levelOf:      make([]int32, nvars),
		varAt:        make([]int, nvars+1),
		ithvar:       make([]Handle, nvars),
		addithvar:    make([]Handle, nvars),
		addTerminals: make(map[uint64]Handle),
		cfg:          cfg,
		logger:       cfg.logger,
	}
	for lvl := 1; lvl <= nvars; lvl++ {
		m.levels[lvl] = newLevelTable(primeGte(4))
	}
	for v := 0; v < nvars; v++ {
		m.levelOf[v] = int32(v + 1)
		m.varAt[v+1] = v
		m.ithvar[v] = NilHandle
		m.addithvar[v] = NilHandle
	}
	m.cache = newOpCache(cfg.cachesize)

	idx, ok := m.store.alloc()
	if !ok {
		return nil, ErrStoreExhausted
	}
	m.store.nodes[idx] = node{level: terminalLevel, then: NilHandle, els: NilHandle, value: 1.0}
	m.ONE = handleOf(idx, false)
	m.ZERO = m.ONE.Complement()

	return m, nil
}

func (m *Manager) node(h Handle) *node {
	return &m.store.nodes[h.index()]
}

func (m *Manager) levelOfHandle(h Handle) int32 {
	return m.node(h).level
}

// Varnum returns the number of variables the manager was built with.
func (m *Manager) Varnum() int {
	return m.nvars
}

func (m *Manager) checkVar(op string, v int) error {
	if v < 0 || v >= m.nvars {
		return m.errVarOutOfRange(op, v)
	}
	return nil
}

// True returns the BDD constant ONE.
func (m *Manager) True() Handle { return m.ONE }

// False returns the BDD constant ZERO.
func (m *Manager) False() Handle { return m.ZERO }

// Ithvar returns the BDD projection function for variable v: the node that
// is true exactly when v is true. Results are cached per variable, though
// the spec leaves that caching optional (handle equality follows from
// unique-table canonicalization regardless).
func (m *Manager) Ithvar(v int) (Handle, error) {
	if err := m.checkVar("Ithvar", v); err != nil {
		return NilHandle, err
	}
	if m.ithvar[v].Valid() {
		return m.ithvar[v], nil
	}
	h, err := m.uniqueBDD(m.levelOf[v], m.ONE, m.ZERO)
	if err != nil {
		return NilHandle, err
	}
	m.ithvar[v] = h
	return h, nil
}

// NIthvar returns the negation of Ithvar(v).
func (m *Manager) NIthvar(v int) (Handle, error) {
	h, err := m.Ithvar(v)
	if err != nil {
		return NilHandle, err
	}
	return h.Complement(), nil
}

// allocNode pulls a fresh slot out of the arena, growing it (within the
// configured bounds) when the free list is empty.
func (m *Manager) allocNode(level int32, then, els Handle, value float64) (int32, error) {
	idx, ok := m.store.alloc()
	if !ok {
		if err := m.growStore(); err != nil {
			return 0, err
		}
		idx, ok = m.store.alloc()
		if !ok {
			return 0, m.errStoreExhausted("allocNode")
		}
	}
	m.store.nodes[idx] = node{level: level, then: then, els: els, value: value}
	return idx, nil
}

func (m *Manager) growStore() error {
	cur := m.store.size()
	if m.cfg.maxnodesize > 0 && cur >= m.cfg.maxnodesize {
		return m.errStoreExhausted("growStore")
	}
	increase := cur
	if m.cfg.maxnodeincrease > 0 && increase > m.cfg.maxnodeincrease {
		increase = m.cfg.maxnodeincrease
	}
	newSize := cur + increase
	if m.cfg.maxnodesize > 0 && newSize > m.cfg.maxnodesize {
		newSize = m.cfg.maxnodesize
	}
	if newSize <= cur {
		return m.errStoreExhausted("growStore")
	}
	m.store.grow(newSize)
	m.logger.Debugw("grew node store", "from", cur, "to", newSize)
	return nil
}

// uniqueBDD implements lookup_or_create (§4.3) with the else-edge
// complement-sign normalization chosen in SPEC_FULL §9.
func (m *Manager) uniqueBDD(level int32, then, els Handle) (Handle, error) {
	if then == els {
		return then, nil
	}
	comp := false
	if els.IsComplemented() {
		then, els, comp = then.Complement(), els.Complement(), true
	}
	lt := m.levels[level]
	if idx := lt.find(m.store, then, els); idx != 0 {
		m.traceUnique(level, true)
		return handleOf(idx, comp), nil
	}
	m.traceUnique(level, false)
	idx, err := m.allocNode(level, then, els, 0)
	if err != nil {
		return NilHandle, err
	}
	lt.insert(m.store, idx, then, els)
	if lt.overloaded() {
		lt.rehash(m.store, len(lt.buckets)*2)
	}
	return handleOf(idx, comp), nil
}

// uniqueADD is lookup_or_create for ADD internal nodes: same Shannon
// reduction as BDD, no complement edges.
func (m *Manager) uniqueADD(level int32, then, els Handle) (Handle, error) {
	if then == els {
		return then, nil
	}
	lt := m.levels[level]
	if idx := lt.find(m.store, then, els); idx != 0 {
		return handleOf(idx, false), nil
	}
	idx, err := m.allocNode(level, then, els, 0)
	if err != nil {
		return NilHandle, err
	}
	lt.insert(m.store, idx, then, els)
	if lt.overloaded() {
		lt.rehash(m.store, len(lt.buckets)*2)
	}
	return handleOf(idx, false), nil
}

// uniqueZDD is zdd_lookup_or_create: suppress when the then-child is ZERO.
func (m *Manager) uniqueZDD(level int32, then, els Handle) (Handle, error) {
	if then == m.ZERO {
		return els, nil
	}
	lt := m.levels[level]
	if idx := lt.find(m.store, then, els); idx != 0 {
		return handleOf(idx, false), nil
	}
	idx, err := m.allocNode(level, then, els, 0)
	if err != nil {
		return NilHandle, err
	}
	lt.insert(m.store, idx, then, els)
	if lt.overloaded() {
		lt.rehash(m.store, len(lt.buckets)*2)
	}
	return handleOf(idx, false), nil
}

// AddRef increments h's root reference count, protecting it (and everything
// it reaches) across future GC calls.
func (m *Manager) AddRef(h Handle) Handle {
	if h.Regular() != m.ONE {
		m.node(h.Regular()).refcount++
	}
	m.maybeGC()
	return h
}

// DelRef decrements h's root reference count. Dropping the last reference
// does not reclaim the node immediately; it only makes it eligible for the
// next GC pass.
func (m *Manager) DelRef(h Handle) Handle {
	if h.Regular() == m.ONE {
		return h
	}
	nd := m.node(h.Regular())
	if nd.refcount == 0 {
		return h
	}
	nd.refcount--
	if nd.refcount == 0 {
		m.deadCount++
	}
	return h
}

// maybeGC runs GC when the free fraction of the arena drops below the
// configured Minfreenodes percentage, BuDDy's own trigger condition.
// Called only from AddRef-adjacent, non-recursive entry points (never from
// inside a kernel's recursion), so in-flight recursion results held in Go
// local variables are never at risk of being swept mid-call.
func (m *Manager) maybeGC() {
	size := m.store.size()
	if size == 0 {
		return
	}
	free := size - m.store.live()
	if free*100 < m.cfg.minfreenodes*size {
		m.GC()
	}
}

// Stats returns a human-readable summary, in the spirit of the teacher's
// Stats() string method.
func (m *Manager) Stats() string {
	return zapStatsLine(m)
}
