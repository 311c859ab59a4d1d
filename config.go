// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "go.uber.org/zap"

// configs holds the tunables a Manager is built with, set through the
// functional options below. Defaults follow BuDDy's: a modest initial node
// store, a cache sized as a fraction of it, and a generous but bounded
// growth policy.
type configs struct {
	nodesize        int
	cachesize       int
	cacheratio      int
	maxnodesize     int
	maxnodeincrease int
	minfreenodes    int
	logger          *zap.SugaredLogger
}

const (
	defaultNodesize        = 1 << 12
	defaultCachesize       = 1 << 12
	defaultCacheratio      = 0 // 0 disables the ratio-derived cache sizing
	defaultMaxnodesize     = 0 // 0 means unbounded
	defaultMaxnodeincrease = 1 << 20
	defaultMinfreenodes    = 20
)

func makeconfigs(options ...func(*configs)) *configs {
	c := &configs{
		nodesize:        defaultNodesize,
		cachesize:       defaultCachesize,
		cacheratio:      defaultCacheratio,
		maxnodesize:     defaultMaxnodesize,
		maxnodeincrease: defaultMaxnodeincrease,
		minfreenodes:    defaultMinfreenodes,
		logger:          zap.NewNop().Sugar(),
	}
	for _, opt := range options {
		opt(c)
	}
	if c.cacheratio > 0 {
		c.cachesize = c.nodesize / c.cacheratio
	}
	return c
}

// Nodesize sets the initial size of the node arena.
func Nodesize(n int) func(*configs) {
	return func(c *configs) { c.nodesize = n }
}

// Cachesize sets the initial size of the memoization cache (rounded up to a
// power of two).
func Cachesize(n int) func(*configs) {
	return func(c *configs) { c.cachesize = n }
}

// Cacheratio derives the cache size from the node size as nodesize/ratio,
// overriding any explicit Cachesize, whichever order the options come in.
func Cacheratio(ratio int) func(*configs) {
	return func(c *configs) { c.cacheratio = ratio }
}

// Maxnodesize bounds how large the node arena may grow; 0 means unbounded.
func Maxnodesize(n int) func(*configs) {
	return func(c *configs) { c.maxnodesize = n }
}

// Maxnodeincrease bounds how many nodes a single growth step may add.
func Maxnodeincrease(n int) func(*configs) {
	return func(c *configs) { c.maxnodeincrease = n }
}

// Minfreenodes sets the percentage of free nodes (out of the arena size)
// below which maybe_gc considers the store under pressure.
func Minfreenodes(percent int) func(*configs) {
	return func(c *configs) { c.minfreenodes = percent }
}

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(l *zap.SugaredLogger) func(*configs) {
	return func(c *configs) { c.logger = l }
}
