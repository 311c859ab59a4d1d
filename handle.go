// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

// Handle is an opaque reference to a node in the manager's shared arena. The
// low bit is a complement flag (meaningful for BDDs only); the remaining
// bits hold the node's index in the arena. Index 0 is reserved and never
// allocated, so the zero Handle value never denotes a real node.
type Handle uint64

// NilHandle is the sentinel for "not present": used by the cache to mark an
// empty slot and returned by lookups that found nothing. It is distinct from
// every Handle a manager can produce, since a real handle's index bits are
// always strictly less than 1<<63.
const NilHandle Handle = ^Handle(0)

// handleOf builds a Handle from an arena slot index (as returned by
// store.alloc, always >= 1 since slot 0 is reserved) and a complement flag.
func handleOf(index int32, complemented bool) Handle {
	h := Handle(index) << 1
	if complemented {
		h |= 1
	}
	return h
}

// index recovers the arena slot index this handle refers to.
func (h Handle) index() int32 {
	return int32(uint64(h) >> 1)
}

// IsComplemented reports whether h carries the complement flag.
func (h Handle) IsComplemented() bool {
	return h&1 != 0
}

// Regular clears the complement flag.
func (h Handle) Regular() Handle {
	return h &^ 1
}

// Complement toggles the complement flag, the O(1) BDD negation.
func (h Handle) Complement() Handle {
	return h ^ 1
}

// Valid reports whether h is anything but the NilHandle sentinel. It does
// not imply the referent has not been reclaimed by GC: a client that wants
// that guarantee must AddRef the handle.
func (h Handle) Valid() bool {
	return h != NilHandle
}
