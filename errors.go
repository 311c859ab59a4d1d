// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"github.com/pkg/errors"
)

// Sentinel errors. Use errors.Is against these; the manager wraps them with
// github.com/pkg/errors to attach a stack trace and operation context at the
// point of failure.
var (
	ErrVarOutOfRange  = errors.New("xdd: variable index out of range")
	ErrStoreExhausted = errors.New("xdd: node store exhausted")
	ErrInvalidHandle  = errors.New("xdd: invalid handle")
	ErrBadArgument    = errors.New("xdd: bad argument")
)

// Err returns the first error encountered by the manager, or nil. Like
// BuDDy's sticky-error convention, once an error is recorded it is never
// overwritten: callers that ignore intermediate error returns (as is
// convenient when chaining many kernel calls) can check once at the end.
func (m *Manager) Err() error {
	return m.err
}

// Errored reports whether the manager has recorded an error.
func (m *Manager) Errored() bool {
	return m.err != nil
}

// seterror records err as the manager's sticky error if none is set yet, and
// returns it unchanged so call sites can `return xxx, m.seterror(err)`.
func (m *Manager) seterror(err error) error {
	if m.err == nil {
		m.err = err
	}
	return err
}

func (m *Manager) errVarOutOfRange(op string, v int) error {
	return m.seterror(errors.Wrapf(ErrVarOutOfRange, "%s: variable %d (have %d variables)", op, v, m.nvars))
}

func (m *Manager) errStoreExhausted(op string) error {
	return m.seterror(errors.Wrapf(ErrStoreExhausted, "%s", op))
}

func (m *Manager) errInvalidHandle(op string, h Handle) error {
	return m.seterror(errors.Wrapf(ErrInvalidHandle, "%s: handle %#x", op, uint64(h)))
}

// checkHandle validates that h could plausibly have come from this manager:
// not the NilHandle sentinel, and its arena index within the allocated
// store. It does not (cannot, without a live/free bitmap) detect a handle
// that pointed at a real node since reclaimed by GC; callers that need that
// guarantee must AddRef the handle across calls.
func (m *Manager) checkHandle(op string, h Handle) error {
	if h == NilHandle {
		return m.errInvalidHandle(op, h)
	}
	idx := h.index()
	if idx <= 0 || int(idx) >= m.store.size() {
		return m.errInvalidHandle(op, h)
	}
	return nil
}

func (m *Manager) errBadArgument(op string, reason string) error {
	return m.seterror(errors.Wrapf(ErrBadArgument, "%s: %s", op, reason))
}
