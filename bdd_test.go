// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func threeVars(t *testing.T, m *Manager) (x0, x1, x2 Handle) {
	t.Helper()
	var err error
	x0, err = m.Ithvar(0)
	require.NoError(t, err)
	x1, err = m.Ithvar(1)
	require.NoError(t, err)
	x2, err = m.Ithvar(2)
	require.NoError(t, err)
	return
}

func TestIteTerminalLaws(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	x0, _, _ := threeVars(t, m)

	r, err := m.Ite(m.ONE, x0, m.ZERO)
	require.NoError(t, err)
	require.Equal(t, x0, r)

	r, err = m.Ite(m.ZERO, m.ZERO, x0)
	require.NoError(t, err)
	require.Equal(t, x0, r)

	r, err = m.Ite(x0, m.ONE, m.ZERO)
	require.NoError(t, err)
	require.Equal(t, x0, r)

	r, err = m.Ite(x0, m.ZERO, m.ONE)
	require.NoError(t, err)
	require.Equal(t, x0.Complement(), r)
}

func TestDeMorgan(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	x0, x1, _ := threeVars(t, m)

	and, err := m.And(x0, x1)
	require.NoError(t, err)
	notAnd := m.Not(and)

	notX0 := m.Not(x0)
	notX1 := m.Not(x1)
	orOfNots, err := m.Or(notX0, notX1)
	require.NoError(t, err)

	require.Equal(t, notAnd, orOfNots, "De Morgan: not(a and b) == (not a) or (not b)")
}

func TestAndOrIdentitiesAndCommutativity(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	x0, x1, x2 := threeVars(t, m)

	ab, err := m.And(x0, x1)
	require.NoError(t, err)
	ba, err := m.And(x1, x0)
	require.NoError(t, err)
	require.Equal(t, ab, ba)

	l, err := m.And(x0, x1)
	require.NoError(t, err)
	l, err = m.And(l, x2)
	require.NoError(t, err)

	r, err := m.And(x1, x2)
	require.NoError(t, err)
	r, err = m.And(x0, r)
	require.NoError(t, err)

	require.Equal(t, l, r, "AND must be associative up to canonical form")
}

func TestRestrictAndExist(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	x0, x1, x2 := threeVars(t, m)
	_ = x2

	f, err := m.Or(x0, x1)
	require.NoError(t, err)

	pos, err := m.Restrict(f, 0, true)
	require.NoError(t, err)
	require.Equal(t, m.ONE, pos)

	neg, err := m.Restrict(f, 0, false)
	require.NoError(t, err)
	require.Equal(t, x1, neg)

	set, err := m.Makeset([]int{0})
	require.NoError(t, err)
	exist, err := m.Exist(f, set)
	require.NoError(t, err)
	require.Equal(t, m.ONE, exist, "exists x0. (x0 or x1) is a tautology")
}

// TestCountMintermsScenario is the spec's scenario 1: f = AND(x1, x2),
// count_minterms(f, 4) == 4.0, count_nodes(f) == 2.
func TestCountMintermsScenario(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	x0, x1, _ := threeVars(t, m)

	f, err := m.And(x0, x1)
	require.NoError(t, err)

	require.Equal(t, 4.0, m.CountMinterms(f, 4))
	require.Equal(t, 2, m.CountNodes(f))
}

// TestSatcountScenario is the spec's scenario 2: g = XOR(XOR(x1,x2),x3) (odd
// parity over 3 variables), count_minterms(g, 3) == 4.0.
func TestSatcountScenario(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	x0, x1, x2 := threeVars(t, m)

	g, err := m.Xor(x0, x1)
	require.NoError(t, err)
	g, err = m.Xor(g, x2)
	require.NoError(t, err)

	require.Equal(t, 4.0, m.CountMinterms(g, 3))
	require.Equal(t, int64(4), m.Satcount(g).Int64())
}

func TestImpEquiv(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, x1 := must2(m.Ithvar(0)), must2(m.Ithvar(1))

	imp, err := m.Imp(x0, x0)
	require.NoError(t, err)
	require.Equal(t, m.ONE, imp)

	eq, err := m.Equiv(x0, x1)
	require.NoError(t, err)
	xorred, err := m.Xor(x0, x1)
	require.NoError(t, err)
	require.Equal(t, eq, m.Not(xorred))
}

func must2(h Handle, err error) Handle {
	if err != nil {
		panic(err)
	}
	return h
}
