// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAndConstants(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	require.Equal(t, m.ZERO, m.ONE.Complement())
	require.Equal(t, m.ONE, m.ZERO.Complement())
	require.NotEqual(t, m.ONE, m.ZERO)
}

func TestIthvarIsCanonical(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	a, err := m.Ithvar(0)
	require.NoError(t, err)
	b, err := m.Ithvar(0)
	require.NoError(t, err)
	require.Equal(t, a, b, "repeated Ithvar(v) must return the same handle")

	na, err := m.NIthvar(0)
	require.NoError(t, err)
	require.Equal(t, a.Complement(), na)
}

func TestIthvarOutOfRange(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	_, err = m.Ithvar(5)
	require.ErrorIs(t, err, ErrVarOutOfRange)
	require.ErrorIs(t, m.Err(), ErrVarOutOfRange)
}

func TestUniqueTableStress(t *testing.T) {
	// Scenario 6: building AND(x1, ..., xN) in any bracketing produces an
	// identical handle, with count_nodes == N.
	const n = 8
	m, err := New(n, Nodesize(16))
	require.NoError(t, err)

	vars := make([]Handle, n)
	for i := 0; i < n; i++ {
		vars[i], err = m.Ithvar(i)
		require.NoError(t, err)
	}

	leftFold := vars[0]
	for i := 1; i < n; i++ {
		leftFold, err = m.And(leftFold, vars[i])
		require.NoError(t, err)
	}

	rightFold := vars[n-1]
	for i := n - 2; i >= 0; i-- {
		rightFold, err = m.And(vars[i], rightFold)
		require.NoError(t, err)
	}

	balanced, err := m.And(vars...)
	require.NoError(t, err)

	require.Equal(t, leftFold, rightFold)
	require.Equal(t, leftFold, balanced)
	require.Equal(t, n, m.CountNodes(leftFold))
}
