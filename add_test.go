// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAddWeightedSumScenario is the spec's scenario 3: build an ADD assigning
// weight 2.0 to x1 and 3.0 to x2, combined with AddPlus, then evaluate and
// threshold it.
func TestAddWeightedSumScenario(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)

	i0, err := m.AddIthvar(0)
	require.NoError(t, err)
	i1, err := m.AddIthvar(1)
	require.NoError(t, err)

	w0, err := m.AddScalarMultiply(i0, 2.0)
	require.NoError(t, err)
	w1, err := m.AddScalarMultiply(i1, 3.0)
	require.NoError(t, err)

	f, err := m.AddPlus(w0, w1)
	require.NoError(t, err)

	require.Equal(t, 0.0, m.AddEval(f, map[int]bool{0: false, 1: false}))
	require.Equal(t, 2.0, m.AddEval(f, map[int]bool{0: true, 1: false}))
	require.Equal(t, 3.0, m.AddEval(f, map[int]bool{0: false, 1: true}))
	require.Equal(t, 5.0, m.AddEval(f, map[int]bool{0: true, 1: true}))

	require.Equal(t, 5.0, m.AddFindMax(f))
	require.Equal(t, 0.0, m.AddFindMin(f))

	thr, err := m.AddThreshold(f, 3.0)
	require.NoError(t, err)
	// thr is true exactly when f >= 3.0: assignments (F,T) and (T,T).
	require.Equal(t, 2.0, m.CountMinterms(thr, 2))
}

func TestAddArithmetic(t *testing.T) {
	m, err := New(1)
	require.NoError(t, err)

	a, err := m.AddConst(4.0)
	require.NoError(t, err)
	b, err := m.AddConst(2.0)
	require.NoError(t, err)

	sum, err := m.AddPlus(a, b)
	require.NoError(t, err)
	require.Equal(t, 6.0, m.AddEval(sum, nil))

	diff, err := m.AddMinus(a, b)
	require.NoError(t, err)
	require.Equal(t, 2.0, m.AddEval(diff, nil))

	prod, err := m.AddTimes(a, b)
	require.NoError(t, err)
	require.Equal(t, 8.0, m.AddEval(prod, nil))

	quot, err := m.AddDivide(a, b)
	require.NoError(t, err)
	require.Equal(t, 2.0, m.AddEval(quot, nil))

	mx, err := m.AddMax(a, b)
	require.NoError(t, err)
	require.Equal(t, 4.0, m.AddEval(mx, nil))

	mn, err := m.AddMin(a, b)
	require.NoError(t, err)
	require.Equal(t, 2.0, m.AddEval(mn, nil))

	neg, err := m.AddNegate(a)
	require.NoError(t, err)
	require.Equal(t, -4.0, m.AddEval(neg, nil))
}

func TestAddConstBitIdentity(t *testing.T) {
	m, err := New(1)
	require.NoError(t, err)

	a, err := m.AddConst(1.5)
	require.NoError(t, err)
	b, err := m.AddConst(1.5)
	require.NoError(t, err)
	require.Equal(t, a, b, "AddConst must return the same handle for a bit-identical value")

	nan1, err := m.AddConst(math.NaN())
	require.NoError(t, err)
	nan2, err := m.AddConst(math.NaN())
	require.NoError(t, err)
	require.Equal(t, nan1, nan2, "bit-identical NaN payloads must still hash-cons together")
}
