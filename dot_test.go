// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteDOTProducesAGraph(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	x0, x1 := must2(m.Ithvar(0)), must2(m.Ithvar(1))
	f, err := m.And(x0, x1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.WriteDOT(&buf, f))

	out := buf.String()
	require.True(t, strings.HasPrefix(strings.TrimSpace(out), "digraph"))
	require.Contains(t, out, "x0")
	require.Contains(t, out, "x1")
}
