// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

// WriteDOT writes a digraph spanning every node reachable from roots to w,
// built with github.com/emicklei/dot in place of the teacher's hand-rolled
// fmt.Fprintf writer (stdio.go's PrintDot). Edge styling follows §6: then is
// solid, else is dashed, and an edge is additionally dotted when the
// traversed handle carries the complement flag.
func (m *Manager) WriteDOT(w io.Writer, roots ...Handle) error {
	g := dot.NewGraph(dot.Directed)
	seen := make(map[int32]dot.Node)

	var visit func(Handle) dot.Node
	visit = func(h Handle) dot.Node {
		idx := h.index()
		if n, ok := seen[idx]; ok {
			return n
		}
		nd := m.node(h)
		var n dot.Node
		if nd.level == terminalLevel {
			label := "1"
			if h == m.ZERO {
				label = "0"
			} else if h != m.ONE {
				label = fmt.Sprintf("%g", nd.value)
			}
			n = g.Node(fmt.Sprintf("n%d", idx)).Attr("label", label).Attr("shape", "box")
		} else {
			n = g.Node(fmt.Sprintf("n%d", idx)).Attr("label", fmt.Sprintf("x%d", m.varAt[nd.level]))
			thenNode := visit(nd.then)
			style := "solid"
			if nd.then.IsComplemented() {
				style = "solid,dotted"
			}
			g.Edge(n, thenNode).Attr("style", style)
			elseNode := visit(nd.els)
			style = "dashed"
			if nd.els.IsComplemented() {
				style = "dashed,dotted"
			}
			g.Edge(n, elseNode).Attr("style", style)
		}
		seen[idx] = n
		return n
	}
	for _, r := range roots {
		visit(r)
	}
	_, err := io.WriteString(w, g.String())
	return err
}
