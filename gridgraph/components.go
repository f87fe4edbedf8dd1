// SPDX-License-Identifier: MIT

package gridgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"
)

// Components returns the connected components of the materialized graph as
// sorted slices of row-major cell indices, ordered by their smallest index.
//
// Every valid grid is connected under either connectivity, so the result is
// a single component holding all cells until callers prune Graph(). Removed
// cells do not appear in any component.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) Components() [][]int {
	raw := topo.ConnectedComponents(gg.g)
	comps := make([][]int, 0, len(raw))
	for _, nodes := range raw {
		comp := make([]int, len(nodes))
		for k, n := range nodes {
			comp[k] = int(n.ID())
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	sort.Slice(comps, func(a, b int) bool { return comps[a][0] < comps[b][0] })

	return comps
}

// Connected reports whether the graph forms a single component.
func (gg *GridGraph) Connected() bool {
	return len(topo.ConnectedComponents(gg.g)) == 1
}
