// SPDX-License-Identifier: MIT

package gridgraph

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gridtopo/grid"
)

// GridGraph is the materialized adjacency of a grid under one connectivity.
// Grid and Conn describe the full grid it was built from; the gonum graph
// starts as that full adjacency and may be pruned by callers via Graph().
type GridGraph struct {
	Grid grid.Grid
	Conn grid.Connectivity
	g    *simple.UndirectedGraph
}
