// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gridtopo/grid"
)

// New materializes the adjacency of g under conn.
// Every cell becomes a node whose ID is its row-major index; every pair of
// neighbors is joined by exactly one undirected edge.
// Returns grid.ErrUnknownConnectivity for an invalid conn.
// Complexity: O(W×H×d) time and memory.
func New(g grid.Grid, conn grid.Connectivity) (*GridGraph, error) {
	if !conn.Valid() {
		return nil, unknownConn(methodNew, conn)
	}

	ug := simple.NewUndirectedGraph()
	for i := range g.Cells() {
		ug.AddNode(simple.Node(i))
	}
	for i, p := range g.Cells() {
		nbs, err := g.NeighborIndices(p, conn)
		if err != nil {
			return nil, wrap(methodNew, err)
		}
		for _, j := range nbs {
			// Each pair is seen from both ends; emit it once.
			if j > i {
				ug.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	return &GridGraph{Grid: g, Conn: conn, g: ug}, nil
}

// Graph returns the underlying gonum graph. Callers may remove nodes or edges
// to model blocked cells; Degree, Components, Connected and ShortestPath all
// observe such removals. Adding nodes outside [0, CellCount()) is unsupported.
func (gg *GridGraph) Graph() *simple.UndirectedGraph {
	return gg.g
}

// NodeCount returns the number of nodes, always Grid.CellCount().
func (gg *GridGraph) NodeCount() int {
	return gg.g.Nodes().Len()
}

// EdgeCount returns the number of undirected edges actually materialized.
func (gg *GridGraph) EdgeCount() int {
	return gg.g.Edges().Len()
}

// Degree returns the number of neighbors of p as seen by the gonum graph.
// Returns ErrMissingNode when p's node was removed from Graph().
func (gg *GridGraph) Degree(p grid.Point) (int, error) {
	i, err := gg.Grid.Index(p)
	if err != nil {
		return 0, wrap(methodDegree, err)
	}
	if gg.g.Node(int64(i)) == nil {
		return 0, missingNode(methodDegree, gg.Grid, i)
	}

	return gg.g.From(int64(i)).Len(), nil
}

// EdgeCount returns the number of neighbor pairs of g under conn without
// building anything:
//
//	Conn4: (w-1)·h + w·(h-1)
//	Conn8: Conn4 + 2·(w-1)·(h-1)
//
// The zero Grid is rejected with grid.ErrInvalidDimensions.
func EdgeCount(g grid.Grid, conn grid.Connectivity) (int, error) {
	w, h := g.Width(), g.Height()
	if w < grid.MinDim || h < grid.MinDim {
		return 0, fmt.Errorf("gridgraph: %s: grid %v: %w", methodEdgeCount, g, grid.ErrInvalidDimensions)
	}
	orth := (w-1)*h + w*(h-1)
	switch conn {
	case grid.Conn4:
		return orth, nil
	case grid.Conn8:
		return orth + 2*(w-1)*(h-1), nil
	default:
		return 0, unknownConn(methodEdgeCount, conn)
	}
}
