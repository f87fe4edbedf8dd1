// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridtopo/grid"
)

// ErrNoPath indicates no path joins two cells after nodes or edges were
// removed from the graph.
var ErrNoPath = errors.New("gridgraph: no path between cells")

// ErrMissingNode indicates a cell whose node was removed from the graph.
var ErrMissingNode = errors.New("gridgraph: cell node removed")

const (
	methodNew          = "New"
	methodDegree       = "Degree"
	methodEdgeCount    = "EdgeCount"
	methodHops         = "Hops"
	methodShortestPath = "ShortestPath"
)

// wrap attaches the gridgraph method prefix to an error from the grid package.
func wrap(method string, err error) error {
	return fmt.Errorf("gridgraph: %s: %w", method, err)
}

// unknownConn reports a Connectivity the grid package does not define.
func unknownConn(method string, c grid.Connectivity) error {
	return fmt.Errorf("gridgraph: %s: %v: %w", method, c, grid.ErrUnknownConnectivity)
}

// missingNode reports a removed cell node by its coordinate.
func missingNode(method string, g grid.Grid, i int) error {
	p, _ := g.Coordinate(i)
	return fmt.Errorf("gridgraph: %s: cell %v: %w", method, p, ErrMissingNode)
}
