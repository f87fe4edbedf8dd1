// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gridtopo/grid"
)

// ShortestPath returns one minimum-hop path from a to b, inclusive of both
// ends, computed by gonum's Dijkstra over unit edge weights.
// Its length is always Hops(a, b) + 1.
//
// Errors:
//   - grid.ErrCoordinateOutOfBounds when either endpoint is off the grid.
//   - ErrMissingNode when either endpoint was removed from Graph().
//   - ErrNoPath when removals left b unreachable from a.
//
// Complexity: O((V+E)·log V).
func (gg *GridGraph) ShortestPath(a, b grid.Point) ([]grid.Point, error) {
	ai, err := gg.Grid.Index(a)
	if err != nil {
		return nil, wrap(methodShortestPath, err)
	}
	bi, err := gg.Grid.Index(b)
	if err != nil {
		return nil, wrap(methodShortestPath, err)
	}

	for _, id := range [2]int{ai, bi} {
		if gg.g.Node(int64(id)) == nil {
			return nil, missingNode(methodShortestPath, gg.Grid, id)
		}
	}

	sp := path.DijkstraFrom(simple.Node(ai), gg.g)
	nodes, _ := sp.To(int64(bi))
	if len(nodes) == 0 {
		return nil, fmt.Errorf("gridgraph: %s: %v to %v: %w", methodShortestPath, a, b, ErrNoPath)
	}

	out := make([]grid.Point, len(nodes))
	for k, n := range nodes {
		p, err := gg.Grid.Coordinate(int(n.ID()))
		if err != nil {
			return nil, wrap(methodShortestPath, err)
		}
		out[k] = p
	}

	return out, nil
}

// Hops returns the minimum number of neighbor steps between a and b on g
// under conn. Without wraparound no path ever crosses a border, so this is the
// Manhattan distance for Conn4 and the Chebyshev distance for Conn8.
// Complexity: O(1).
func Hops(g grid.Grid, conn grid.Connectivity, a, b grid.Point) (int, error) {
	for _, p := range [2]grid.Point{a, b} {
		if _, err := g.Index(p); err != nil {
			return 0, wrap(methodHops, err)
		}
	}

	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	switch conn {
	case grid.Conn4:
		return dx + dy, nil
	case grid.Conn8:
		return max(dx, dy), nil
	default:
		return 0, unknownConn(methodHops, conn)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
