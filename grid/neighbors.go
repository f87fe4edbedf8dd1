// SPDX-License-Identifier: MIT
// Package: gridtopo/grid
//
// neighbors.go — neighbor enumeration on an unwrapped grid.
//
// Determinism:
//   • Candidates are visited in a fixed clockwise order starting at north:
//       Conn4: N(0,-1) E(1,0) S(0,1) W(-1,0)
//       Conn8: N(0,-1) NE(1,-1) E(1,0) SE(1,1) S(0,1) SW(-1,1) W(-1,0) NW(-1,-1)
//   • Candidates outside [0,width)×[0,height) are skipped silently; they are
//     the expected consequence of having no wraparound, not an error.
//
// Counts (both axes ≥ 3): Conn4 gives 2/3/4 at corner/edge/interior,
// Conn8 gives 3/5/8.

package grid

// Offset tables; never handed out directly (see Offsets).
var (
	offsets4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [8]Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// offsetsFor returns the offset table for c, or nil for an unknown value.
func offsetsFor(c Connectivity) []Point {
	switch c {
	case Conn4:
		return offsets4[:]
	case Conn8:
		return offsets8[:]
	default:
		return nil
	}
}

// Offsets returns a copy of the candidate offsets for c in iteration order.
// Returns ErrUnknownConnectivity for any other value.
func Offsets(c Connectivity) ([]Point, error) {
	table := offsetsFor(c)
	if table == nil {
		return nil, gridErrorf(methodOffsets, ErrUnknownConnectivity, "%v", c)
	}

	return append([]Point(nil), table...), nil
}

// Neighbors returns the in-grid neighbors of p under c, in offset-table order.
//
// Errors:
//   - ErrCoordinateOutOfBounds if p itself is outside the grid.
//   - ErrUnknownConnectivity if c is neither Conn4 nor Conn8.
//
// Complexity: O(d), d = c.Degree().
func (g Grid) Neighbors(p Point, c Connectivity) ([]Point, error) {
	return g.AppendNeighbors(make([]Point, 0, c.Degree()), p, c)
}

// AppendNeighbors appends the in-grid neighbors of p to dst and returns the
// extended slice. With a reused dst of capacity 8 it does not allocate.
// Errors are the same as for Neighbors; dst is returned unchanged on error.
func (g Grid) AppendNeighbors(dst []Point, p Point, c Connectivity) ([]Point, error) {
	table, err := g.checkQuery(methodNeighbors, p, c)
	if err != nil {
		return dst, err
	}

	for _, d := range table {
		q := p.Add(d)
		if g.Contains(q) {
			dst = append(dst, q)
		}
	}

	return dst, nil
}

// NeighborIndices returns the row-major indices of Neighbors(p, c), in the same
// order. Every enumerated neighbor is already in bounds, so the conversion
// itself cannot fail.
func (g Grid) NeighborIndices(p Point, c Connectivity) ([]int, error) {
	table, err := g.checkQuery(methodNeighbors, p, c)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(table))
	for _, d := range table {
		q := p.Add(d)
		if g.Contains(q) {
			out = append(out, g.index(q))
		}
	}

	return out, nil
}

// IndexNeighbors is NeighborIndices addressed by row-major index.
// Returns ErrIndexOutOfBounds when i is outside the grid.
func (g Grid) IndexNeighbors(i int, c Connectivity) ([]int, error) {
	p, err := g.Coordinate(i)
	if err != nil {
		return nil, err
	}

	return g.NeighborIndices(p, c)
}

// NeighborCount returns len(Neighbors(p, c)) without enumerating.
//
// Conn4 counts the orthogonal directions that stay on the grid. Conn8 counts
// the cells of the (up to) 3×3 block around p, minus p itself.
// Complexity: O(1).
func (g Grid) NeighborCount(p Point, c Connectivity) (int, error) {
	if _, err := g.checkQuery(methodNeighborCount, p, c); err != nil {
		return 0, err
	}

	left, right := b2i(p.X > 0), b2i(p.X < g.width-1)
	up, down := b2i(p.Y > 0), b2i(p.Y < g.height-1)
	if c == Conn4 {
		return left + right + up + down, nil
	}

	return (1+left+right)*(1+up+down) - 1, nil
}

// HasFullNeighborSet reports whether p has all c.Degree() neighbors on the
// grid. This holds exactly when Classify(p) == Interior, for either
// connectivity.
func (g Grid) HasFullNeighborSet(p Point, c Connectivity) (bool, error) {
	n, err := g.NeighborCount(p, c)
	if err != nil {
		return false, err
	}

	return n == c.Degree(), nil
}

// checkQuery validates c and p, in that order, and returns the offset table.
func (g Grid) checkQuery(method string, p Point, c Connectivity) ([]Point, error) {
	table := offsetsFor(c)
	if table == nil {
		return nil, gridErrorf(method, ErrUnknownConnectivity, "%v", c)
	}
	if !g.Contains(p) {
		return nil, g.outOfBounds(method, p)
	}

	return table, nil
}

func b2i(b bool) int {
	if b {
		return 1
	}

	return 0
}
