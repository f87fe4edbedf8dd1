// SPDX-License-Identifier: MIT
// Package: gridtopo/grid
//
// direction.go — single-neighbor lookups by compass direction, and the
// interior cell list.
//
// Directions index the Conn8 offset table, so Direction(k) is the k-th
// candidate visited by Neighbors under Conn8.

package grid

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass directions, clockwise from north.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists every Direction in clockwise order.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Valid reports whether d is one of the eight defined directions.
func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

// Offset returns the (dx,dy) step for d. An invalid d yields the zero Point.
func (d Direction) Offset() Point {
	if !d.Valid() {
		return Point{}
	}

	return offsets8[d]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "n"
	case NorthEast:
		return "ne"
	case East:
		return "e"
	case SouthEast:
		return "se"
	case South:
		return "s"
	case SouthWest:
		return "sw"
	case West:
		return "w"
	case NorthWest:
		return "nw"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "n", "ne", "e", "se", "s", "sw", "w" or "nw"
// (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		if d.String() == want {
			return d, nil
		}
	}

	return 0, gridErrorf(methodParseDirection, ErrUnknownDirection, "%q", s)
}

// Neighbor returns the cell one step from p in direction d.
// ok is false when that step leaves the grid; this is not an error.
//
// Errors:
//   - ErrCoordinateOutOfBounds if p itself is outside the grid.
//   - ErrUnknownDirection if d is not a defined Direction.
//
// Complexity: O(1).
func (g Grid) Neighbor(p Point, d Direction) (q Point, ok bool, err error) {
	if !d.Valid() {
		return Point{}, false, gridErrorf(methodNeighbor, ErrUnknownDirection, "%v", d)
	}
	if !g.Contains(p) {
		return Point{}, false, g.outOfBounds(methodNeighbor, p)
	}

	q = p.Add(offsets8[d])
	if !g.Contains(q) {
		return Point{}, false, nil
	}

	return q, true, nil
}

// NeighborIndex is Neighbor addressed by row-major index.
// Returns ErrIndexOutOfBounds when i is outside the grid.
func (g Grid) NeighborIndex(i int, d Direction) (j int, ok bool, err error) {
	p, err := g.Coordinate(i)
	if err != nil {
		return 0, false, err
	}
	q, ok, err := g.Neighbor(p, d)
	if err != nil || !ok {
		return 0, false, err
	}

	return g.index(q), true, nil
}

// InteriorIndices returns the row-major indices of every Interior cell in
// ascending order. It is empty when either axis is 2.
// Complexity: O((W-2)×(H-2)).
func (g Grid) InteriorIndices() []int {
	if g.width <= MinDim || g.height <= MinDim {
		return []int{}
	}

	out := make([]int, 0, (g.width-2)*(g.height-2))
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			out = append(out, y*g.width+x)
		}
	}

	return out
}
