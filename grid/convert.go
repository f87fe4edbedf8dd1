// SPDX-License-Identifier: MIT
// Package: gridtopo/grid
//
// convert.go — bijection between linear indices and points.
//
// Convention (fixed): row-major.
//   index = y*width + x
//   x     = index % width
//   y     = index / width
//
// For every valid i, Index(Coordinate(i)) == i; for every valid p,
// Coordinate(Index(p)) == p.

package grid

// Coordinate converts a row-major index to its Point.
// Returns ErrIndexOutOfBounds when i < 0 or i ≥ CellCount().
// Complexity: O(1).
func (g Grid) Coordinate(i int) (Point, error) {
	if !g.ContainsIndex(i) {
		return Point{}, gridErrorf(methodCoordinate, ErrIndexOutOfBounds,
			"index %d not in [0,%d)", i, g.CellCount())
	}

	return g.point(i), nil
}

// Index converts p to its row-major index.
// Returns ErrCoordinateOutOfBounds when either component is negative or
// not below its dimension.
// Complexity: O(1).
func (g Grid) Index(p Point) (int, error) {
	if !g.Contains(p) {
		return 0, g.outOfBounds(methodIndex, p)
	}

	return g.index(p), nil
}

// index maps an in-bounds p to y*width + x.
func (g Grid) index(p Point) int {
	return p.Y*g.width + p.X
}

// point maps an in-bounds index back to (x,y).
func (g Grid) point(i int) Point {
	return Point{X: i % g.width, Y: i / g.width}
}

// outOfBounds builds the ErrCoordinateOutOfBounds error for p.
func (g Grid) outOfBounds(method string, p Point) error {
	return gridErrorf(method, ErrCoordinateOutOfBounds,
		"point %v not in [0,%d)×[0,%d)", p, g.width, g.height)
}
