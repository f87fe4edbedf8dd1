// SPDX-License-Identifier: MIT
// Package: gridtopo/grid
//
// boundary.go — Corner / Edge / Interior classification and extremal sides.
//
// Rules:
//   • A cell is at an extreme on the x axis iff x ∈ {0, width-1}; likewise y.
//   • Corner   ⇔ extreme on both axes.
//   • Edge     ⇔ extreme on exactly one axis.
//   • Interior ⇔ extreme on neither (0 < x < width-1 and 0 < y < height-1).
//   • With width == 2 every x is extreme (and likewise height == 2 for y), so
//     such grids have no Interior cells; the rules above still decide each
//     cell deterministically.

package grid

// Classify returns the boundary class of p.
// Returns ErrCoordinateOutOfBounds when p is outside the grid.
// Complexity: O(1).
func (g Grid) Classify(p Point) (Class, error) {
	if !g.Contains(p) {
		return 0, g.outOfBounds(methodClassify, p)
	}

	return g.classify(p), nil
}

// ClassifyIndex is Classify addressed by row-major index.
// Returns ErrIndexOutOfBounds when i is outside the grid.
func (g Grid) ClassifyIndex(i int) (Class, error) {
	p, err := g.Coordinate(i)
	if err != nil {
		return 0, err
	}

	return g.classify(p), nil
}

// classify assumes p is in bounds.
func (g Grid) classify(p Point) Class {
	xExt := p.X == 0 || p.X == g.width-1
	yExt := p.Y == 0 || p.Y == g.height-1
	switch {
	case xExt && yExt:
		return Corner
	case xExt || yExt:
		return Edge
	default:
		return Interior
	}
}

// Corners returns the four corner cells in the order top-left, top-right,
// bottom-left, bottom-right. Because both axes are ≥ MinDim the four points
// are always pairwise distinct.
func (g Grid) Corners() [4]Point {
	r, b := g.width-1, g.height-1

	return [4]Point{{0, 0}, {r, 0}, {0, b}, {r, b}}
}

// CountByClass returns how many cells fall into each Class:
// 4 corners, 2(w-2)+2(h-2) edges, (w-2)(h-2) interior.
// The zero Grid has no cells and yields an empty map.
func (g Grid) CountByClass() map[Class]int {
	if g.width < MinDim || g.height < MinDim {
		return map[Class]int{}
	}

	iw, ih := g.width-2, g.height-2

	return map[Class]int{
		Corner:   4,
		Edge:     2*iw + 2*ih,
		Interior: iw * ih,
	}
}

// Side returns the cells of one extremal row or column.
// Left and Right are ordered top to bottom (y ascending); Top and Bottom are
// ordered left to right (x ascending). Corner cells appear in both the row and
// the column they belong to.
// Returns ErrUnknownSide for any other Side value.
// Complexity: O(width) or O(height).
func (g Grid) Side(s Side) ([]Point, error) {
	var (
		origin, step Point
		n            int
	)
	switch s {
	case Left:
		origin, step, n = Point{0, 0}, Point{0, 1}, g.height
	case Right:
		origin, step, n = Point{g.width - 1, 0}, Point{0, 1}, g.height
	case Top:
		origin, step, n = Point{0, 0}, Point{1, 0}, g.width
	case Bottom:
		origin, step, n = Point{0, g.height - 1}, Point{1, 0}, g.width
	default:
		return nil, gridErrorf(methodSide, ErrUnknownSide, "side %d", int(s))
	}

	out := make([]Point, n)
	p := origin
	for i := range out {
		out[i] = p
		p = p.Add(step)
	}

	return out, nil
}

// SideIndices is Side expressed as row-major indices, in the same order.
func (g Grid) SideIndices(s Side) ([]int, error) {
	pts, err := g.Side(s)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(pts))
	for i, p := range pts {
		out[i] = g.index(p)
	}

	return out, nil
}
