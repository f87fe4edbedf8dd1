// SPDX-License-Identifier: MIT
// Package: gridtopo/grid
//
// grid.go — the Grid descriptor: construction, validation and accessors.
//
// Contract:
//   • New validates both axes against [MinDim, ceiling] before anything else
//     and returns ErrInvalidDimensions wrapped with the offending values.
//   • A Grid is a value; every method has a value receiver and never mutates.
//   • The zero Grid is not valid; obtain one from New or MustNew.

package grid

import (
	"fmt"
	"iter"
	"math"
)

// Grid describes a width×height unwrapped grid. Cells are numbered in
// row-major order: index = y*width + x.
type Grid struct {
	width, height int
}

// New validates width and height and returns the corresponding Grid.
//
// Both axes must be ≥ MinDim. Unless WithUnbounded is given, both must also be
// ≤ MaxDim (or the ceiling set by WithMaxDim).
// Complexity: O(1).
func New(width, height int, opts ...Option) (Grid, error) {
	o := gatherOptions(opts...)

	if width < MinDim || height < MinDim {
		return Grid{}, gridErrorf(methodNew, ErrInvalidDimensions,
			"width=%d, height=%d (each must be ≥ %d)", width, height, MinDim)
	}
	if !o.unbounded && (width > o.maxDim || height > o.maxDim) {
		return Grid{}, gridErrorf(methodNew, ErrInvalidDimensions,
			"width=%d, height=%d (each must be ≤ %d)", width, height, o.maxDim)
	}
	if height > math.MaxInt/width {
		return Grid{}, gridErrorf(methodNew, ErrInvalidDimensions,
			"width=%d, height=%d (cell count overflows int)", width, height)
	}

	return Grid{width: width, height: height}, nil
}

// MustNew is like New but panics on error. Intended for fixed sizes in
// tests, examples and package-level variables.
func MustNew(width, height int, opts ...Option) Grid {
	g, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// CellCount returns width*height.
func (g Grid) CellCount() int { return g.width * g.height }

// String formats g as "WxH".
func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.width, g.height)
}

// Contains reports whether p lies within [0,width)×[0,height).
// Complexity: O(1).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// ContainsIndex reports whether i lies within [0, CellCount()).
func (g Grid) ContainsIndex(i int) bool {
	return i >= 0 && i < g.CellCount()
}

// Cells yields every (index, point) pair in row-major order.
func (g Grid) Cells() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		i := 0
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(i, Point{X: x, Y: y}) {
					return
				}
				i++
			}
		}
	}
}
