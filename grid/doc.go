// SPDX-License-Identifier: MIT

// Package grid answers topology questions about a finite, unwrapped 2D grid.
//
// What:
//
//   - Grid is an immutable width×height descriptor (2 ≤ width, height ≤ 511 by default).
//   - Cells are addressed either by a Point{X, Y} or by a row-major linear index
//     (index = y*width + x).
//   - Cells are classified as Corner, Edge or Interior, and the four extremal
//     sides (Left, Right, Top, Bottom) can be listed in a fixed order.
//   - Neighbor/NeighborIndex look up a single cell in one Direction and
//     report ok=false when the step leaves the grid.
//   - Neighbors are enumerated under Conn4 (N, E, S, W) or Conn8 (N, NE, E, SE,
//     S, SW, W, NW). Candidates that fall off the grid are dropped; there is no
//     wraparound.
//
// Why:
//
//   - Game boards, raster scans and simulation lattices all need the same
//     boundary arithmetic; getting it right once for every grid size (including
//     2-wide and 2-tall strips) removes a whole class of off-by-one bugs.
//
// Complexity:
//
//   - New, Coordinate, Index, Classify, NeighborCount: O(1).
//   - Neighbors, NeighborIndices:                     O(d), d = 4 or 8.
//   - Side, SideIndices:                              O(width) or O(height).
//
// Options:
//
//   - WithMaxDim(n): custom per-axis ceiling instead of MaxDim (511).
//   - WithUnbounded(): no per-axis ceiling; grids above 511 work but are untested.
//
// Errors:
//
//   - ErrInvalidDimensions:     New called with an axis below 2 or above the ceiling.
//   - ErrIndexOutOfBounds:      linear index outside [0, CellCount()).
//   - ErrCoordinateOutOfBounds: point outside [0,width)×[0,height).
//   - ErrUnknownConnectivity:   Connectivity value other than Conn4/Conn8.
//   - ErrUnknownDirection:      Direction value outside North..NorthWest.
//   - ErrUnknownSide:           Side value other than Left/Right/Top/Bottom.
//
// Concurrency:
//
//	A Grid holds two ints and is never mutated, so every method is safe for
//	concurrent use without locking.
package grid
