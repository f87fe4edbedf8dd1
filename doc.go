// SPDX-License-Identifier: MIT

// Package gridtopo answers topology questions about finite, unwrapped 2D
// grids: which cells neighbor a given cell, which cells lie on a corner or an
// edge, and which cells have a full complement of neighbors.
//
// What is gridtopo?
//
//	A small, dependency-light toolkit organized as:
//		• grid/      — the Grid descriptor, index↔coordinate conversion,
//		               Corner/Edge/Interior classification, extremal sides,
//		               and Conn4/Conn8 neighbor enumeration
//		• gridgraph/ — grid adjacency exported as a gonum graph, with
//		               closed-form edge counts and hop distances
//		• cmd/gridtopo — a command-line front end over both
//
// Conventions:
//
//   - Linear indices are row-major: index = y*width + x.
//   - Neighbors are listed clockwise from north: N, NE, E, SE, S, SW, W, NW
//     (Conn4 keeps N, E, S, W).
//   - There is no wraparound: a boundary cell simply has fewer neighbors.
//   - Each axis must be in [2, 511] unless grid.WithUnbounded() is given.
//
// Quick ASCII example (3×3, Conn8 counts):
//
//	3 5 3
//	5 8 5
//	3 5 3
//
//	go get github.com/katalvlaran/gridtopo/grid
package gridtopo
