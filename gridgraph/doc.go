// SPDX-License-Identifier: MIT

// Package gridgraph exports the adjacency of an unwrapped grid as a gonum
// graph, so general graph algorithms can run over grid topology.
//
// What:
//
//   - GridGraph pairs a grid.Grid with a grid.Connectivity and materializes
//     one gonum node per cell (ID = row-major index) and one undirected edge
//     per neighbor pair.
//   - EdgeCount and Hops give closed-form answers that the materialized graph
//     is checked against.
//   - Components / Connected and ShortestPath delegate to gonum's topo and
//     path packages.
//
// Complexity:
//
//   - New:           O(W×H×d), Memory: O(W×H×d)    (d = 4 or 8).
//   - EdgeCount:     O(1).
//   - Hops:          O(1).
//   - Components:    O(W×H×d).
//   - ShortestPath:  O((V+E)·log V) via Dijkstra with unit weights.
//
// Errors:
//
//	gridgraph returns the grid package sentinels (grid.ErrCoordinateOutOfBounds,
//	grid.ErrUnknownConnectivity, ...) wrapped with a "gridgraph: <Method>" prefix.
package gridgraph
