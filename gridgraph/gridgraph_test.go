package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtopo/grid"
	"github.com/katalvlaran/gridtopo/gridgraph"
)

//----------------------------------------------------------------------------//
// New and EdgeCount Tests
//----------------------------------------------------------------------------//

// TestNew_EdgeCountMatchesClosedForm builds gonum graphs for a range of sizes
// and compares node/edge counts with the closed forms.
func TestNew_EdgeCountMatchesClosedForm(t *testing.T) {
	sizes := [][2]int{{2, 2}, {2, 5}, {5, 2}, {3, 3}, {4, 7}, {9, 9}, {31, 2}}
	for _, wh := range sizes {
		g := grid.MustNew(wh[0], wh[1])
		for _, c := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
			gg, err := gridgraph.New(g, c)
			require.NoError(t, err)

			want, err := gridgraph.EdgeCount(g, c)
			require.NoError(t, err)
			require.Equal(t, want, gg.EdgeCount(), "%v %v", g, c)
			require.Equal(t, g.CellCount(), gg.NodeCount(), "%v %v", g, c)
		}
	}
}

// TestEdgeCount_Known pins a few hand-counted values.
func TestEdgeCount_Known(t *testing.T) {
	cases := []struct {
		w, h int
		c    grid.Connectivity
		want int
	}{
		{2, 2, grid.Conn4, 4},
		{2, 2, grid.Conn8, 6},
		{3, 3, grid.Conn4, 12},
		{3, 3, grid.Conn8, 20},
	}
	for _, tc := range cases {
		got, err := gridgraph.EdgeCount(grid.MustNew(tc.w, tc.h), tc.c)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%dx%d %v", tc.w, tc.h, tc.c)
	}
}

// TestEdgeCount_ZeroGrid verifies the zero Grid is rejected, not counted.
func TestEdgeCount_ZeroGrid(t *testing.T) {
	for _, c := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		n, err := gridgraph.EdgeCount(grid.Grid{}, c)
		require.ErrorIs(t, err, grid.ErrInvalidDimensions)
		require.Zero(t, n)
	}
}

// TestDegree_MatchesNeighborCount compares gonum degrees with grid counts.
func TestDegree_MatchesNeighborCount(t *testing.T) {
	g := grid.MustNew(5, 4)
	for _, c := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		gg, err := gridgraph.New(g, c)
		require.NoError(t, err)
		for _, p := range g.Cells() {
			deg, err := gg.Degree(p)
			require.NoError(t, err)
			n, err := g.NeighborCount(p, c)
			require.NoError(t, err)
			require.Equal(t, n, deg, "%v %v", c, p)
		}
	}
}

// TestConn4_NoDiagonals verifies diagonal pairs are joined only under Conn8.
func TestConn4_NoDiagonals(t *testing.T) {
	g := grid.MustNew(2, 2)
	g4, err := gridgraph.New(g, grid.Conn4)
	require.NoError(t, err)
	g8, err := gridgraph.New(g, grid.Conn8)
	require.NoError(t, err)

	// 0 1
	// 2 3
	require.True(t, g4.Graph().HasEdgeBetween(0, 1))
	require.True(t, g4.Graph().HasEdgeBetween(0, 2))
	require.False(t, g4.Graph().HasEdgeBetween(0, 3))
	require.True(t, g8.Graph().HasEdgeBetween(0, 3))
	require.True(t, g8.Graph().HasEdgeBetween(1, 2))
}

// TestErrors verifies grid sentinels survive the gridgraph prefix.
func TestErrors(t *testing.T) {
	g := grid.MustNew(3, 3)

	_, err := gridgraph.New(g, grid.Connectivity(3))
	require.ErrorIs(t, err, grid.ErrUnknownConnectivity)

	_, err = gridgraph.EdgeCount(g, grid.Connectivity(3))
	require.ErrorIs(t, err, grid.ErrUnknownConnectivity)

	_, err = gridgraph.Hops(g, grid.Conn4, grid.Pt(0, 0), grid.Pt(3, 3))
	require.ErrorIs(t, err, grid.ErrCoordinateOutOfBounds)

	_, err = gridgraph.Hops(g, grid.Connectivity(9), grid.Pt(0, 0), grid.Pt(1, 1))
	require.ErrorIs(t, err, grid.ErrUnknownConnectivity)

	gg, err := gridgraph.New(g, grid.Conn4)
	require.NoError(t, err)
	_, err = gg.Degree(grid.Pt(-1, 0))
	if !errors.Is(err, grid.ErrCoordinateOutOfBounds) {
		t.Errorf("Degree error = %v; want ErrCoordinateOutOfBounds", err)
	}
	_, err = gg.ShortestPath(grid.Pt(0, 0), grid.Pt(0, 9))
	require.ErrorIs(t, err, grid.ErrCoordinateOutOfBounds)
	require.Contains(t, err.Error(), "gridgraph: ShortestPath:")
}
