package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtopo/grid"
)

//----------------------------------------------------------------------------//
// New and accessors
//----------------------------------------------------------------------------//

// TestNew_Rejects verifies that New rejects axes below MinDim or above MaxDim.
func TestNew_Rejects(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"OneWide", 1, 5},
		{"OneTall", 5, 1},
		{"Zero", 0, 0},
		{"Negative", -3, 4},
		{"TooWide", grid.MaxDim + 1, 2},
		{"TooTall", 2, grid.MaxDim + 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h)
			if !errors.Is(err, grid.ErrInvalidDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrInvalidDimensions", tc.w, tc.h, err)
			}
		})
	}
}

// TestNew_Accepts covers the boundaries of the tested range.
func TestNew_Accepts(t *testing.T) {
	for _, wh := range [][2]int{{2, 2}, {2, 5}, {5, 2}, {3, 3}, {grid.MaxDim, grid.MaxDim}, {2, grid.MaxDim}} {
		g, err := grid.New(wh[0], wh[1])
		require.NoError(t, err, "New(%d,%d)", wh[0], wh[1])
		assert.Equal(t, wh[0], g.Width())
		assert.Equal(t, wh[1], g.Height())
		assert.Equal(t, wh[0]*wh[1], g.CellCount())
	}
}

// TestNew_Options checks the ceiling policy switches.
func TestNew_Options(t *testing.T) {
	_, err := grid.New(600, 3, grid.WithUnbounded())
	require.NoError(t, err)

	_, err = grid.New(20, 3, grid.WithMaxDim(10))
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = grid.New(10, 10, grid.WithMaxDim(10))
	require.NoError(t, err)

	// WithMaxDim after WithUnbounded restores a ceiling.
	_, err = grid.New(600, 3, grid.WithUnbounded(), grid.WithMaxDim(grid.MaxDim))
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	// Unbounded still refuses a product that overflows int.
	_, err = grid.New(math.MaxInt/2, 3, grid.WithUnbounded())
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	// MinDim is not negotiable.
	_, err = grid.New(1, 3, grid.WithUnbounded())
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

// TestWithMaxDim_Panics ensures nonsensical ceilings are programmer errors.
func TestWithMaxDim_Panics(t *testing.T) {
	require.Panics(t, func() { grid.WithMaxDim(1) })
	require.NotPanics(t, func() { grid.WithMaxDim(grid.MinDim) })
}

func TestMustNew(t *testing.T) {
	require.Panics(t, func() { grid.MustNew(1, 1) })
	require.Equal(t, "4x3", grid.MustNew(4, 3).String())
}

// TestCells verifies row-major iteration and early termination.
func TestCells(t *testing.T) {
	g := grid.MustNew(3, 2)
	want := 0
	for i, p := range g.Cells() {
		require.Equal(t, want, i)
		idx, err := g.Index(p)
		require.NoError(t, err)
		require.Equal(t, i, idx)
		want++
	}
	require.Equal(t, g.CellCount(), want)

	seen := 0
	for range g.Cells() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

// TestContains checks InBounds-style membership on a 3×2 grid.
func TestContains(t *testing.T) {
	g := grid.MustNew(3, 2)
	for _, p := range []grid.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.Contains(p), "Contains(%v)", p)
	}
	for _, p := range []grid.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.Contains(p), "Contains(%v)", p)
	}
	assert.True(t, g.ContainsIndex(5))
	assert.False(t, g.ContainsIndex(6))
	assert.False(t, g.ContainsIndex(-1))
}

//----------------------------------------------------------------------------//
// Parsing and String
//----------------------------------------------------------------------------//

func TestParseConnectivity(t *testing.T) {
	for in, want := range map[string]grid.Connectivity{"4": grid.Conn4, "CONN4": grid.Conn4, " 8 ": grid.Conn8, "conn8": grid.Conn8} {
		got, err := grid.ParseConnectivity(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := grid.ParseConnectivity("6")
	require.ErrorIs(t, err, grid.ErrUnknownConnectivity)
	require.Equal(t, "Connectivity(7)", grid.Connectivity(7).String())
	require.Zero(t, grid.Connectivity(7).Degree())
}

func TestParseSide(t *testing.T) {
	for _, s := range grid.Sides {
		got, err := grid.ParseSide(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	got, err := grid.ParseSide("Bottom")
	require.NoError(t, err)
	require.Equal(t, grid.Bottom, got)

	_, err = grid.ParseSide("middle")
	require.ErrorIs(t, err, grid.ErrUnknownSide)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "(3,-1)", grid.Pt(3, -1).String())
	assert.Equal(t, "corner", grid.Corner.String())
	assert.Equal(t, "edge", grid.Edge.String())
	assert.Equal(t, "interior", grid.Interior.String())
	assert.Equal(t, "Class(9)", grid.Class(9).String())
	assert.Equal(t, "Side(9)", grid.Side(9).String())
	assert.Equal(t, "conn8", grid.Conn8.String())
}
