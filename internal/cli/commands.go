// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridtopo/grid"
	"github.com/katalvlaran/gridtopo/gridgraph"
)

func newInfoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info WIDTH HEIGHT",
		Short: "Print cell counts, corners and edge counts of a grid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			g, err := o.newGrid(cmd.Context(), v[0], v[1])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			counts := g.CountByClass()
			corners := g.Corners()
			fmt.Fprintf(w, "grid: %v\n", g)
			fmt.Fprintf(w, "cells: %d\n", g.CellCount())
			fmt.Fprintf(w, "corners: %s\n", joinPoints(corners[:]))
			for _, c := range []grid.Class{grid.Corner, grid.Edge, grid.Interior} {
				fmt.Fprintf(w, "%v: %d\n", c, counts[c])
			}
			for _, c := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
				n, err := gridgraph.EdgeCount(g, c)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "edges %v: %d\n", c, n)
			}
			return nil
		},
	}
}

func newCoordCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "coord WIDTH HEIGHT INDEX",
		Short: "Convert a row-major index to (x,y)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			g, err := o.newGrid(cmd.Context(), v[0], v[1])
			if err != nil {
				return err
			}
			p, err := g.Coordinate(v[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newIndexCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "index WIDTH HEIGHT X Y",
		Short: "Convert (x,y) to a row-major index",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, p, err := gridAndPoint(cmd, o, args)
			if err != nil {
				return err
			}
			i, err := g.Index(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i)
			return nil
		},
	}
}

func newClassifyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "classify WIDTH HEIGHT X Y",
		Short: "Print corner, edge or interior for a cell",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, p, err := gridAndPoint(cmd, o, args)
			if err != nil {
				return err
			}
			c, err := g.Classify(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func newNeighborsCmd(o *options) *cobra.Command {
	var (
		conn    string
		indices bool
	)
	cmd := &cobra.Command{
		Use:   "neighbors WIDTH HEIGHT X Y",
		Short: "List the in-grid neighbors of a cell in clockwise order from north",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := grid.ParseConnectivity(conn)
			if err != nil {
				return err
			}
			g, p, err := gridAndPoint(cmd, o, args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if indices {
				idx, err := g.NeighborIndices(p, c)
				if err != nil {
					return err
				}
				writeInts(w, idx)
			} else {
				nbs, err := g.Neighbors(p, c)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, joinPoints(nbs))
			}

			full, err := g.HasFullNeighborSet(p, c)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("neighbors", "cell", p.String(), "conn", c.String(), "full", full)
			return nil
		},
	}
	cmd.Flags().StringVarP(&conn, "conn", "c", "8", "connectivity: 4 or 8")
	cmd.Flags().BoolVarP(&indices, "index", "i", false, "print row-major indices instead of points")
	return cmd
}

func newStepCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "step WIDTH HEIGHT X Y n|ne|e|se|s|sw|w|nw",
		Short: "Print the cell one step away in a direction, or none at the border",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := grid.ParseDirection(args[4])
			if err != nil {
				return err
			}
			g, p, err := gridAndPoint(cmd, o, args[:4])
			if err != nil {
				return err
			}
			q, ok, err := g.Neighbor(p, d)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), q)
			return nil
		},
	}
}

func newSideCmd(o *options) *cobra.Command {
	var indices bool
	cmd := &cobra.Command{
		Use:   "side WIDTH HEIGHT left|right|top|bottom",
		Short: "List the cells of one boundary row or column",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := grid.ParseSide(args[2])
			if err != nil {
				return err
			}
			v, err := parseInts(args[:2])
			if err != nil {
				return err
			}
			g, err := o.newGrid(cmd.Context(), v[0], v[1])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if indices {
				idx, err := g.SideIndices(s)
				if err != nil {
					return err
				}
				writeInts(w, idx)
				return nil
			}
			pts, err := g.Side(s)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, joinPoints(pts))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&indices, "index", "i", false, "print row-major indices instead of points")
	return cmd
}

func newHopsCmd(o *options) *cobra.Command {
	var conn string
	cmd := &cobra.Command{
		Use:   "hops WIDTH HEIGHT X1 Y1 X2 Y2",
		Short: "Print the minimum number of neighbor steps between two cells",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := grid.ParseConnectivity(conn)
			if err != nil {
				return err
			}
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			g, err := o.newGrid(cmd.Context(), v[0], v[1])
			if err != nil {
				return err
			}
			n, err := gridgraph.Hops(g, c, grid.Pt(v[2], v[3]), grid.Pt(v[4], v[5]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&conn, "conn", "c", "8", "connectivity: 4 or 8")
	return cmd
}

// gridAndPoint parses WIDTH HEIGHT X Y.
func gridAndPoint(cmd *cobra.Command, o *options, args []string) (grid.Grid, grid.Point, error) {
	v, err := parseInts(args)
	if err != nil {
		return grid.Grid{}, grid.Point{}, err
	}
	g, err := o.newGrid(cmd.Context(), v[0], v[1])
	if err != nil {
		return grid.Grid{}, grid.Point{}, err
	}
	return g, grid.Pt(v[2], v[3]), nil
}

func joinPoints(pts []grid.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func writeInts(w io.Writer, vals []int) {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
