// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridtopo/grid"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	verbose   bool
	unbounded bool
}

// newGrid builds the grid named by the first two positional arguments.
func (o *options) newGrid(ctx context.Context, w, h int) (grid.Grid, error) {
	var opts []grid.Option
	if o.unbounded {
		opts = append(opts, grid.WithUnbounded())
	}
	g, err := grid.New(w, h, opts...)
	if err != nil {
		return grid.Grid{}, err
	}

	l := loggerFromContext(ctx)
	if o.unbounded && (w > grid.MaxDim || h > grid.MaxDim) {
		l.Warn("grid exceeds tested size", "size", g.String(), "max", grid.MaxDim)
	}
	l.Debug("grid ready", "size", g.String(), "cells", g.CellCount())

	return g, nil
}

// NewRootCommand assembles the gridtopo command tree. Diagnostics are logged
// to stderr; command output goes to the command's configured stdout.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:           "gridtopo",
		Short:         "Answer topology questions about an unwrapped 2D grid",
		Long:          `gridtopo converts between linear indices and coordinates, classifies cells as corner, edge or interior, and lists neighbors on a finite grid without wraparound.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if o.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&o.unbounded, "unbounded", false, fmt.Sprintf("allow axes above %d (untested)", grid.MaxDim))

	root.AddCommand(newInfoCmd(o))
	root.AddCommand(newCoordCmd(o))
	root.AddCommand(newIndexCmd(o))
	root.AddCommand(newClassifyCmd(o))
	root.AddCommand(newNeighborsCmd(o))
	root.AddCommand(newStepCmd(o))
	root.AddCommand(newSideCmd(o))
	root.AddCommand(newHopsCmd(o))

	return root
}

// Execute runs the command tree with args, writing results to stdout and
// diagnostics to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}

// parseInts converts every positional argument to an int.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not an integer", i+1, a)
		}
		out[i] = v
	}
	return out, nil
}
