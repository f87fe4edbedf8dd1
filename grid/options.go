// SPDX-License-Identifier: MIT
// Package: gridtopo/grid
//
// options.go — functional configuration for New.
//
// Ceiling policy:
//   • By default each axis must lie in [MinDim, MaxDim] = [2, 511]; that is the
//     range the package is tested against, and New rejects anything larger.
//   • WithMaxDim(n) moves the ceiling; WithUnbounded() removes it. Grids above
//     511 per axis are then fully functional but outside the tested range.
//   • MinDim is never negotiable: a 1-wide grid has no well-defined corners.
//   • Option constructors panic on nonsensical values (programmer error);
//     New itself only returns errors.

package grid

// Dimension limits (single source of truth).
const (
	// MinDim is the smallest accepted width or height.
	MinDim = 2
	// MaxDim is the largest tested width or height, and the default ceiling.
	MaxDim = 511
)

const panicMaxDimInvalid = "grid: WithMaxDim: ceiling must be ≥ MinDim"

// Option mutates construction options. Applying the same option twice is harmless.
type Option func(*Options)

// Options holds the resolved construction policy.
type Options struct {
	maxDim    int
	unbounded bool
}

// defaultOptions returns the hard [MinDim, MaxDim] policy.
func defaultOptions() Options {
	return Options{maxDim: MaxDim}
}

// WithMaxDim sets the per-axis ceiling to n. Panics if n < MinDim.
func WithMaxDim(n int) Option {
	if n < MinDim {
		panic(panicMaxDimInvalid)
	}

	return func(o *Options) {
		o.maxDim = n
		o.unbounded = false
	}
}

// WithUnbounded removes the per-axis ceiling. The product width*height must
// still fit in an int.
func WithUnbounded() Option {
	return func(o *Options) {
		o.unbounded = true
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
