// SPDX-License-Identifier: MIT
// Package: gridtopo/grid
//
// types.go — value types shared by every grid query: Point, Connectivity,
// Class and Side. All of them are small comparable values; none is mutated
// after creation.

package grid

import (
	"fmt"
	"strings"
)

// Point is a cell coordinate. X grows to the right, Y grows downwards,
// so (0,0) is the top-left cell.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or orthogonal
// plus diagonal (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// Degree is the neighbor count of an interior cell: 4 or 8.
// It returns 0 for an unknown Connectivity.
func (c Connectivity) Degree() int {
	switch c {
	case Conn4:
		return 4
	case Conn8:
		return 8
	default:
		return 0
	}
}

func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// ParseConnectivity accepts "4", "conn4", "8" or "conn8" (case-insensitive).
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "4", "conn4":
		return Conn4, nil
	case "8", "conn8":
		return Conn8, nil
	default:
		return 0, gridErrorf(methodParseConnectivity, ErrUnknownConnectivity, "%q", s)
	}
}

// Class is the boundary classification of a cell.
type Class int

const (
	// Interior cells touch no boundary.
	Interior Class = iota
	// Edge cells touch exactly one boundary axis.
	Edge
	// Corner cells touch a boundary on both axes.
	Corner
)

func (c Class) String() string {
	switch c {
	case Interior:
		return "interior"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Side names one of the four extremal rows/columns of a grid.
type Side int

const (
	// Left is the column x == 0.
	Left Side = iota
	// Right is the column x == width-1.
	Right
	// Top is the row y == 0.
	Top
	// Bottom is the row y == height-1.
	Bottom
)

// Sides lists every Side in declaration order.
var Sides = [4]Side{Left, Right, Top, Bottom}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts "left", "right", "top" or "bottom" (case-insensitive).
func ParseSide(s string) (Side, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, side := range Sides {
		if side.String() == want {
			return side, nil
		}
	}

	return 0, gridErrorf(methodParseSide, ErrUnknownSide, "%q", s)
}
