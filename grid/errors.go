// SPDX-License-Identifier: MIT
// Package: gridtopo/grid
//
// errors.go — sentinel errors for the grid package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Call sites attach method context with %w, e.g.
//     "Coordinate: index 9 not in [0,9): grid: index out of bounds".
//   • Query methods never panic. Panics are confined to option constructors
//     and MustNew (programmer error).

package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates New was called with an axis below MinDim or
// above the configured ceiling, or with a product that overflows int.
var ErrInvalidDimensions = errors.New("grid: invalid dimensions")

// ErrIndexOutOfBounds indicates a linear index outside [0, CellCount()).
var ErrIndexOutOfBounds = errors.New("grid: index out of bounds")

// ErrCoordinateOutOfBounds indicates a Point outside [0,width)×[0,height).
var ErrCoordinateOutOfBounds = errors.New("grid: coordinate out of bounds")

// ErrUnknownConnectivity indicates a Connectivity other than Conn4 or Conn8.
var ErrUnknownConnectivity = errors.New("grid: unknown connectivity")

// ErrUnknownDirection indicates a Direction outside North..NorthWest.
var ErrUnknownDirection = errors.New("grid: unknown direction")

// ErrUnknownSide indicates a Side other than Left, Right, Top or Bottom.
var ErrUnknownSide = errors.New("grid: unknown side")

// Method tags used as error prefixes.
const (
	methodNew               = "New"
	methodCoordinate        = "Coordinate"
	methodIndex             = "Index"
	methodClassify          = "Classify"
	methodSide              = "Side"
	methodNeighbor          = "Neighbor"
	methodNeighbors         = "Neighbors"
	methodNeighborCount     = "NeighborCount"
	methodOffsets           = "Offsets"
	methodParseConnectivity = "ParseConnectivity"
	methodParseDirection    = "ParseDirection"
	methodParseSide         = "ParseSide"
)

// gridErrorf prefixes a formatted message with the method tag and wraps sentinel.
func gridErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
