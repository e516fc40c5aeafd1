// Package grid defines cell types and sentinel errors for polyomino
// construction from painted grids.
package grid

import (
	"errors"
)

// Sentinel errors for polyomino construction.
var (
	// ErrNoCells indicates an empty cell list.
	ErrNoCells = errors.New("grid: polyomino must have at least one cell")
	// ErrEmptyGrid indicates a mask with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates mask rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDisconnected indicates cells that do not form one rook-connected piece.
	ErrDisconnected = errors.New("grid: cells must be rook-connected")
	// ErrHoles indicates a bounded empty region enclosed by the cells.
	ErrHoles = errors.New("grid: polyomino must not enclose holes")
	// ErrTrace indicates a boundary walk that failed to close; this is a
	// programmer bug, not a property of the input.
	ErrTrace = errors.New("grid: boundary trace did not close")
)

// Cell addresses the unit square whose top-left corner is the lattice
// point (X, Y). The y-axis points downward.
type Cell struct {
	X, Y int
}

// neighbors4 lists the rook-adjacency offsets.
var neighbors4 = [4]Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
