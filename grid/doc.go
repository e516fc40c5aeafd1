// Package grid turns painted unit-cell sets into polyominoes and their
// clockwise boundary words.
//
// What:
//
//   - Polyomino: a validated set of unit cells — non-empty,
//     rook-connected, hole-free. Cell (x, y) covers the unit square
//     with top-left corner at lattice point (x, y); y grows downward.
//   - New: builds a Polyomino from a cell list, rejecting duplicates
//     silently and invalid shapes with sentinel errors.
//   - FromGrid: builds from a rectangular [][]int mask, treating
//     nonzero entries as cells.
//   - BoundaryWord: the clockwise boundary trace, starting at the
//     top-left corner of the topmost, leftmost cell, keeping the region
//     on the right. The result always satisfies boundary.Parse.
//
// Why:
//
//   - The factorization engine consumes boundary words; this package is
//     the bridge from the painted-grid representation to them.
//
// Errors:
//
//   - ErrNoCells: the cell list is empty.
//   - ErrEmptyGrid: the mask has no rows or no columns.
//   - ErrNonRectangular: mask rows differ in length.
//   - ErrDisconnected: the cells do not form one rook-connected piece.
//   - ErrHoles: the complement encloses a bounded empty region.
//
// Complexity: validation and tracing are O(#cells) time and memory.
package grid
