// Package boundary defines the four-letter alphabet of unit lattice
// moves, transforms on letters and words, and the cyclic boundary words
// that describe polyomino outlines.
//
// What:
//
//   - Letter: one of R, U, L, D, each bound to a unit lattice vector.
//     The y-axis points downward (screen convention); U moves to (0,−1).
//   - Rotate, Complement, Reflect: letter transforms by multiples of 90°
//     and across the four lattice-compatible axes (−45°, 0°, 45°, 90°).
//   - Word: a cyclic sequence of letters with 1-based positions.
//     Extract, Twice, Reverse, Complement, Backtrack, CommonPrefix.
//   - Θ-drome predicates: IsPalindrome (Θ=180°), Is90Drome (Θ=90°) —
//     words whose path folds onto itself under rotation by Θ.
//   - Reflection predicates: IsReflection, IsAnyReflection,
//     ReflectionAngle over the fixed axis order −45°, 0°, 45°, 90°.
//   - Paths: Point, Points, PathVector — the lattice trace of a word.
//   - Parse: validation of boundary words (alphabet, even length ≥ 4,
//     closed simple path).
//
// Why:
//
//   - Every tiling criterion is a statement about factors of the cyclic
//     boundary word; this package is the vocabulary they share.
//   - Centralizing cyclic index arithmetic (Pos) keeps the seven
//     criterion detectors free of off-by-one drift.
//
// Conventions:
//
//   - Positions are 1-based and inclusive; index arithmetic wraps
//     modulo the word length via Pos.
//   - The alphabet order [R, U, L, D] is load-bearing: advancing one
//     step in it is a 90° counter-clockwise turn in the mathematical
//     sense, and all rotation helpers rely on that.
//   - Backtrack(w) = Complement(Reverse(w)) retraces w's path in the
//     opposite direction.
//
// Errors:
//
//   - ErrEmptyWord: empty input.
//   - ErrIllegalLetter: a byte outside {r,u,l,d}.
//   - ErrOddLength: boundary words must have even length.
//   - ErrTooShort: boundary words must have at least 4 letters.
//   - ErrOpenPath: the path does not return to its origin.
//   - ErrSelfIntersection: the path revisits a lattice point.
//
// Complexity: all word predicates are O(|W|); Parse is O(|W|) time and
// memory.
package boundary
