// Package factor models contiguous pieces of a cyclic boundary word and
// the admissible-factor index used by the translation criterion.
//
// What:
//
//   - Factor: a piece of a cyclic word recorded as (Start, Finish,
//     Content), 1-based inclusive; Start may exceed Finish when the
//     piece wraps through the end of the word.
//   - Factorization: an ordered list of factors covering one full turn
//     of the cycle, tagged with the criterion Kind that produced it.
//   - Admissible: all maximal gapped-mirror halves (A, Â) — pairs of
//     antipodal factors with Â = Backtrack(A) that cannot be grown
//     symmetrically by another letter.
//   - Index: the admissible factors keyed by start and by finish
//     position, each list sorted by ascending length.
//
// Why:
//
//   - The translation (Beauquier–Nivat) criterion is a search over
//     triples of adjacent admissible factors; with the index in hand it
//     prunes on length sums instead of re-scanning the word.
//
// Determinism:
//
//	Admissible returns factors sorted by ascending start position, then
//	ascending length, and the Index lists inherit that order. Detector
//	tie-breaking relies on it.
//
// Complexity (n = |W|):
//
//   - Admissible: O(n²) time (a pair of linear walks per center), O(n)
//     output.
//   - NewIndex:   O(n + k log k) over k admissible factors.
//   - Factorization.Validate: O(n).
//
// Errors:
//
//   - ErrChain: consecutive factors do not chain start-after-finish.
//   - ErrCoverage: factor contents do not cover the word exactly once,
//     or a factor's content disagrees with the word at its positions.
package factor
