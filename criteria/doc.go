// Package criteria implements the seven boundary-word criteria for
// isohedral polyomino tilings and the orchestrator that tries them in a
// fixed order.
//
// What:
//
//   - Translation:        W = A B C Â B̂ Ĉ, adjacent admissible halves.
//   - HalfTurn:           W = A B C Â D E, B, C, D, E palindromes.
//   - QuarterTurn:        W = A B C, A a palindrome, B, C 90-dromes
//     (degenerate two-factor form allowed).
//   - TypeOneReflection:  W = A B f(B) Â C f(C), per-pair axis angles.
//   - TypeTwoReflection:  W = A B C Â f(C) f(B), one shared axis angle.
//   - TypeOneHalfTurnReflection: W = A B C Â D f(D), B, C palindromes.
//   - TypeTwoHalfTurnReflection: W = A B C D f(B) f(D), A, C
//     palindromes, the two axis angles 90° apart.
//
// Each detector returns the first factorization matching its shape, or
// nil. Detect runs them in the canonical order and returns the first
// success; DetectAll reports every matching criterion for diagnostics.
//
// Canonical order:
//
//	Translation, QuarterTurn, TypeOneReflection, TypeTwoReflection,
//	TypeOneHalfTurnReflection, TypeTwoHalfTurnReflection, HalfTurn.
//
//	The half-turn criterion is the most permissive of the seven — many
//	words satisfying a reflection-family criterion satisfy it too — so
//	it is tried last and acts as the fallback. The reflection families
//	are tried before it to report the richer symmetry when one exists.
//
// Determinism:
//
//	Every detector iterates split points by ascending start position,
//	then ascending length; the admissible-factor index is consumed in
//	its stored order (ascending position, ascending length). Given one
//	word, the result is fully reproducible.
//
// Complexity (n = |W|):
//
//	Palindrome and 90-drome tables cost O(n²) time and memory per
//	detection run; detectors are polynomial nested-loop searches over
//	cyclic split points on top of O(1) table lookups. Nothing outlives
//	a single call.
//
// Errors:
//
//   - Malformed boundaries surface the boundary package's Parse errors.
//   - ErrBoundaryTooLong: input exceeds a caller-set cap (WithMaxLen).
//   - ErrOptionViolation: an invalid option value was supplied.
//   - "No criterion applies" is not an error: Detect returns (nil, nil).
package criteria
