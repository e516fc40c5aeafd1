// Package tiling grows an isohedral tiling from a seed polygon and its
// neighbor transforms, breadth-first, clipped to a window.
//
// What:
//
//   - Generate: BFS over polygons. Pop a polygon; skip it if already
//     placed; otherwise place it and enqueue every transform image that
//     stays in bounds. Placement order is the output order.
//   - Window clipping: a polygon is in bounds when at least one vertex
//     lies inside the axis-aligned window centered on the origin. The
//     test is a rectangle-contains-coordinate check on float geometry.
//   - Depth bounding: WithMaxDepth replaces the window test with a
//     BFS-depth bound — the diagnostic variant for inspecting the first
//     coronas of a tiling.
//
// Why:
//
//   - The criterion detectors prove a tiling exists; Generate exhibits
//     it, which is what a caller draws and what the round-trip tests
//     inspect.
//
// Determinism:
//
//	Given the same seed, transform list and options, the BFS visits
//	polygons in the same order. Deduplication is by exact
//	vertex-sequence equality — two placements of the same shape with
//	different vertex orders are distinct tiles by design.
//
// Complexity: O(T·|transforms|·|seed|) for T placed tiles, plus the
// dedup map of size O(T).
//
// Errors:
//
//   - ErrEmptySeed: the seed polygon has no vertices.
//   - ErrOptionViolation: a negative window, depth or tile cap.
package tiling
