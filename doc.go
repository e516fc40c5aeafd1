// Package tilings decides whether a polyomino tiles the plane
// isohedrally, and builds the tiling when it does — all from the
// polyomino's boundary word alone.
//
// 🧩 What is info-f420-tilings?
//
//	A pure-Go engine for the boundary-word criteria of isohedral
//	polyomino tilings:
//		• Alphabet & words: the four unit moves {r,u,l,d}, letter rotations
//		  and axis reflections, cyclic boundary words, lattice paths
//		• Factors: contiguous pieces of a cyclic word, plus the admissible
//		  (maximal gapped-mirror) factor index
//		• Criteria: seven detectors — translation, half-turn, quarter-turn,
//		  two reflection and two half-turn-reflection families
//		• Isometries: tagged plane transforms (translate, rotate, mirror),
//		  one per tile neighbor, built from a factorization
//		• Tiling: breadth-first generation of the tiling, clipped to a window
//		• Grid: painted cell sets — validation and boundary tracing
//
// ✨ Why choose it?
//
//   - Decides tilability from the boundary word alone — cyclic word
//     combinatorics, no backtracking search over tile placements
//   - Deterministic – fixed iteration orders, reproducible factorizations
//     and tilings
//   - Pure values – every word, factor and transform is immutable after
//     construction; no shared state, no hidden caches
//
// Everything is organized under six subpackages:
//
//	boundary/ — alphabet, letter transforms, cyclic words, lattice paths
//	factor/   — factor model + admissible-factor index
//	criteria/ — the seven criterion detectors and the orchestrator
//	isometry/ — tagged plane transforms and per-criterion builders
//	tiling/   — BFS tiling generator with window clipping
//	grid/     — polyomino cell sets: validation + boundary tracing
//
// A typical pipeline:
//
//	w, _ := boundary.Parse("rrdldluu")            // L-tromino, clockwise
//	fz, _ := criteria.Detect(w)                   // nil ⇒ no isohedral tiling
//	ts, _ := isometry.Build(w, fz)                // one transform per neighbor
//	tiles, _ := tiling.Generate(isometry.Seed(w), ts, tiling.WithWindow(12, 12))
//
// Dive into each subpackage's doc.go for full contracts, error lists and
// complexity notes.
package tilings
