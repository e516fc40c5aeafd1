// Package isometry turns a criterion factorization into the rigid
// motions that map a seed tile onto each of its neighbors in the
// isohedral tiling.
//
// What:
//
//   - Polygon: an ordered sequence of lattice points; equality is
//     strict sequence equality.
//   - Transform: a tagged value — translate, rotate (±90°, 180°) about
//     a polygon vertex, or mirror (−45°, 0°, 45°, 90°) through one —
//     always followed by a translation. Apply interprets the tag.
//   - Build: dispatches on the factorization kind and emits the
//     neighbor transforms for that criterion.
//   - Seed: the polygon traced by a boundary word.
//
// Why tagged values instead of closures:
//
//	Transforms built once at factorization time stay serializable,
//	comparable and testable in isolation; the tiling generator only
//	interprets the tag.
//
// Conventions:
//
//   - Pivot indexes a vertex of the polygon being transformed (0-based;
//     factor start position p pivots at vertex p−1).
//   - Rotation formulas match the screen-down y-axis: 180° → (−x,−y),
//     90° → (y,−x), −90° → (−y,x).
//   - Mirror angles are letter-level axis angles; at application time
//     the ±45° point formulas swap to compensate for the inverted
//     y-axis.
//
// Contract:
//
//	Applied to the seed polygon, every emitted transform yields a tile
//	of equal area whose interior does not overlap the seed. Neighbors
//	across a shared factor piece share that piece's boundary edges; the
//	two composite translations of a degenerate (four-factor)
//	translation criterion touch the seed only at a corner.
//
// Errors:
//
//   - ErrInvariant: the factorization does not have the shape its kind
//     promises (wrong factor count, broken chain, a reflected pair with
//     no axis, an odd 90-drome). Build's caller vetted the
//     factorization, so this signals a programmer bug.
package isometry
