package isometry

import (
	"errors"
	"fmt"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
)

// ErrInvariant is returned when a factorization violates the shape its
// criterion kind promises. It indicates a programmer bug upstream, not
// a property of the polyomino.
var ErrInvariant = errors.New("isometry: factorization violates criterion shape")

// Op tags the kind of rigid motion a Transform performs.
type Op int

// The three motion tags.
const (
	OpTranslate Op = iota
	OpRotate
	OpMirror
)

// String returns the tag name.
func (o Op) String() string {
	switch o {
	case OpTranslate:
		return "translate"
	case OpRotate:
		return "rotate"
	case OpMirror:
		return "mirror"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Polygon is an ordered sequence of lattice points. Two polygons are
// the same tile only when their vertex sequences match exactly; the
// tiling generator's deduplication relies on that.
type Polygon []boundary.Point

// Seed returns the polygon traced by w: one vertex per boundary
// position, starting at the origin.
func Seed(w boundary.Word) Polygon {
	pts := w.Points()
	return Polygon(pts[:len(pts)-1])
}

// Clone returns an independent copy of p.
func (p Polygon) Clone() Polygon {
	q := make(Polygon, len(p))
	copy(q, p)
	return q
}

// Equal reports strict vertex-sequence equality.
func (p Polygon) Equal(q Polygon) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Transform is one rigid motion of the plane, recorded as a tagged
// value. Rotations and mirrors act about the polygon's Pivot-th vertex
// and are followed by the Translate vector; translations use only
// Translate. Transforms are immutable once built.
type Transform struct {
	Op        Op
	Angle     int // degrees: ±90 or 180 for rotations, −45/0/45/90 for mirrors
	Pivot     int // 0-based vertex index of the polygon being transformed
	Translate boundary.Point
}

// String renders the transform in a compact canonical form.
func (t Transform) String() string {
	switch t.Op {
	case OpTranslate:
		return fmt.Sprintf("translate(%d,%d)", t.Translate.X, t.Translate.Y)
	case OpRotate:
		return fmt.Sprintf("rotate(%d°@v%d)+(%d,%d)", t.Angle, t.Pivot, t.Translate.X, t.Translate.Y)
	default:
		return fmt.Sprintf("mirror(%d°@v%d)+(%d,%d)", t.Angle, t.Pivot, t.Translate.X, t.Translate.Y)
	}
}
