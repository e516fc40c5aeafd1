package isometry

import (
	"fmt"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
)

// Apply interprets the transform on p and returns the moved polygon.
// p is never mutated. Complexity: O(|p|).
func (t Transform) Apply(p Polygon) Polygon {
	out := make(Polygon, len(p))
	switch t.Op {
	case OpTranslate:
		for i, v := range p {
			out[i] = v.Add(t.Translate)
		}
	case OpRotate:
		pivot := p[t.Pivot]
		for i, v := range p {
			out[i] = pivot.Add(rotateVec(v.Sub(pivot), t.Angle)).Add(t.Translate)
		}
	case OpMirror:
		pivot := p[t.Pivot]
		for i, v := range p {
			out[i] = pivot.Add(mirrorVec(v.Sub(pivot), boundary.Angle(t.Angle))).Add(t.Translate)
		}
	default:
		panic(fmt.Sprintf("isometry: unknown op %d", int(t.Op)))
	}
	return out
}

// rotateVec rotates d with the screen-down y-axis convention.
func rotateVec(d boundary.Point, deg int) boundary.Point {
	switch deg {
	case 180, -180:
		return boundary.Point{X: -d.X, Y: -d.Y}
	case 90:
		return boundary.Point{X: d.Y, Y: -d.X}
	case -90:
		return boundary.Point{X: -d.Y, Y: d.X}
	}
	panic(fmt.Sprintf("isometry: rotate by %d°, want ±90° or 180°", deg))
}

// mirrorVec reflects d across the axis at the given letter-level angle.
// The ±45° formulas are swapped relative to their mathematical form:
// with y pointing down, the rising diagonal of letters is the falling
// diagonal of points.
func mirrorVec(d boundary.Point, a boundary.Angle) boundary.Point {
	switch a {
	case boundary.AngleHorizontal:
		return boundary.Point{X: d.X, Y: -d.Y}
	case boundary.AngleVertical:
		return boundary.Point{X: -d.X, Y: d.Y}
	case boundary.AngleRisingDiagonal:
		return boundary.Point{X: -d.Y, Y: -d.X}
	case boundary.AngleFallingDiagonal:
		return boundary.Point{X: d.Y, Y: d.X}
	}
	panic(fmt.Sprintf("isometry: mirror across %d°, want −45°, 0°, 45° or 90°", int(a)))
}
