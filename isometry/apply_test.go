package isometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
	"github.com/bpetrov2020/info-f420-tilings/isometry"
)

func square() isometry.Polygon {
	return isometry.Seed("urdl")
}

func TestSeed(t *testing.T) {
	assert.Equal(t, isometry.Polygon{
		{X: 0, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0},
	}, square())
}

func TestApply_Translate(t *testing.T) {
	tr := isometry.Transform{Op: isometry.OpTranslate, Translate: boundary.Point{X: 2, Y: -1}}
	got := tr.Apply(square())
	assert.Equal(t, isometry.Polygon{
		{X: 2, Y: -1}, {X: 2, Y: -2}, {X: 3, Y: -2}, {X: 3, Y: -1},
	}, got)
}

func TestApply_Rotate(t *testing.T) {
	p := square()

	half := isometry.Transform{Op: isometry.OpRotate, Angle: 180, Pivot: 0}
	assert.Equal(t, isometry.Polygon{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0},
	}, half.Apply(p))

	// Screen-down quarter turn: (dx,dy) → (dy,−dx).
	quarter := isometry.Transform{Op: isometry.OpRotate, Angle: 90, Pivot: 0}
	assert.Equal(t, isometry.Polygon{
		{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1},
	}, quarter.Apply(p))

	// A rotation followed by its inverse about the same pivot is the identity.
	back := isometry.Transform{Op: isometry.OpRotate, Angle: -90, Pivot: 0}
	assert.True(t, back.Apply(quarter.Apply(p)).Equal(p))
}

func TestApply_Mirror(t *testing.T) {
	p := square()
	for _, ang := range boundary.ReflectionAngles {
		m := isometry.Transform{Op: isometry.OpMirror, Angle: int(ang), Pivot: 0}
		assert.True(t, m.Apply(m.Apply(p)).Equal(p), "mirror at %d° must be an involution", ang)
	}

	// The rising diagonal of letters acts as (x,y) → (−y,−x) on points.
	m := isometry.Transform{Op: isometry.OpMirror, Angle: 45, Pivot: 0}
	assert.Equal(t, isometry.Polygon{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: -1},
	}, m.Apply(p))
}

func TestApply_DoesNotMutate(t *testing.T) {
	p := square()
	orig := p.Clone()
	tr := isometry.Transform{Op: isometry.OpRotate, Angle: 180, Pivot: 2, Translate: boundary.Point{X: 5, Y: 5}}
	_ = tr.Apply(p)
	assert.True(t, p.Equal(orig))
}

func TestPolygon_Equal(t *testing.T) {
	p := square()
	assert.True(t, p.Equal(p.Clone()))
	q := p.Clone()
	q[0] = boundary.Point{X: 9, Y: 9}
	assert.False(t, p.Equal(q))
	assert.False(t, p.Equal(p[:3]))
}
