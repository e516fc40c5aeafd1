package isometry

import (
	"fmt"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
	"github.com/bpetrov2020/info-f420-tilings/factor"
)

// Build returns the neighbor transforms of the tiling generated by fz,
// in the criterion's canonical emission order. The factorization must
// come from a detector run on the same word; any shape mismatch is
// reported as ErrInvariant.
// Complexity: O(|w|).
func Build(w boundary.Word, fz *factor.Factorization) ([]Transform, error) {
	if fz == nil {
		return nil, fmt.Errorf("%w: nil factorization", ErrInvariant)
	}
	if err := fz.Validate(w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	b := &builder{w: w, n: len(w), pts: w.Points(), fz: fz}
	switch fz.Kind {
	case factor.Translation:
		return b.translation()
	case factor.HalfTurn:
		return b.halfturn()
	case factor.QuarterTurn:
		return b.quarterturn()
	case factor.TypeOneReflection:
		return b.reflection1()
	case factor.TypeTwoReflection:
		return b.reflection2()
	case factor.TypeOneHalfTurnReflection:
		return b.htreflection1()
	case factor.TypeTwoHalfTurnReflection:
		return b.htreflection2()
	}
	return nil, fmt.Errorf("%w: unknown kind %v", ErrInvariant, fz.Kind)
}

// builder carries the vertex table shared by the per-kind emitters.
type builder struct {
	w   boundary.Word
	n   int
	pts []boundary.Point
	fz  *factor.Factorization
}

// vx returns the lattice vertex at 1-based boundary position p: the
// point of the path before its p-th letter is walked.
func (b *builder) vx(p int) boundary.Point {
	return b.pts[boundary.Pos(p, b.n)-1]
}

// pividx returns the polygon vertex index for boundary position p.
func (b *builder) pividx(p int) int {
	return boundary.Pos(p, b.n) - 1
}

// count enforces the factor count a kind promises.
func (b *builder) count(want ...int) error {
	for _, c := range want {
		if len(b.fz.Factors) == c {
			return nil
		}
	}
	return fmt.Errorf("%w: %v factorization with %d factors", ErrInvariant, b.fz.Kind, len(b.fz.Factors))
}

// translation emits {u, v, v−u, −u, −v, u−v} for the lattice basis
// spanned by the halves: u crosses the Ĉ piece, v crosses the Â piece.
func (b *builder) translation() ([]Transform, error) {
	if err := b.count(4, 6); err != nil {
		return nil, err
	}
	f := b.fz.Factors
	var u, v boundary.Point
	if len(f) == 6 {
		u = b.vx(f[2].Start).Sub(b.vx(f[0].Start))
		v = b.vx(f[3].Start).Sub(b.vx(f[1].Start))
	} else {
		u = b.vx(f[2].Start).Sub(b.vx(f[0].Start))
		v = b.vx(f[2].Start).Sub(b.vx(f[1].Start))
	}
	vecs := []boundary.Point{u, v, v.Sub(u), u.Neg(), v.Neg(), u.Sub(v)}
	ts := make([]Transform, 0, len(vecs))
	for _, d := range vecs {
		ts = append(ts, Transform{Op: OpTranslate, Translate: d})
	}
	return ts, nil
}

// halfturn emits the A→Â translation and its inverse, then a 180°
// rotation about the midpoint of each palindrome factor, expressed as a
// pivot at the factor's start translated onto the next factor's start.
func (b *builder) halfturn() ([]Transform, error) {
	if err := b.count(6); err != nil {
		return nil, err
	}
	f := b.fz.Factors
	t := b.vx(f[4].Start).Sub(b.vx(f[0].Start))
	ts := []Transform{
		{Op: OpTranslate, Translate: t},
		{Op: OpTranslate, Translate: t.Neg()},
	}
	for _, i := range []int{1, 2, 4, 5} {
		ts = append(ts, b.spin(f[i].Start, f[(i+1)%6].Start))
	}
	return ts, nil
}

// spin is a 180° rotation pivoted at boundary position p, landing the
// pivot on position q: net effect, a half-turn about the midpoint of
// the two vertices.
func (b *builder) spin(p, q int) Transform {
	return Transform{
		Op:        OpRotate,
		Angle:     180,
		Pivot:     b.pividx(p),
		Translate: b.vx(q).Sub(b.vx(p)),
	}
}

// quarterturn emits, per factor: a half-turn about the palindrome
// midpoint for A, or a pair of quarter-turns about the 90-drome's
// central vertex for 90-drome factors.
func (b *builder) quarterturn() ([]Transform, error) {
	if err := b.count(2, 3); err != nil {
		return nil, err
	}
	f := b.fz.Factors
	var ts []Transform
	for i, fc := range f {
		next := f[(i+1)%len(f)].Start
		if i == 0 && fc.Content.IsPalindrome() {
			ts = append(ts, b.spin(fc.Start, next))
			continue
		}
		if !fc.Content.Is90Drome() || fc.Len()%2 != 0 {
			return nil, fmt.Errorf("%w: quarter-turn factor %d is not an even 90-drome", ErrInvariant, i)
		}
		ts = append(ts,
			Transform{Op: OpRotate, Angle: 90, Pivot: b.pividx(fc.Start), Translate: b.vx(next).Sub(b.vx(fc.Start))},
			Transform{Op: OpRotate, Angle: -90, Pivot: b.pividx(fc.Start + fc.Len()/2)},
		)
	}
	return ts, nil
}

// mirrorPair emits the two glide reflections gluing a reflected factor
// pair: each is pivoted at one member's start vertex and lands it on
// the partner's start vertex.
func (b *builder) mirrorPair(i, j int) ([]Transform, error) {
	fi, fj := b.fz.Factors[i], b.fz.Factors[j]
	ang, ok := boundary.ReflectionAngle(fi.Content, fj.Content)
	if !ok {
		return nil, fmt.Errorf("%w: factors %d and %d are not reflections of each other", ErrInvariant, i, j)
	}
	pi, pj := b.vx(fi.Start), b.vx(fj.Start)
	return []Transform{
		{Op: OpMirror, Angle: int(ang), Pivot: b.pividx(fj.Start), Translate: pi.Sub(pj)},
		{Op: OpMirror, Angle: int(ang), Pivot: b.pividx(fi.Start), Translate: pj.Sub(pi)},
	}, nil
}

// reflection1 emits the period translation of A B f(B) Â and the four
// glide reflections of the two reflected pairs.
func (b *builder) reflection1() ([]Transform, error) {
	if err := b.count(6); err != nil {
		return nil, err
	}
	f := b.fz.Factors
	u := b.vx(f[4].Start).Sub(b.vx(f[0].Start))
	ts := []Transform{
		{Op: OpTranslate, Translate: u},
		{Op: OpTranslate, Translate: u.Neg()},
	}
	for _, pair := range [][2]int{{1, 2}, {4, 5}} {
		ms, err := b.mirrorPair(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		ts = append(ts, ms...)
	}
	return ts, nil
}

// reflection2 emits the A→Â translation pair and four mirrors at the
// criterion's single axis angle.
func (b *builder) reflection2() ([]Transform, error) {
	if err := b.count(6); err != nil {
		return nil, err
	}
	f := b.fz.Factors
	t := b.vx(f[1].Start).Sub(b.vx(f[3].Start))
	ts := []Transform{
		{Op: OpTranslate, Translate: t},
		{Op: OpTranslate, Translate: t.Neg()},
	}
	for _, pair := range [][2]int{{1, 5}, {2, 4}} {
		ms, err := b.mirrorPair(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		ts = append(ts, ms...)
	}
	if ts[2].Angle != ts[4].Angle {
		return nil, fmt.Errorf("%w: type-2 reflection pairs disagree on the axis angle", ErrInvariant)
	}
	return ts, nil
}

// htreflection1 emits the A→Â translation pair, half-turns about the
// two palindromes, and the glide reflections of the (D, f(D)) pair.
func (b *builder) htreflection1() ([]Transform, error) {
	if err := b.count(6); err != nil {
		return nil, err
	}
	f := b.fz.Factors
	t := b.vx(f[1].Start).Sub(b.vx(f[3].Start))
	ts := []Transform{
		{Op: OpTranslate, Translate: t},
		{Op: OpTranslate, Translate: t.Neg()},
		b.spin(f[1].Start, f[2].Start),
		b.spin(f[2].Start, f[3].Start),
	}
	ms, err := b.mirrorPair(4, 5)
	if err != nil {
		return nil, err
	}
	return append(ts, ms...), nil
}

// htreflection2 emits half-turns about the two palindromes and the four
// glide reflections of the (B, f(B)) and (D, f(D)) pairs.
func (b *builder) htreflection2() ([]Transform, error) {
	if err := b.count(6); err != nil {
		return nil, err
	}
	f := b.fz.Factors
	ts := []Transform{
		b.spin(f[0].Start, f[1].Start),
		b.spin(f[2].Start, f[3].Start),
	}
	for _, pair := range [][2]int{{1, 4}, {3, 5}} {
		ms, err := b.mirrorPair(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		ts = append(ts, ms...)
	}
	return ts, nil
}
