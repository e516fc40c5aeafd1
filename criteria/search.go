package criteria

import (
	"github.com/bpetrov2020/info-f420-tilings/boundary"
	"github.com/bpetrov2020/info-f420-tilings/factor"
)

// search carries the per-call scratch state shared by the seven
// detectors: the word, its length and half-length, and the precomputed
// Θ-drome tables. It lives for one detection run and is released on
// return.
type search struct {
	w    boundary.Word
	n    int
	half int
	pal  dromeTable
	dr90 dromeTable
}

func newSearch(w boundary.Word) *search {
	return &search{
		w:    w,
		n:    len(w),
		half: len(w) / 2,
		pal:  newDromeTable(w, 180),
		dr90: newDromeTable(w, 90),
	}
}

// pos wraps a 1-based index onto [1, n].
func (s *search) pos(i int) int {
	return boundary.Pos(i, s.n)
}

// factor cuts the cyclic factor of the given length starting at start.
func (s *search) factor(start, length int) factor.Factor {
	return factor.New(s.w, start, length)
}

// content is the cyclic substring of the given length starting at start.
func (s *search) content(start, length int) boundary.Word {
	if length == 0 {
		return ""
	}
	start = s.pos(start)
	return s.w.Extract(start, s.pos(start+length-1))
}

// backtrackAt reports whether the factor of length alen starting at
// bstart equals the backtrack of the one starting at astart.
func (s *search) backtrackAt(astart, alen, bstart int) bool {
	return s.content(bstart, alen) == s.content(astart, alen).Backtrack()
}

// reflectionAt returns the axis angle mapping the factor at bstart onto
// the one at astart, scanning axes in the fixed order.
func (s *search) reflectionAt(astart, bstart, length int) (boundary.Angle, bool) {
	return boundary.ReflectionAngle(s.content(astart, length), s.content(bstart, length))
}

// dromeTable answers "is the cyclic substring of length l starting at p
// a Θ-drome?" in O(1). Indexed ok[p-1][l], l in [0, n].
type dromeTable [][]bool

// newDromeTable fills the table bottom-up: a substring is a Θ-drome
// exactly when its outermost letters match under rotation by deg+180
// and the substring between them is one too.
// Complexity: O(n²) time and memory.
func newDromeTable(w boundary.Word, deg int) dromeTable {
	n := len(w)
	t := make(dromeTable, n)
	for p := range t {
		t[p] = make([]bool, n+1)
		t[p][0] = true
		t[p][1] = true
	}
	for l := 2; l <= n; l++ {
		for p := 1; p <= n; p++ {
			inner := t[boundary.Pos(p+1, n)-1][l-2]
			t[p-1][l] = inner && boundary.Rotate(w.At(p), deg+180) == w.At(p+l-1)
		}
	}
	return t
}

// at reports whether the substring of length l starting at 1-based
// cyclic position p is a Θ-drome. Lengths beyond n are never queried.
func (t dromeTable) at(p, l int, n int) bool {
	return t[boundary.Pos(p, n)-1][l]
}

// isPal reports whether the cyclic substring [start, start+length) is a
// palindrome.
func (s *search) isPal(start, length int) bool {
	return s.pal.at(start, length, s.n)
}

// is90 reports whether the cyclic substring [start, start+length) is a
// 90-drome.
func (s *search) is90(start, length int) bool {
	return s.dr90.at(start, length, s.n)
}
