package factor

import (
	"sort"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
)

// Admissible returns every maximal gapped-mirror half of w: factors A
// whose antipodal partner Â (starting |w|/2 later) equals Backtrack(A),
// where the pair cannot be grown symmetrically by one more letter on
// each side.
//
// The scan considers every center of size 1 (a letter) and size 2
// (between two letters). For each center it measures how far the mirror
// relation extends to the left and to the right; a factor is recorded
// only when both reaches agree and are positive, which is exactly the
// symmetric-maximality condition.
//
// Precondition: |w| is even. Output is sorted by ascending start, then
// ascending length. Complexity: O(|w|²) time, O(|w|) output.
func Admissible(w boundary.Word) []Factor {
	n := len(w)
	half := n / 2
	ww := w.Twice()
	bb := w.Backtrack().Twice()

	var out []Factor
	for c := 1; c <= n; c++ {
		d := boundary.Pos(c+half, n)
		// Size-1 center at position c.
		r := reach(ww, c, bb, n-d+1, half)
		l := reach(ww, d, bb, n-c+1, half)
		if r == l && r > 0 {
			out = append(out, New(w, c-r+1, 2*r-1))
		}
		// Size-2 center between positions c and c+1.
		r = reach(ww, boundary.Pos(d+1, n), bb, n-c+1, half)
		l = reach(ww, boundary.Pos(c+1, n), bb, n-d+1, half)
		if r == l && r > 0 {
			out = append(out, New(w, c-l+1, 2*l))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Len() < out[j].Len()
	})
	return out
}

// reach measures the common prefix length of a (from 1-based position
// pa) and b (from pb), capped at max.
func reach(a boundary.Word, pa int, b boundary.Word, pb int, max int) int {
	m := 0
	for m < max && pa-1+m < len(a) && pb-1+m < len(b) && a[pa-1+m] == b[pb-1+m] {
		m++
	}
	return m
}

// Index keys the admissible factors of a word by start and by finish
// position. Every position in [1, |w|] is present; positions with no
// factor map to an empty list. Lists are sorted by ascending length.
type Index struct {
	ByStart  map[int][]Factor
	ByFinish map[int][]Factor
}

// NewIndex builds the position index over the admissible factors of w.
func NewIndex(w boundary.Word) *Index {
	n := len(w)
	idx := &Index{
		ByStart:  make(map[int][]Factor, n),
		ByFinish: make(map[int][]Factor, n),
	}
	for p := 1; p <= n; p++ {
		idx.ByStart[p] = nil
		idx.ByFinish[p] = nil
	}
	for _, f := range Admissible(w) {
		idx.ByStart[f.Start] = append(idx.ByStart[f.Start], f)
		idx.ByFinish[f.Finish] = append(idx.ByFinish[f.Finish], f)
	}
	for p := 1; p <= n; p++ {
		sortByLen(idx.ByStart[p])
		sortByLen(idx.ByFinish[p])
	}
	return idx
}

// Has reports whether an admissible factor with the given start and
// length exists.
func (idx *Index) Has(start, length int) bool {
	for _, f := range idx.ByStart[start] {
		if f.Len() == length {
			return true
		}
	}
	return false
}

func sortByLen(fs []Factor) {
	sort.Slice(fs, func(i, j int) bool { return fs[i].Len() < fs[j].Len() })
}
