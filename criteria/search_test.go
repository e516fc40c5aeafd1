package criteria

import (
	"testing"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
)

// TestDromeTable_MatchesPredicate cross-checks the O(1) tables against
// the direct word predicates for every cyclic substring.
func TestDromeTable_MatchesPredicate(t *testing.T) {
	w := boundary.Word("rrdldluu")
	s := newSearch(w)
	n := len(w)
	for p := 1; p <= n; p++ {
		for l := 0; l <= n; l++ {
			sub := s.content(p, l)
			if got, want := s.isPal(p, l), sub.IsPalindrome(); got != want {
				t.Errorf("pal[%d][%d] = %v; predicate says %v (%q)", p, l, got, want, sub)
			}
			if got, want := s.is90(p, l), sub.Is90Drome(); got != want {
				t.Errorf("dr90[%d][%d] = %v; predicate says %v (%q)", p, l, got, want, sub)
			}
		}
	}
}

func TestBacktrackAt(t *testing.T) {
	s := newSearch("rrdldluu")
	// "ur" wrapping at position 8 backtracks to "ld" at position 4.
	if !s.backtrackAt(8, 2, 4) {
		t.Error("backtrackAt(8,2,4) = false; want true")
	}
	if s.backtrackAt(1, 2, 3) {
		t.Error("backtrackAt(1,2,3) = true; want false")
	}
}
