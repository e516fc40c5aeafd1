package criteria

import (
	"github.com/bpetrov2020/info-f420-tilings/factor"
)

// translation searches for a Beauquier–Nivat factorization
// W = A B C Â B̂ Ĉ: two or three adjacent admissible factors spanning
// exactly half of the cycle, mirrored onto the other half.
//
// The forward pass enumerates (A, B) by start position over the
// admissible index; length-sorted lists allow pruning as soon as
// |A|+|B| passes the half. The backward pass repeats the search keyed
// by finishing position.
func (s *search) translation() *factor.Factorization {
	idx := factor.NewIndex(s.w)

	for p := 1; p <= s.n; p++ {
		for _, a := range idx.ByStart[p] {
			for _, b := range idx.ByStart[s.pos(a.Finish+1)] {
				sum := a.Len() + b.Len()
				if sum > s.half {
					break
				}
				if sum == s.half {
					return s.expand(a, b)
				}
				cs, cl := s.pos(b.Finish+1), s.half-sum
				if idx.Has(cs, cl) {
					return s.expand(a, b, s.factor(cs, cl))
				}
			}
		}
	}
	for p := 1; p <= s.n; p++ {
		for _, c := range idx.ByFinish[p] {
			for _, b := range idx.ByFinish[s.pos(c.Start-1)] {
				sum := c.Len() + b.Len()
				if sum > s.half {
					break
				}
				if sum == s.half {
					return s.expand(b, c)
				}
				al := s.half - sum
				as := s.pos(b.Start - al)
				if idx.Has(as, al) {
					return s.expand(s.factor(as, al), b, c)
				}
			}
		}
	}
	return nil
}

// expand completes a half-factorization to the full cycle by appending,
// for each factor, its backtracked image half a turn later.
func (s *search) expand(half ...factor.Factor) *factor.Factorization {
	fs := make([]factor.Factor, 0, 2*len(half))
	fs = append(fs, half...)
	for _, f := range half {
		fs = append(fs, factor.Factor{
			Start:   s.pos(f.Start + s.half),
			Finish:  s.pos(f.Finish + s.half),
			Content: f.Content.Backtrack(),
		})
	}
	return &factor.Factorization{Kind: factor.Translation, Factors: fs}
}
