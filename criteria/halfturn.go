package criteria

import (
	"github.com/bpetrov2020/info-f420-tilings/factor"
)

// halfturn searches for W = A B C Â D E with B, C, D, E palindromes
// and Â = Backtrack(A): the Conway criterion for tiling by half-turns.
// All six factors are nonempty. Split points iterate by ascending start
// and length; the first match wins.
func (s *search) halfturn() *factor.Factorization {
	n := s.n
	for as := 1; as <= n; as++ {
		for al := 1; al <= (n-4)/2; al++ {
			bs := s.pos(as + al)
			for bl := 1; bl <= n-2*al-3; bl++ {
				if !s.isPal(bs, bl) {
					continue
				}
				cs := s.pos(bs + bl)
				for cl := 1; cl <= n-2*al-bl-2; cl++ {
					if !s.isPal(cs, cl) {
						continue
					}
					hs := s.pos(cs + cl)
					if !s.backtrackAt(as, al, hs) {
						continue
					}
					rem := n - 2*al - bl - cl
					ds := s.pos(hs + al)
					for dl := 1; dl < rem; dl++ {
						if !s.isPal(ds, dl) {
							continue
						}
						es := s.pos(ds + dl)
						if !s.isPal(es, rem-dl) {
							continue
						}
						return &factor.Factorization{
							Kind: factor.HalfTurn,
							Factors: []factor.Factor{
								s.factor(as, al), s.factor(bs, bl), s.factor(cs, cl),
								s.factor(hs, al), s.factor(ds, dl), s.factor(es, rem-dl),
							},
						}
					}
				}
			}
		}
	}
	return nil
}
