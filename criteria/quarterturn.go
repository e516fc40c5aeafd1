package criteria

import (
	"github.com/bpetrov2020/info-f420-tilings/factor"
)

// quarterturn searches for W = A B C with A a palindrome and B, C
// 90-dromes. The degenerate two-factor form W = A B (A a palindrome or
// itself a 90-drome, C empty) is tried first. 90-drome factors must
// have even length: only those fold about a lattice vertex.
func (s *search) quarterturn() *factor.Factorization {
	n := s.n
	for as := 1; as <= n; as++ {
		for al := 1; al < n; al++ {
			if !s.isPal(as, al) && !(al%2 == 0 && s.is90(as, al)) {
				continue
			}
			bs, bl := s.pos(as+al), n-al
			if bl%2 == 0 && s.is90(bs, bl) {
				return &factor.Factorization{
					Kind:    factor.QuarterTurn,
					Factors: []factor.Factor{s.factor(as, al), s.factor(bs, bl)},
				}
			}
		}
	}
	for as := 1; as <= n; as++ {
		for al := 1; al <= n-2; al++ {
			if !s.isPal(as, al) {
				continue
			}
			bs := s.pos(as + al)
			for bl := 2; bl <= n-al-1; bl += 2 {
				if !s.is90(bs, bl) {
					continue
				}
				cs, cl := s.pos(bs+bl), n-al-bl
				if cl > 0 && cl%2 == 0 && s.is90(cs, cl) {
					return &factor.Factorization{
						Kind:    factor.QuarterTurn,
						Factors: []factor.Factor{s.factor(as, al), s.factor(bs, bl), s.factor(cs, cl)},
					}
				}
			}
		}
	}
	return nil
}
